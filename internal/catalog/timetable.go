package catalog

import "sort"

// ── TimetableIndex ──────────────────────────────────────────
//
// Notes de conception :
//   - Vue interrogeable et immuable sur les lignes brutes de l'EDT ; construite
//     une fois au démarrage, partagée en lecture seule entre toutes les requêtes.
//   - L'ordre source est conservé : Lookup retourne la première ligne
//     correspondante, et le représentant retenu lors d'une déduplication en aval
//     est stable (premier vu).
//   - L'absence d'une ligne n'est jamais une erreur : l'appelant dégrade en
//     avertissement (« séance non planifiée ») et poursuit son flux.
// ─────────────────────────────────────────────────────────────

// TimetableIndex vue normalisée de l'emploi du temps
type TimetableIndex struct {
	byTeacher map[string][]TimetableEntry
	teachers  []string
}

// NewTimetableIndex construit l'index à partir des lignes brutes.
// Chaque champ est rogné et les cellules vides reçoivent la sentinelle.
func NewTimetableIndex(rows []TimetableEntry) *TimetableIndex {
	ix := &TimetableIndex{byTeacher: make(map[string][]TimetableEntry)}
	for _, row := range rows {
		e := TimetableEntry{
			Teacher:   normalize(row.Teacher),
			Subject:   normalize(row.Subject),
			Promotion: normalize(row.Promotion),
			Day:       normalize(row.Day),
			Timeslot:  normalize(row.Timeslot),
			Location:  normalize(row.Location),
		}
		if _, seen := ix.byTeacher[e.Teacher]; !seen {
			ix.teachers = append(ix.teachers, e.Teacher)
		}
		ix.byTeacher[e.Teacher] = append(ix.byTeacher[e.Teacher], e)
	}
	sort.Strings(ix.teachers)
	return ix
}

// Len nombre total de lignes indexées
func (ix *TimetableIndex) Len() int {
	n := 0
	for _, entries := range ix.byTeacher {
		n += len(entries)
	}
	return n
}

// EntriesFor lignes d'un enseignant, dans l'ordre source.
// Le slice retourné ne doit pas être modifié.
func (ix *TimetableIndex) EntriesFor(teacher string) []TimetableEntry {
	return ix.byTeacher[teacher]
}

// SubjectsFor matières enseignées par un enseignant dans une promotion (triées)
func (ix *TimetableIndex) SubjectsFor(teacher, promotion string) []string {
	seen := make(map[string]bool)
	var subjects []string
	for _, e := range ix.byTeacher[teacher] {
		if e.Promotion != promotion || seen[e.Subject] {
			continue
		}
		seen[e.Subject] = true
		subjects = append(subjects, e.Subject)
	}
	sort.Strings(subjects)
	return subjects
}

// PromotionsFor promotions dans lesquelles un enseignant intervient (triées)
func (ix *TimetableIndex) PromotionsFor(teacher string) []string {
	seen := make(map[string]bool)
	var promotions []string
	for _, e := range ix.byTeacher[teacher] {
		if seen[e.Promotion] {
			continue
		}
		seen[e.Promotion] = true
		promotions = append(promotions, e.Promotion)
	}
	sort.Strings(promotions)
	return promotions
}

// Lookup première ligne (enseignant, matière) ; ok=false si non planifiée.
// La source peut contenir des doublons (une ligne par sous-groupe) : la
// première occurrence fait foi.
func (ix *TimetableIndex) Lookup(teacher, subject string) (TimetableEntry, bool) {
	for _, e := range ix.byTeacher[teacher] {
		if e.Subject == subject {
			return e, true
		}
	}
	return TimetableEntry{}, false
}

// Teachers liste triée des enseignants présents dans l'EDT
func (ix *TimetableIndex) Teachers() []string {
	return ix.teachers
}
