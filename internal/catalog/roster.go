package catalog

import "sort"

type unitKey struct {
	promotion string
	group     string
	subgroup  string
}

// RosterIndex vue normalisée des listes étudiants.
// Immuable après construction, partagée en lecture seule.
type RosterIndex struct {
	byUnit      map[unitKey][]RosterEntry
	groupsByPro map[string]map[string]bool
	subsByGroup map[[2]string]map[string]bool
}

// NewRosterIndex construit l'index à partir des lignes brutes
func NewRosterIndex(rows []RosterEntry) *RosterIndex {
	ix := &RosterIndex{
		byUnit:      make(map[unitKey][]RosterEntry),
		groupsByPro: make(map[string]map[string]bool),
		subsByGroup: make(map[[2]string]map[string]bool),
	}
	for _, row := range rows {
		e := RosterEntry{
			StudentName: normalize(row.StudentName),
			Promotion:   normalize(row.Promotion),
			Group:       normalize(row.Group),
			Subgroup:    normalize(row.Subgroup),
		}
		key := unitKey{e.Promotion, e.Group, e.Subgroup}
		ix.byUnit[key] = append(ix.byUnit[key], e)

		if ix.groupsByPro[e.Promotion] == nil {
			ix.groupsByPro[e.Promotion] = make(map[string]bool)
		}
		ix.groupsByPro[e.Promotion][e.Group] = true

		gk := [2]string{e.Promotion, e.Group}
		if ix.subsByGroup[gk] == nil {
			ix.subsByGroup[gk] = make(map[string]bool)
		}
		ix.subsByGroup[gk][e.Subgroup] = true
	}
	return ix
}

// Len nombre total d'étudiants indexés
func (ix *RosterIndex) Len() int {
	n := 0
	for _, students := range ix.byUnit {
		n += len(students)
	}
	return n
}

// StudentsFor étudiants d'un sous-groupe, dans l'ordre source.
// Slice vide (jamais une erreur) quand l'unité est inconnue.
func (ix *RosterIndex) StudentsFor(promotion, group, subgroup string) []RosterEntry {
	students := ix.byUnit[unitKey{promotion, group, subgroup}]
	if students == nil {
		return []RosterEntry{}
	}
	return students
}

// GroupsFor groupes d'une promotion (triés)
func (ix *RosterIndex) GroupsFor(promotion string) []string {
	return sortedKeys(ix.groupsByPro[promotion])
}

// SubgroupsFor sous-groupes d'un groupe (triés)
func (ix *RosterIndex) SubgroupsFor(promotion, group string) []string {
	return sortedKeys(ix.subsByGroup[[2]string{promotion, group}])
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
