package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Erreurs d'ingestion — fatales pour l'application au démarrage (non rattrapables)
var (
	ErrSourceEmpty     = errors.New("la source ne contient aucune ligne de données")
	ErrSourceBadHeader = errors.New("en-têtes de colonnes manquants ou invalides")
)

// ── Ingestion EDT ──
//
// Colonnes attendues (ordre libre, noms rognés) :
// Enseignants | Enseignements | Promotion | Jours | Horaire | Lieu

// ParseTimetable lit le classeur EDT depuis un flux
func ParseTimetable(r io.Reader) ([]TimetableEntry, error) {
	rows, err := readSheet(r)
	if err != nil {
		return nil, err
	}

	col := headerIndex(rows[0], map[string][]string{
		"teacher":   {"enseignants", "enseignant"},
		"subject":   {"enseignements", "enseignement"},
		"promotion": {"promotion"},
		"day":       {"jours", "jour"},
		"timeslot":  {"horaire", "horaires"},
		"location":  {"lieu", "lieux"},
	})
	for _, name := range []string{"teacher", "subject", "promotion", "day", "timeslot"} {
		if col[name] < 0 {
			return nil, fmt.Errorf("%w: colonne %q introuvable", ErrSourceBadHeader, name)
		}
	}

	entries := make([]TimetableEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		entries = append(entries, TimetableEntry{
			Teacher:   cell(row, col["teacher"]),
			Subject:   cell(row, col["subject"]),
			Promotion: cell(row, col["promotion"]),
			Day:       cell(row, col["day"]),
			Timeslot:  cell(row, col["timeslot"]),
			Location:  cell(row, col["location"]),
		})
	}
	if len(entries) == 0 {
		return nil, ErrSourceEmpty
	}
	return entries, nil
}

// ── Ingestion listes étudiants ──
//
// Colonnes attendues : Nom | Prénom | Promotion | Groupe | Sous groupe

// ParseRoster lit le classeur des listes étudiants depuis un flux
func ParseRoster(r io.Reader) ([]RosterEntry, error) {
	rows, err := readSheet(r)
	if err != nil {
		return nil, err
	}

	col := headerIndex(rows[0], map[string][]string{
		"nom":       {"nom"},
		"prenom":    {"prénom", "prenom"},
		"promotion": {"promotion"},
		"group":     {"groupe"},
		"subgroup":  {"sous groupe", "sous-groupe", "sousgroupe"},
	})
	for _, name := range []string{"nom", "promotion", "group", "subgroup"} {
		if col[name] < 0 {
			return nil, fmt.Errorf("%w: colonne %q introuvable", ErrSourceBadHeader, name)
		}
	}

	entries := make([]RosterEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		name := cell(row, col["nom"])
		if p := cell(row, col["prenom"]); p != "" {
			name = strings.TrimSpace(name + " " + p)
		}
		entries = append(entries, RosterEntry{
			StudentName: name,
			Promotion:   cell(row, col["promotion"]),
			Group:       cell(row, col["group"]),
			Subgroup:    cell(row, col["subgroup"]),
		})
	}
	if len(entries) == 0 {
		return nil, ErrSourceEmpty
	}
	return entries, nil
}

// ── Chargement depuis fichier ──

// LoadTimetableIndex ouvre le classeur EDT et construit l'index
func LoadTimetableIndex(path string) (*TimetableIndex, error) {
	entries, err := loadFile(path, ParseTimetable)
	if err != nil {
		return nil, fmt.Errorf("chargement de l'EDT %s: %w", path, err)
	}
	return NewTimetableIndex(entries), nil
}

// LoadRosterIndex ouvre le classeur des listes et construit l'index
func LoadRosterIndex(path string) (*RosterIndex, error) {
	entries, err := loadFile(path, ParseRoster)
	if err != nil {
		return nil, fmt.Errorf("chargement des listes étudiants %s: %w", path, err)
	}
	return NewRosterIndex(entries), nil
}

func loadFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f)
}

// ── Aides internes ──

func readSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("ouverture du classeur: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("lecture de la feuille %q: %w", sheetName, err)
	}
	if len(rows) < 2 {
		return nil, ErrSourceEmpty
	}
	return rows, nil
}

// headerIndex localise chaque colonne attendue (noms rognés, insensibles à la casse)
func headerIndex(header []string, wanted map[string][]string) map[string]int {
	col := make(map[string]int, len(wanted))
	for name := range wanted {
		col[name] = -1
	}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for name, aliases := range wanted {
			if col[name] >= 0 {
				continue
			}
			for _, alias := range aliases {
				if h == alias {
					col[name] = i
					break
				}
			}
		}
	}
	return col
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
