package catalog

import "strings"

// Undefined valeur sentinelle posée à l'ingestion pour toute cellule absente
const Undefined = "Non défini"

// Days jours d'enseignement de la semaine, dans l'ordre canonique
var Days = []string{"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi"}

// Timeslots les six créneaux horaires fixes d'une journée
var Timeslots = []string{"8h-9h30", "9h30-11h", "11h-12h30", "12h30-14h", "14h-15h30", "15h30-17h"}

// TimetableEntry ligne normalisée de l'emploi du temps.
// Clé d'identité pour la déduplication : (Teacher, Day, Timeslot) — une séance
// hebdomadaire peut apparaître plusieurs fois dans la source (une ligne par
// sous-groupe) mais n'occupe qu'un seul créneau pour le calcul de charge.
type TimetableEntry struct {
	Teacher   string `json:"teacher"`
	Subject   string `json:"subject"`
	Promotion string `json:"promotion"`
	Day       string `json:"day"`
	Timeslot  string `json:"timeslot"`
	Location  string `json:"location"`
}

// RosterEntry ligne normalisée des listes étudiants.
// (Promotion, Group, Subgroup) partitionne les étudiants en unités d'appel disjointes.
type RosterEntry struct {
	StudentName string `json:"student_name"`
	Promotion   string `json:"promotion"`
	Group       string `json:"group"`
	Subgroup    string `json:"subgroup"`
}

// DayOrder position d'un jour dans l'ordre canonique ; les jours inconnus passent en fin
func DayOrder(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return len(Days)
}

// TimeslotOrder position d'un créneau dans la journée ; les créneaux inconnus passent en fin
func TimeslotOrder(slot string) int {
	for i, s := range Timeslots {
		if s == slot {
			return i
		}
	}
	return len(Timeslots)
}

// normalize nettoie une cellule : espaces rognés, sentinelle si vide
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Undefined
	}
	return s
}
