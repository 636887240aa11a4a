package service

import "strings"

// SessionType type de séance, dérivé du libellé de la matière (jamais stocké)
type SessionType string

const (
	SessionCours SessionType = "COURS"
	SessionTD    SessionType = "TD"
	SessionTP    SessionType = "TP"
	SessionAutre SessionType = "AUTRE"
)

// Classify classe un libellé de matière par recherche de sous-chaîne,
// insensible à la casse, priorité fixe COURS > TD > TP > AUTRE.
// Totale et déterministe : ne peut pas échouer.
//
// Un libellé contenant plusieurs mots-clés (« TD avancé COURS X ») est classé
// selon la priorité, comme dans les fiches de service historiques du
// département ; l'ambiguïté relève de la qualité des libellés en amont.
func Classify(subjectLabel string) SessionType {
	label := strings.ToUpper(subjectLabel)
	switch {
	case strings.Contains(label, "COURS"):
		return SessionCours
	case strings.Contains(label, "TD"):
		return SessionTD
	case strings.Contains(label, "TP"):
		return SessionTP
	default:
		return SessionAutre
	}
}

// Weight pondération horaire d'un type de séance : 1,5h pour un cours
// magistral, 1,0h pour tout le reste.
func (t SessionType) Weight() float64 {
	if t == SessionCours {
		return 1.5
	}
	return 1.0
}
