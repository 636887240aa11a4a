package dto

// WorkloadSummaryResponse synthèse de charge d'un enseignant.
// OvertimeHours = ActualHours - RegulatoryHours ; une valeur négative signale
// un déficit, état valide et significatif (jamais ramené à zéro).
type WorkloadSummaryResponse struct {
	Teacher         string  `json:"teacher"`
	ActualHours     float64 `json:"actual_hours"`
	RegulatoryHours float64 `json:"regulatory_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	CoursCount      int     `json:"cours_count"`
	TDCount         int     `json:"td_count"`
	TPCount         int     `json:"tp_count"`
	AutreCount      int     `json:"autre_count"`
}

// SessionResponse séance hebdomadaire dédupliquée, classée et pondérée
type SessionResponse struct {
	Day       string  `json:"day"`
	Timeslot  string  `json:"timeslot"`
	Subject   string  `json:"subject"`
	Promotion string  `json:"promotion"`
	Location  string  `json:"location"`
	Type      string  `json:"type"`
	Weight    float64 `json:"weight"`
}

// MyWorkloadResponse synthèse + grille hebdomadaire pour affichage
type MyWorkloadResponse struct {
	Summary  WorkloadSummaryResponse `json:"summary"`
	Sessions []SessionResponse       `json:"sessions"`
}

// TeacherLoadItem ligne de la vue d'ensemble département (admin)
type TeacherLoadItem struct {
	Teacher     string                  `json:"teacher"`
	ReducedLoad bool                    `json:"reduced_load"`
	Summary     WorkloadSummaryResponse `json:"summary"`
}

// WorkloadOverviewResponse vue d'ensemble de tous les enseignants de l'EDT
type WorkloadOverviewResponse struct {
	Teachers []TeacherLoadItem `json:"teachers"`
}
