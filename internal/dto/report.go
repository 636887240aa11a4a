package dto

import "time"

// CreateReportRequest candidat de compte rendu de séance soumis par l'enseignant
type CreateReportRequest struct {
	Subject          string   `json:"subject" binding:"required"`
	Promotion        string   `json:"promotion" binding:"required"`
	Group            string   `json:"group" binding:"required"`
	Subgroup         string   `json:"subgroup" binding:"required"`
	UnitType         string   `json:"unit_type" binding:"required,oneof=chapitre tp_numero td_serie autre"`
	UnitNumber       string   `json:"unit_number" binding:"required"`
	SessionDate      string   `json:"session_date" binding:"required"` // format 2006-01-02
	Absentees        []string `json:"absentees"`
	Observations     string   `json:"observations"`
	SignerName       string   `json:"signer_name"`
	VerificationCode string   `json:"verification_code"`
}

// ReportResponse compte rendu archivé
type ReportResponse struct {
	ID               string    `json:"id"`
	Teacher          string    `json:"teacher"`
	Subject          string    `json:"subject"`
	Promotion        string    `json:"promotion"`
	Group            string    `json:"group"`
	Subgroup         string    `json:"subgroup"`
	UnitType         string    `json:"unit_type"`
	UnitNumber       string    `json:"unit_number"`
	SessionDate      string    `json:"session_date"`
	Absentees        []string  `json:"absentees"`
	Observations     string    `json:"observations"`
	SignerName       string    `json:"signer_name"`
	VerificationCode string    `json:"verification_code"`
	DeliveryStatus   string    `json:"delivery_status"`
	CreatedAt        time.Time `json:"created_at"`
}

// SubmitReportResponse résultat d'une soumission.
// Delivery reflète la remise seulement : un échec de remise ne remet jamais
// en cause la validité du compte rendu (Notice le signale à l'utilisateur).
type SubmitReportResponse struct {
	Report   ReportResponse `json:"report"`
	Delivery string         `json:"delivery"` // delivered | failed
	Notice   string         `json:"notice,omitempty"`
	Warning  string         `json:"warning,omitempty"`
}
