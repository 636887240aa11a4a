package model

import "time"

// Types d'unité pédagogique d'un compte rendu
const (
	UnitChapitre = "chapitre"
	UnitTPNumero = "tp_numero"
	UnitTDSerie  = "td_serie"
	UnitAutre    = "autre"
)

// Statuts de remise d'un compte rendu
const (
	DeliveryDelivered = "delivered"
	DeliveryFailed    = "failed"
)

// SessionReport compte rendu de séance — table session_reports
//
// Enregistrement immuable : aucune opération de mise à jour ou de suppression,
// une correction est un nouveau compte rendu. Seuls delivery_status/delivered_at
// sont posés une fois après la tentative de remise, à titre informatif.
type SessionReport struct {
	ReportID         string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"report_id"`
	AccountID        string      `gorm:"type:uuid;not null"                             json:"account_id"`
	Teacher          string      `gorm:"type:varchar(150);not null"                     json:"teacher"`
	Subject          string      `gorm:"type:varchar(200);not null"                     json:"subject"`
	Promotion        string      `gorm:"type:varchar(50);not null"                      json:"promotion"`
	Group            string      `gorm:"column:grp;type:varchar(50);not null"           json:"group"`
	Subgroup         string      `gorm:"type:varchar(50);not null"                      json:"subgroup"`
	UnitType         string      `gorm:"type:varchar(20);not null"                      json:"unit_type"`
	UnitNumber       string      `gorm:"type:varchar(20);not null"                      json:"unit_number"`
	SessionDate      time.Time   `gorm:"type:date;not null"                             json:"session_date"`
	Absentees        StringArray `gorm:"type:text[];not null"                           json:"absentees"`
	Observations     string      `gorm:"type:text;not null"                             json:"observations"`
	SignerName       string      `gorm:"type:varchar(150);not null"                     json:"signer_name"`
	VerificationCode string      `gorm:"type:varchar(50);not null"                      json:"verification_code"`
	DeliveryStatus   string      `gorm:"type:varchar(20);not null;default:'failed'"     json:"delivery_status"`
	DeliveredAt      *time.Time  `json:"delivered_at,omitempty"`
	CreatedAt        time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName nom de la table
func (SessionReport) TableName() string { return "session_reports" }
