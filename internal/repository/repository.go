package repository

import "gorm.io/gorm"

// Repository point d'entrée agrégé de tous les Repository
type Repository struct {
	Account       TeacherAccountRepository
	SessionReport SessionReportRepository
}

// NewRepository crée l'agrégat Repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Account:       NewTeacherAccountRepo(db),
		SessionReport: NewSessionReportRepo(db),
	}
}
