package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/model"
)

// SessionReportRepository archive des comptes rendus de séance.
// Archive en écriture seule : pas de mise à jour ni de suppression, une
// correction est un nouveau compte rendu. Seul le statut de remise est posé
// après coup, à titre informatif.
type SessionReportRepository interface {
	Create(ctx context.Context, report *model.SessionReport) error
	SetDeliveryStatus(ctx context.Context, reportID, status string, deliveredAt *time.Time) error
	ListByAccount(ctx context.Context, accountID string) ([]model.SessionReport, error)
}

type sessionReportRepo struct {
	db *gorm.DB
}

// NewSessionReportRepo crée une instance de SessionReportRepository
func NewSessionReportRepo(db *gorm.DB) SessionReportRepository {
	return &sessionReportRepo{db: db}
}

func (r *sessionReportRepo) Create(ctx context.Context, report *model.SessionReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *sessionReportRepo) SetDeliveryStatus(ctx context.Context, reportID, status string, deliveredAt *time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.SessionReport{}).
		Where("report_id = ?", reportID).
		Updates(map[string]interface{}{
			"delivery_status": status,
			"delivered_at":    deliveredAt,
		}).Error
}

func (r *sessionReportRepo) ListByAccount(ctx context.Context, accountID string) ([]model.SessionReport, error) {
	var reports []model.SessionReport
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
