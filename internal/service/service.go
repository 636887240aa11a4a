package service

import (
	"go.uber.org/zap"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/config"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/catalog"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/repository"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/jwt"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/redis"
)

// Service point d'entrée agrégé de tous les services
type Service struct {
	Auth     AuthService
	Account  AccountService
	Catalog  CatalogService
	Workload WorkloadService
	Report   ReportService
	Export   ExportService
}

// NewService crée l'agrégat Service
func NewService(
	cfg *config.Config,
	edt *catalog.TimetableIndex,
	roster *catalog.RosterIndex,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	dispatcher ReportDispatcher,
	logger *zap.Logger,
) *Service {
	workload := NewWorkloadService(edt, repo, logger)
	return &Service{
		Auth:     NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Account:  NewAccountService(repo, logger),
		Catalog:  NewCatalogService(edt, roster, repo, logger),
		Workload: workload,
		Report:   NewReportService(edt, roster, repo, dispatcher, logger),
		Export:   NewExportService(workload, repo, logger),
	}
}
