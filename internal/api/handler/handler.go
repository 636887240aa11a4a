package handler

import "github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/service"

// Handler point d'entrée agrégé de tous les Handler
type Handler struct {
	Auth     *AuthHandler
	Account  *AccountHandler
	Catalog  *CatalogHandler
	Workload *WorkloadHandler
	Report   *ReportHandler
	Export   *ExportHandler
}

// NewHandler crée l'agrégat Handler
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		Account:  NewAccountHandler(svc.Account),
		Catalog:  NewCatalogHandler(svc.Catalog),
		Workload: NewWorkloadHandler(svc.Workload),
		Report:   NewReportHandler(svc.Report),
		Export:   NewExportHandler(svc.Export),
	}
}
