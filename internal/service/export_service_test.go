package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/model"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/repository"
)

// ── Aides de test ──

func setupExportService() (ExportService, *mockAccountRepo) {
	accountRepo := newMockAccountRepo()
	repo := &repository.Repository{
		Account:       accountRepo,
		SessionReport: newMockReportRepo(),
	}
	logger := zap.NewNop()
	workload := NewWorkloadService(newTestEDT(), repo, logger)
	return NewExportService(workload, repo, logger), accountRepo
}

func addBenali(accountRepo *mockAccountRepo) *model.TeacherAccount {
	return accountRepo.add(&model.TeacherAccount{
		Email:       "benali@univ.dz",
		NomOfficiel: "Benali A.",
		Role:        model.RoleEnseignant,
	})
}

// ── Fiche de service ──

func TestWorkloadSheet_Success(t *testing.T) {
	svc, accountRepo := setupExportService()
	account := addBenali(accountRepo)

	buf, filename, err := svc.WorkloadSheet(context.Background(), account.AccountID)
	if err != nil {
		t.Fatalf("WorkloadSheet devrait réussir: %v", err)
	}
	if filename != "fiche_de_service_benali_a.xlsx" {
		t.Errorf("nom de fichier inattendu: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("le classeur généré devrait se rouvrir: %v", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)

	title, _ := f.GetCellValue(sheet, "A1")
	if !strings.Contains(title, "Benali A.") {
		t.Errorf("titre inattendu: %q", title)
	}
	// Deux séances dédupliquées, lignes 4 et 5
	day4, _ := f.GetCellValue(sheet, "A4")
	day5, _ := f.GetCellValue(sheet, "A5")
	if day4 != "Dimanche" || day5 != "Lundi" {
		t.Errorf("lignes de séances attendues Dimanche puis Lundi, obtenu %q, %q", day4, day5)
	}
	day6, _ := f.GetCellValue(sheet, "A6")
	if day6 != "" {
		t.Errorf("le créneau doublé ne doit pas produire de troisième ligne, obtenu %q", day6)
	}
}

func TestWorkloadSheet_AucuneSeance(t *testing.T) {
	svc, accountRepo := setupExportService()
	account := accountRepo.add(&model.TeacherAccount{
		Email:       "absent@univ.dz",
		NomOfficiel: "Hors EDT",
		Role:        model.RoleEnseignant,
	})

	_, _, err := svc.WorkloadSheet(context.Background(), account.AccountID)
	if !errors.Is(err, ErrExportNoSessions) {
		t.Errorf("ErrExportNoSessions attendu, obtenu: %v", err)
	}
}

func TestWorkloadSheet_CompteIntrouvable(t *testing.T) {
	svc, _ := setupExportService()

	_, _, err := svc.WorkloadSheet(context.Background(), "inexistant")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("ErrAccountNotFound attendu, obtenu: %v", err)
	}
}

// ── Export iCalendar ──

func TestTimetableICS_Success(t *testing.T) {
	svc, accountRepo := setupExportService()
	account := addBenali(accountRepo)

	buf, filename, err := svc.TimetableICS(context.Background(), account.AccountID)
	if err != nil {
		t.Fatalf("TimetableICS devrait réussir: %v", err)
	}
	if filename != "edt_benali_a.ics" {
		t.Errorf("nom de fichier inattendu: %s", filename)
	}

	body := buf.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "END:VCALENDAR") {
		t.Error("enveloppe VCALENDAR absente")
	}
	if count := strings.Count(body, "BEGIN:VEVENT"); count != 2 {
		t.Errorf("2 événements hebdomadaires attendus, obtenu %d", count)
	}
	if !strings.Contains(body, "RRULE:FREQ=WEEKLY") {
		t.Error("récurrence hebdomadaire absente")
	}
	if !strings.Contains(body, "Cours Électronique Fondamentale (COURS)") {
		t.Errorf("résumé de séance absent, corps:\n%s", body)
	}
}

func TestTimetableICS_AucuneSeance(t *testing.T) {
	svc, accountRepo := setupExportService()
	account := accountRepo.add(&model.TeacherAccount{
		Email:       "absent@univ.dz",
		NomOfficiel: "Hors EDT",
		Role:        model.RoleEnseignant,
	})

	_, _, err := svc.TimetableICS(context.Background(), account.AccountID)
	if !errors.Is(err, ErrExportNoSessions) {
		t.Errorf("ErrExportNoSessions attendu, obtenu: %v", err)
	}
}
