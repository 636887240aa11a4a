package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/catalog"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/repository"
)

// ErrExportNoSessions aucun créneau dans l'EDT pour cet enseignant
var ErrExportNoSessions = errors.New("aucune séance dans l'EDT pour cet enseignant")

// ExportService exports de la fiche de service et de l'EDT hebdomadaire
//
// Notes de conception :
//   - La fiche de service (.xlsx) reprend les séances dédupliquées et la
//     synthèse de charge ; elle est générée à la demande, jamais stockée.
//   - L'export .ics produit un événement hebdomadaire récurrent par créneau ;
//     les lignes au jour ou au créneau non reconnu sont ignorées avec un
//     avertissement de log.
//   - Les deux exports retournent un bytes.Buffer ; le Handler pose les
//     en-têtes HTTP et écrit la réponse.
type ExportService interface {
	// WorkloadSheet fiche de service Excel du compte connecté
	WorkloadSheet(ctx context.Context, accountID string) (*bytes.Buffer, string, error)
	// TimetableICS EDT hebdomadaire dédupliqué au format iCalendar
	TimetableICS(ctx context.Context, accountID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	workload WorkloadService
	repo     *repository.Repository
	logger   *zap.Logger
}

// NewExportService crée une instance d'ExportService
func NewExportService(workload WorkloadService, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{workload: workload, repo: repo, logger: logger}
}

func (s *exportService) resolveAccount(ctx context.Context, accountID string) (nom string, reduced bool, err error) {
	account, err := s.repo.Account.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, ErrAccountNotFound
		}
		return "", false, err
	}
	return account.NomOfficiel, account.ReducedLoad, nil
}

// ════════════════════════════════════════════════════════════
// WorkloadSheet — fiche de service Excel
// ════════════════════════════════════════════════════════════

func (s *exportService) WorkloadSheet(ctx context.Context, accountID string) (*bytes.Buffer, string, error) {
	nom, reduced, err := s.resolveAccount(ctx, accountID)
	if err != nil {
		return nil, "", err
	}

	sessions := s.workload.Sessions(nom)
	if len(sessions) == 0 {
		return nil, "", ErrExportNoSessions
	}
	summary := s.workload.ComputeLoad(nom, reduced)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", "Fiche de service — "+nom)

	header := []interface{}{"Jour", "Horaire", "Enseignement", "Promotion", "Lieu", "Type", "Volume horaire"}
	if err := f.SetSheetRow(sheet, "A3", &header); err != nil {
		return nil, "", fmt.Errorf("écriture de l'en-tête: %w", err)
	}

	row := 4
	for _, sess := range sessions {
		values := []interface{}{sess.Day, sess.Timeslot, sess.Subject, sess.Promotion, sess.Location, sess.Type, sess.Weight}
		cellRef, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(sheet, cellRef, &values); err != nil {
			return nil, "", fmt.Errorf("écriture de la ligne %d: %w", row, err)
		}
		row++
	}

	// Synthèse de charge sous le tableau
	row++
	totals := [][]interface{}{
		{"Heures assurées", summary.ActualHours},
		{"Charge réglementaire", summary.RegulatoryHours},
		{"Heures supplémentaires", summary.OvertimeHours},
		{"Séances COURS / TD / TP", fmt.Sprintf("%d / %d / %d", summary.CoursCount, summary.TDCount, summary.TPCount)},
	}
	for _, line := range totals {
		cellRef, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(sheet, cellRef, &line); err != nil {
			return nil, "", err
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("génération du fichier Excel", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("fiche_de_service_%s.xlsx", slugify(nom))
	return buf, filename, nil
}

// ════════════════════════════════════════════════════════════
// TimetableICS — EDT hebdomadaire au format iCalendar
// ════════════════════════════════════════════════════════════

var weekdayOf = map[string]time.Weekday{
	"Dimanche": time.Sunday,
	"Lundi":    time.Monday,
	"Mardi":    time.Tuesday,
	"Mercredi": time.Wednesday,
	"Jeudi":    time.Thursday,
}

// Heures de début/fin des six créneaux canoniques
var slotClock = map[string][2][2]int{
	"8h-9h30":   {{8, 0}, {9, 30}},
	"9h30-11h":  {{9, 30}, {11, 0}},
	"11h-12h30": {{11, 0}, {12, 30}},
	"12h30-14h": {{12, 30}, {14, 0}},
	"14h-15h30": {{14, 0}, {15, 30}},
	"15h30-17h": {{15, 30}, {17, 0}},
}

func (s *exportService) TimetableICS(ctx context.Context, accountID string) (*bytes.Buffer, string, error) {
	nom, _, err := s.resolveAccount(ctx, accountID)
	if err != nil {
		return nil, "", err
	}

	sessions := s.workload.Sessions(nom)
	if len(sessions) == 0 {
		return nil, "", ErrExportNoSessions
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//EDT ELT//Fiche de service//FR")

	now := time.Now()
	added := 0
	for i, sess := range sessions {
		wd, okDay := weekdayOf[sess.Day]
		clock, okSlot := slotClock[sess.Timeslot]
		if !okDay || !okSlot {
			s.logger.Warn("séance ignorée à l'export iCalendar",
				zap.String("day", sess.Day), zap.String("timeslot", sess.Timeslot))
			continue
		}

		day := nextWeekday(now, wd)
		start := time.Date(day.Year(), day.Month(), day.Day(), clock[0][0], clock[0][1], 0, 0, time.Local)
		end := time.Date(day.Year(), day.Month(), day.Day(), clock[1][0], clock[1][1], 0, 0, time.Local)

		event := cal.AddEvent(fmt.Sprintf("seance-%d-%s@edt-elt", i, slugify(nom)))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("%s (%s)", sess.Subject, sess.Type))
		if sess.Location != catalog.Undefined {
			event.SetLocation(sess.Location)
		}
		event.SetDescription("Promotion : " + sess.Promotion)
		event.AddRrule("FREQ=WEEKLY")
		added++
	}
	if added == 0 {
		return nil, "", ErrExportNoSessions
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("edt_%s.ics", slugify(nom))
	return buf, filename, nil
}

// ── Aides privées ──

// nextWeekday prochaine occurrence du jour demandé (aujourd'hui inclus)
func nextWeekday(from time.Time, wd time.Weekday) time.Time {
	offset := (int(wd) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, offset)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ".", "")
	return s
}
