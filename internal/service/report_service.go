package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/catalog"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/dto"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/model"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/repository"
)

// ── Erreurs de validation d'un compte rendu ──

// ValidationKind famille d'erreur de validation
type ValidationKind string

const (
	KindMissingMandatoryField    ValidationKind = "missing_mandatory_field"
	KindInvalidAbsenteeSelection ValidationKind = "invalid_absentee_selection"
)

// ValidationError erreur de validation bloquante : l'assemblage est refusé
// tant que l'utilisateur n'a pas corrigé le champ en cause.
type ValidationError struct {
	Kind  ValidationKind
	Field string // nom du champ manquant, ou nom de l'absent hors sous-groupe
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindInvalidAbsenteeSelection:
		return fmt.Sprintf("absent sélectionné hors du sous-groupe: %s", e.Field)
	default:
		return fmt.Sprintf("champ obligatoire manquant: %s", e.Field)
	}
}

// Notice affichée quand la remise échoue après une validation réussie
const NoticeNotTransmitted = "compte rendu validé mais non transmis"

// WarningUnscheduled avertissement non bloquant : la séance déclarée n'est
// pas planifiée dans l'EDT de l'enseignant
const WarningUnscheduled = "séance non planifiée dans l'EDT de l'enseignant"

const dispatchTimeout = 10 * time.Second

// ── ReportService ───────────────────────────────────────────
//
// Notes de conception :
//   - Assemble est pur : validation puis construction de la valeur, aucun
//     effet de bord. La persistance et la remise appartiennent à Submit,
//     composées explicitement après un assemblage réussi.
//   - Les règles sont évaluées dans l'ordre : champs obligatoires
//     (observations, signataire, code de vérification, date), puis
//     appartenance des absents au sous-groupe résolu.
//   - Une séance absente de l'EDT est un avertissement, jamais un refus.
// ─────────────────────────────────────────────────────────────

// ReportService assemblage, archivage et remise des comptes rendus de séance
type ReportService interface {
	// Assemble valide un candidat et construit le compte rendu canonique immuable
	Assemble(teacher string, req *dto.CreateReportRequest) (*model.SessionReport, error)
	// Submit assemble, archive puis remet le compte rendu du compte connecté
	Submit(ctx context.Context, accountID string, req *dto.CreateReportRequest) (*dto.SubmitReportResponse, error)
	// ListMine comptes rendus archivés du compte connecté
	ListMine(ctx context.Context, accountID string) ([]dto.ReportResponse, error)
}

type reportService struct {
	edt        *catalog.TimetableIndex
	roster     *catalog.RosterIndex
	repo       *repository.Repository
	dispatcher ReportDispatcher
	logger     *zap.Logger
}

// NewReportService crée une instance de ReportService
func NewReportService(
	edt *catalog.TimetableIndex,
	roster *catalog.RosterIndex,
	repo *repository.Repository,
	dispatcher ReportDispatcher,
	logger *zap.Logger,
) ReportService {
	return &reportService{edt: edt, roster: roster, repo: repo, dispatcher: dispatcher, logger: logger}
}

func (s *reportService) Assemble(teacher string, req *dto.CreateReportRequest) (*model.SessionReport, error) {
	// 1. Champs obligatoires, après rognage des espaces
	observations := strings.TrimSpace(req.Observations)
	signerName := strings.TrimSpace(req.SignerName)
	verificationCode := strings.TrimSpace(req.VerificationCode)

	if observations == "" {
		return nil, &ValidationError{Kind: KindMissingMandatoryField, Field: "observations"}
	}
	if signerName == "" {
		return nil, &ValidationError{Kind: KindMissingMandatoryField, Field: "signer_name"}
	}
	if verificationCode == "" {
		return nil, &ValidationError{Kind: KindMissingMandatoryField, Field: "verification_code"}
	}

	// 2. Date calendaire concrète ; passé et futur acceptés (saisie rétroactive)
	sessionDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.SessionDate))
	if err != nil {
		return nil, &ValidationError{Kind: KindMissingMandatoryField, Field: "session_date"}
	}

	// 3. Les absents doivent appartenir au sous-groupe résolu
	students := s.roster.StudentsFor(req.Promotion, req.Group, req.Subgroup)
	enrolled := make(map[string]bool, len(students))
	for _, st := range students {
		enrolled[st.StudentName] = true
	}
	for _, name := range req.Absentees {
		if !enrolled[name] {
			return nil, &ValidationError{Kind: KindInvalidAbsenteeSelection, Field: name}
		}
	}

	absentees := req.Absentees
	if absentees == nil {
		absentees = []string{}
	}

	return &model.SessionReport{
		Teacher:          teacher,
		Subject:          req.Subject,
		Promotion:        req.Promotion,
		Group:            req.Group,
		Subgroup:         req.Subgroup,
		UnitType:         req.UnitType,
		UnitNumber:       req.UnitNumber,
		SessionDate:      sessionDate,
		Absentees:        model.StringArray(absentees),
		Observations:     observations,
		SignerName:       signerName,
		VerificationCode: verificationCode,
		CreatedAt:        time.Now(),
	}, nil
}

func (s *reportService) Submit(ctx context.Context, accountID string, req *dto.CreateReportRequest) (*dto.SubmitReportResponse, error) {
	// 1. Résolution du compte : le cœur ne travaille qu'avec le nom officiel
	account, err := s.repo.Account.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		s.logger.Error("lecture du compte", zap.Error(err))
		return nil, err
	}

	// 2. Assemblage (pur, sans effet de bord)
	report, err := s.Assemble(account.NomOfficiel, req)
	if err != nil {
		return nil, err
	}
	report.AccountID = account.AccountID

	// 3. Séance non planifiée dans l'EDT → avertissement, le flux continue
	warning := ""
	if _, ok := s.edt.Lookup(account.NomOfficiel, req.Subject); !ok {
		warning = WarningUnscheduled
		s.logger.Warn("compte rendu pour une séance non planifiée",
			zap.String("teacher", account.NomOfficiel), zap.String("subject", req.Subject))
	}

	// 4. Archivage : le compte rendu validé est enregistré quoi qu'il advienne
	//    de la remise
	if err := s.repo.SessionReport.Create(ctx, report); err != nil {
		s.logger.Error("archivage du compte rendu", zap.Error(err))
		return nil, err
	}

	// 5. Remise, une seule tentative bornée ; l'échec n'invalide rien
	dispatchCtx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()
	outcome := s.dispatcher.Dispatch(dispatchCtx, report)

	// 6. Trace de l'issue, au mieux
	var deliveredAt *time.Time
	if outcome == OutcomeDelivered {
		now := time.Now()
		deliveredAt = &now
	}
	if err := s.repo.SessionReport.SetDeliveryStatus(ctx, report.ReportID, string(outcome), deliveredAt); err != nil {
		s.logger.Warn("enregistrement de l'issue de remise", zap.Error(err))
	}
	report.DeliveryStatus = string(outcome)
	report.DeliveredAt = deliveredAt

	resp := &dto.SubmitReportResponse{
		Report:   toReportResponse(report),
		Delivery: string(outcome),
		Warning:  warning,
	}
	if outcome == OutcomeDeliveryFailed {
		resp.Notice = NoticeNotTransmitted
	}
	return resp, nil
}

func (s *reportService) ListMine(ctx context.Context, accountID string) ([]dto.ReportResponse, error) {
	reports, err := s.repo.SessionReport.ListByAccount(ctx, accountID)
	if err != nil {
		s.logger.Error("lecture de l'archive des comptes rendus", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		result = append(result, toReportResponse(&reports[i]))
	}
	return result, nil
}

// ── Convertisseur de réponse ──

func toReportResponse(r *model.SessionReport) dto.ReportResponse {
	return dto.ReportResponse{
		ID:               r.ReportID,
		Teacher:          r.Teacher,
		Subject:          r.Subject,
		Promotion:        r.Promotion,
		Group:            r.Group,
		Subgroup:         r.Subgroup,
		UnitType:         r.UnitType,
		UnitNumber:       r.UnitNumber,
		SessionDate:      r.SessionDate.Format("2006-01-02"),
		Absentees:        []string(r.Absentees),
		Observations:     r.Observations,
		SignerName:       r.SignerName,
		VerificationCode: r.VerificationCode,
		DeliveryStatus:   r.DeliveryStatus,
		CreatedAt:        r.CreatedAt,
	}
}
