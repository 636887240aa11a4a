package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/catalog"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/dto"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/repository"
)

// Charge réglementaire hebdomadaire (heures) ; divisée par deux en cas de
// décharge administrative.
const (
	RegulatoryHoursFull    = 6.0
	RegulatoryHoursReduced = 3.0
)

// ── WorkloadService ─────────────────────────────────────────
//
// Notes de conception :
//   - ComputeLoad est une pure projection de l'index EDT + du drapeau de
//     décharge : recalculée à chaque appel, jamais persistée, donc toujours
//     cohérente avec l'EDT courant.
//   - Déduplication par clé (enseignant, jour, créneau) : un enseignant
//     n'occupe qu'un créneau quel que soit le nombre de sous-groupes inscrits.
//     Représentant = première ligne vue dans l'ordre source.
//   - Les heures supplémentaires peuvent être négatives : un déficit est un
//     état rapporté valide, pas une erreur.
// ─────────────────────────────────────────────────────────────

// WorkloadService calcul de la charge d'enseignement
type WorkloadService interface {
	// ComputeLoad synthèse de charge pour un enseignant ; tous les paramètres explicites
	ComputeLoad(teacher string, reducedLoad bool) dto.WorkloadSummaryResponse
	// Sessions séances hebdomadaires dédupliquées et classées, triées pour affichage
	Sessions(teacher string) []dto.SessionResponse
	// MyWorkload synthèse + grille pour le compte connecté
	MyWorkload(ctx context.Context, accountID string) (*dto.MyWorkloadResponse, error)
	// Overview synthèse de tous les enseignants de l'EDT (admin)
	Overview(ctx context.Context) (*dto.WorkloadOverviewResponse, error)
}

type workloadService struct {
	edt    *catalog.TimetableIndex
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWorkloadService crée une instance de WorkloadService
func NewWorkloadService(edt *catalog.TimetableIndex, repo *repository.Repository, logger *zap.Logger) WorkloadService {
	return &workloadService{edt: edt, repo: repo, logger: logger}
}

// dedupSessions déduplique les lignes d'un enseignant par (jour, créneau),
// en conservant le premier représentant vu dans l'ordre source.
func (s *workloadService) dedupSessions(teacher string) []catalog.TimetableEntry {
	type slotKey struct {
		day      string
		timeslot string
	}
	seen := make(map[slotKey]bool)
	var sessions []catalog.TimetableEntry
	for _, e := range s.edt.EntriesFor(teacher) {
		key := slotKey{e.Day, e.Timeslot}
		if seen[key] {
			continue
		}
		seen[key] = true
		sessions = append(sessions, e)
	}
	return sessions
}

func (s *workloadService) ComputeLoad(teacher string, reducedLoad bool) dto.WorkloadSummaryResponse {
	summary := dto.WorkloadSummaryResponse{
		Teacher:         teacher,
		RegulatoryHours: RegulatoryHoursFull,
	}
	if reducedLoad {
		summary.RegulatoryHours = RegulatoryHoursReduced
	}

	for _, e := range s.dedupSessions(teacher) {
		st := Classify(e.Subject)
		summary.ActualHours += st.Weight()
		switch st {
		case SessionCours:
			summary.CoursCount++
		case SessionTD:
			summary.TDCount++
		case SessionTP:
			summary.TPCount++
		default:
			summary.AutreCount++
		}
	}

	// Jamais plafonné à zéro : un résultat négatif signale un déficit
	summary.OvertimeHours = summary.ActualHours - summary.RegulatoryHours
	return summary
}

func (s *workloadService) Sessions(teacher string) []dto.SessionResponse {
	deduped := s.dedupSessions(teacher)

	sessions := make([]dto.SessionResponse, 0, len(deduped))
	for _, e := range deduped {
		st := Classify(e.Subject)
		sessions = append(sessions, dto.SessionResponse{
			Day:       e.Day,
			Timeslot:  e.Timeslot,
			Subject:   e.Subject,
			Promotion: e.Promotion,
			Location:  e.Location,
			Type:      string(st),
			Weight:    st.Weight(),
		})
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		di, dj := catalog.DayOrder(sessions[i].Day), catalog.DayOrder(sessions[j].Day)
		if di != dj {
			return di < dj
		}
		return catalog.TimeslotOrder(sessions[i].Timeslot) < catalog.TimeslotOrder(sessions[j].Timeslot)
	})
	return sessions
}

func (s *workloadService) MyWorkload(ctx context.Context, accountID string) (*dto.MyWorkloadResponse, error) {
	account, err := s.repo.Account.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		s.logger.Error("lecture du compte", zap.Error(err))
		return nil, err
	}

	return &dto.MyWorkloadResponse{
		Summary:  s.ComputeLoad(account.NomOfficiel, account.ReducedLoad),
		Sessions: s.Sessions(account.NomOfficiel),
	}, nil
}

func (s *workloadService) Overview(ctx context.Context) (*dto.WorkloadOverviewResponse, error) {
	accounts, err := s.repo.Account.List(ctx)
	if err != nil {
		s.logger.Error("liste des comptes", zap.Error(err))
		return nil, err
	}
	reducedByNom := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		reducedByNom[a.NomOfficiel] = a.ReducedLoad
	}

	resp := &dto.WorkloadOverviewResponse{}
	for _, teacher := range s.edt.Teachers() {
		reduced := reducedByNom[teacher] // enseignant sans compte → pas de décharge
		resp.Teachers = append(resp.Teachers, dto.TeacherLoadItem{
			Teacher:     teacher,
			ReducedLoad: reduced,
			Summary:     s.ComputeLoad(teacher, reduced),
		})
	}
	return resp, nil
}
