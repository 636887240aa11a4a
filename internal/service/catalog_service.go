package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/catalog"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/dto"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/repository"
)

// CatalogService consultation de l'EDT et des listes étudiants.
// Les index sont en lecture seule : toute question y répond sans toucher
// à la base, seule la résolution compte → nom officiel passe par le dépôt.
type CatalogService interface {
	// MyTimetable lignes brutes de l'enseignant connecté (avant déduplication)
	MyTimetable(ctx context.Context, accountID string) (*dto.MyTimetableResponse, error)
	// Subjects enseignements de l'enseignant connecté pour une promotion
	Subjects(ctx context.Context, accountID, promotion string) ([]string, error)
	// Promotions promotions où l'enseignant connecté intervient
	Promotions(ctx context.Context, accountID string) ([]string, error)
	Students(promotion, group, subgroup string) []dto.StudentResponse
	Groups(promotion string) []string
	Subgroups(promotion, group string) []string
}

type catalogService struct {
	edt    *catalog.TimetableIndex
	roster *catalog.RosterIndex
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService crée une instance de CatalogService
func NewCatalogService(edt *catalog.TimetableIndex, roster *catalog.RosterIndex, repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{edt: edt, roster: roster, repo: repo, logger: logger}
}

func (s *catalogService) resolveNom(ctx context.Context, accountID string) (string, error) {
	account, err := s.repo.Account.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAccountNotFound
		}
		s.logger.Error("lecture du compte", zap.Error(err))
		return "", err
	}
	return account.NomOfficiel, nil
}

func (s *catalogService) MyTimetable(ctx context.Context, accountID string) (*dto.MyTimetableResponse, error) {
	nom, err := s.resolveNom(ctx, accountID)
	if err != nil {
		return nil, err
	}

	entries := s.edt.EntriesFor(nom)
	resp := &dto.MyTimetableResponse{Entries: make([]dto.TimetableEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dto.TimetableEntryResponse{
			Teacher:   e.Teacher,
			Subject:   e.Subject,
			Promotion: e.Promotion,
			Day:       e.Day,
			Timeslot:  e.Timeslot,
			Location:  e.Location,
		})
	}
	return resp, nil
}

func (s *catalogService) Subjects(ctx context.Context, accountID, promotion string) ([]string, error) {
	nom, err := s.resolveNom(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.edt.SubjectsFor(nom, promotion), nil
}

func (s *catalogService) Promotions(ctx context.Context, accountID string) ([]string, error) {
	nom, err := s.resolveNom(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.edt.PromotionsFor(nom), nil
}

func (s *catalogService) Students(promotion, group, subgroup string) []dto.StudentResponse {
	students := s.roster.StudentsFor(promotion, group, subgroup)
	result := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		result = append(result, dto.StudentResponse{
			StudentName: st.StudentName,
			Promotion:   st.Promotion,
			Group:       st.Group,
			Subgroup:    st.Subgroup,
		})
	}
	return result
}

func (s *catalogService) Groups(promotion string) []string {
	return s.roster.GroupsFor(promotion)
}

func (s *catalogService) Subgroups(promotion, group string) []string {
	return s.roster.SubgroupsFor(promotion, group)
}
