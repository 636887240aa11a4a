package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/dto"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/repository"
)

// AccountService administration des comptes enseignants
type AccountService interface {
	List(ctx context.Context) ([]dto.AccountResponse, error)
	// SetReducedLoad bascule la décharge administrative ; prise en compte
	// au prochain calcul de charge, la synthèse n'étant jamais persistée.
	SetReducedLoad(ctx context.Context, accountID string, reduced bool) (*dto.AccountResponse, error)
}

type accountService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAccountService crée une instance d'AccountService
func NewAccountService(repo *repository.Repository, logger *zap.Logger) AccountService {
	return &accountService{repo: repo, logger: logger}
}

func (s *accountService) List(ctx context.Context) ([]dto.AccountResponse, error) {
	accounts, err := s.repo.Account.List(ctx)
	if err != nil {
		s.logger.Error("liste des comptes", zap.Error(err))
		return nil, err
	}
	result := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		result = append(result, toAccountResponse(&accounts[i]))
	}
	return result, nil
}

func (s *accountService) SetReducedLoad(ctx context.Context, accountID string, reduced bool) (*dto.AccountResponse, error) {
	if _, err := s.repo.Account.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if err := s.repo.Account.SetReducedLoad(ctx, accountID, reduced); err != nil {
		s.logger.Error("mise à jour de la décharge", zap.Error(err), zap.String("accountID", accountID))
		return nil, err
	}

	account, err := s.repo.Account.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	resp := toAccountResponse(account)
	return &resp, nil
}
