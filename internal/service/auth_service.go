package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/config"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/dto"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/model"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/repository"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/jwt"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
	ErrAccountNotFound    = errors.New("compte introuvable")
)

// AuthService vérification des identifiants et émission des tokens.
// Le cœur métier ne reçoit jamais l'email ni le mot de passe : seulement le
// nom officiel résolu et le drapeau de décharge.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	Me(ctx context.Context, accountID string) (*dto.AccountResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService crée une instance d'AuthService
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{cfg: cfg, repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. Recherche du compte
	account, err := s.repo.Account.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("recherche du compte", zap.Error(err))
		return nil, err
	}

	// 2. Vérification du mot de passe (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenPair(account)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidCredentials
	}
	if s.rdb != nil {
		banned, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err == nil && banned {
			return nil, ErrInvalidCredentials
		}
	}

	account, err := s.repo.Account.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return s.tokenPair(account)
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil // sans Redis, la déconnexion est purement côté client
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

func (s *authService) Me(ctx context.Context, accountID string) (*dto.AccountResponse, error) {
	account, err := s.repo.Account.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

// ── Aides privées ──

func (s *authService) tokenPair(account *model.TeacherAccount) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(account.AccountID, account.Role)
	if err != nil {
		s.logger.Error("génération de l'access token", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(account.AccountID, account.Role)
	if err != nil {
		s.logger.Error("génération du refresh token", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		Account:      toAccountResponse(account),
	}, nil
}

func toAccountResponse(account *model.TeacherAccount) dto.AccountResponse {
	return dto.AccountResponse{
		ID:          account.AccountID,
		Email:       account.Email,
		NomOfficiel: account.NomOfficiel,
		ReducedLoad: account.ReducedLoad,
		Role:        account.Role,
	}
}
