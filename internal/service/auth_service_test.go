package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/config"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/dto"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/model"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/repository"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/jwt"
)

// ── Aides de test ──

func setupAuthService() (AuthService, *mockAccountRepo, *jwt.Manager) {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "secret-de-test-edt-elt-2026",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}

	accountRepo := newMockAccountRepo()
	repo := &repository.Repository{
		Account:       accountRepo,
		SessionReport: newMockReportRepo(),
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)

	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, accountRepo, jwtMgr
}

func createTestAccount(accountRepo *mockAccountRepo, email, password string) *model.TeacherAccount {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return accountRepo.add(&model.TeacherAccount{
		Email:        email,
		PasswordHash: string(hash),
		NomOfficiel:  "Benali A.",
		Role:         model.RoleEnseignant,
	})
}

// ── Connexion ──

func TestLogin_Success(t *testing.T) {
	svc, accountRepo, _ := setupAuthService()
	createTestAccount(accountRepo, "benali@univ.dz", "motdepasse123")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "benali@univ.dz",
		Password: "motdepasse123",
	})

	if err != nil {
		t.Fatalf("Login devrait réussir, erreur: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken ne devrait pas être vide")
	}
	if result.RefreshToken == "" {
		t.Error("RefreshToken ne devrait pas être vide")
	}
	if result.Account.NomOfficiel != "Benali A." {
		t.Errorf("nom officiel attendu Benali A., obtenu %s", result.Account.NomOfficiel)
	}
	if result.ExpiresIn != 900 {
		t.Errorf("ExpiresIn attendu 900, obtenu %d", result.ExpiresIn)
	}
}

func TestLogin_MauvaisMotDePasse(t *testing.T) {
	svc, accountRepo, _ := setupAuthService()
	createTestAccount(accountRepo, "benali@univ.dz", "motdepasse123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "benali@univ.dz",
		Password: "mauvais",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("ErrInvalidCredentials attendu, obtenu: %v", err)
	}
}

func TestLogin_CompteInconnu(t *testing.T) {
	svc, _, _ := setupAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "inconnu@univ.dz",
		Password: "motdepasse123",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("ErrInvalidCredentials attendu, obtenu: %v", err)
	}
}

// ── Renouvellement ──

func TestRefresh_Success(t *testing.T) {
	svc, accountRepo, jwtMgr := setupAuthService()
	account := createTestAccount(accountRepo, "benali@univ.dz", "motdepasse123")

	refreshToken, err := jwtMgr.GenerateRefreshToken(account.AccountID, account.Role)
	if err != nil {
		t.Fatalf("génération du refresh token: %v", err)
	}

	result, err := svc.Refresh(context.Background(), refreshToken)
	if err != nil {
		t.Fatalf("Refresh devrait réussir: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken ne devrait pas être vide")
	}
}

// Un access token ne vaut pas refresh token
func TestRefresh_MauvaisTypeDeToken(t *testing.T) {
	svc, accountRepo, jwtMgr := setupAuthService()
	account := createTestAccount(accountRepo, "benali@univ.dz", "motdepasse123")

	accessToken, _ := jwtMgr.GenerateAccessToken(account.AccountID, account.Role)

	_, err := svc.Refresh(context.Background(), accessToken)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("ErrInvalidCredentials attendu, obtenu: %v", err)
	}
}

func TestRefresh_TokenInvalide(t *testing.T) {
	svc, _, _ := setupAuthService()

	_, err := svc.Refresh(context.Background(), "pas-un-token")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("ErrInvalidCredentials attendu, obtenu: %v", err)
	}
}

// ── Déconnexion et profil ──

// Sans Redis, la déconnexion reste silencieusement côté client
func TestLogout_SansRedis(t *testing.T) {
	svc, _, _ := setupAuthService()

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("Logout sans Redis devrait réussir: %v", err)
	}
}

func TestMe_Success(t *testing.T) {
	svc, accountRepo, _ := setupAuthService()
	account := createTestAccount(accountRepo, "benali@univ.dz", "motdepasse123")

	result, err := svc.Me(context.Background(), account.AccountID)
	if err != nil {
		t.Fatalf("Me devrait réussir: %v", err)
	}
	if result.Email != "benali@univ.dz" {
		t.Errorf("email attendu benali@univ.dz, obtenu %s", result.Email)
	}
}

func TestMe_CompteIntrouvable(t *testing.T) {
	svc, _, _ := setupAuthService()

	_, err := svc.Me(context.Background(), "inexistant")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("ErrAccountNotFound attendu, obtenu: %v", err)
	}
}
