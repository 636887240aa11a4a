package jwt

import (
	"testing"
	"time"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "cle-de-test-unitaire-edt-2026",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("acc-1", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken a échoué: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken a échoué: %v", err)
	}

	if claims.AccountID != "acc-1" {
		t.Errorf("AccountID attendu acc-1, obtenu %s", claims.AccountID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role attendu admin, obtenu %s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType attendu access, obtenu %s", claims.TokenType)
	}
	if claims.Issuer != "edt-elt" {
		t.Errorf("Issuer attendu edt-elt, obtenu %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("le JTI ne doit pas être vide")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("acc-1", "enseignant")
	if err != nil {
		t.Fatalf("GenerateRefreshToken a échoué: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken a échoué: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("TokenType attendu refresh, obtenu %s", claims.TokenType)
	}
	if time.Until(claims.ExpiresAt.Time) < 23*time.Hour {
		t.Error("le refresh token doit expirer après ~24h")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager(&config.AuthConfig{
		JWTSecret:       "une-autre-cle-secrete-123456",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("acc-1", "enseignant")
	if err != nil {
		t.Fatalf("GenerateAccessToken a échoué: %v", err)
	}

	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("erreur attendue ErrTokenInvalid, obtenue %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret:       "cle-de-test-unitaire-edt-2026",
		AccessTokenTTL:  -1 * time.Minute, // déjà expiré
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("acc-1", "enseignant")
	if err != nil {
		t.Fatalf("GenerateAccessToken a échoué: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("erreur attendue ErrTokenExpired, obtenue %v", err)
	}
}
