package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/model"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/repository"
)

func setupAccountService() (AccountService, *mockAccountRepo) {
	accountRepo := newMockAccountRepo()
	repo := &repository.Repository{
		Account:       accountRepo,
		SessionReport: newMockReportRepo(),
	}
	return NewAccountService(repo, zap.NewNop()), accountRepo
}

func TestAccountList_TriParNom(t *testing.T) {
	svc, accountRepo := setupAccountService()
	accountRepo.add(&model.TeacherAccount{Email: "c@univ.dz", NomOfficiel: "Cherif M.", Role: model.RoleEnseignant})
	accountRepo.add(&model.TeacherAccount{Email: "b@univ.dz", NomOfficiel: "Benali A.", Role: model.RoleEnseignant})

	accounts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List devrait réussir: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("2 comptes attendus, obtenu %d", len(accounts))
	}
	if accounts[0].NomOfficiel != "Benali A." {
		t.Errorf("tri par nom attendu, premier obtenu %s", accounts[0].NomOfficiel)
	}
}

func TestSetReducedLoad_Bascule(t *testing.T) {
	svc, accountRepo := setupAccountService()
	account := accountRepo.add(&model.TeacherAccount{
		Email: "b@univ.dz", NomOfficiel: "Benali A.", Role: model.RoleEnseignant,
	})

	result, err := svc.SetReducedLoad(context.Background(), account.AccountID, true)
	if err != nil {
		t.Fatalf("SetReducedLoad devrait réussir: %v", err)
	}
	if !result.ReducedLoad {
		t.Error("la décharge devrait être activée")
	}

	result, err = svc.SetReducedLoad(context.Background(), account.AccountID, false)
	if err != nil {
		t.Fatalf("désactivation: %v", err)
	}
	if result.ReducedLoad {
		t.Error("la décharge devrait être désactivée")
	}
}

func TestSetReducedLoad_CompteIntrouvable(t *testing.T) {
	svc, _ := setupAccountService()

	_, err := svc.SetReducedLoad(context.Background(), "inexistant", true)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("ErrAccountNotFound attendu, obtenu: %v", err)
	}
}
