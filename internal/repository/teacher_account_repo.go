package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/model"
)

// TeacherAccountRepository accès aux comptes enseignants
type TeacherAccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.TeacherAccount, error)
	GetByID(ctx context.Context, id string) (*model.TeacherAccount, error)
	GetByNomOfficiel(ctx context.Context, nom string) (*model.TeacherAccount, error)
	List(ctx context.Context) ([]model.TeacherAccount, error)
	SetReducedLoad(ctx context.Context, id string, reduced bool) error
}

type teacherAccountRepo struct {
	db *gorm.DB
}

// NewTeacherAccountRepo crée une instance de TeacherAccountRepository
func NewTeacherAccountRepo(db *gorm.DB) TeacherAccountRepository {
	return &teacherAccountRepo{db: db}
}

func (r *teacherAccountRepo) GetByEmail(ctx context.Context, email string) (*model.TeacherAccount, error) {
	var account model.TeacherAccount
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *teacherAccountRepo) GetByID(ctx context.Context, id string) (*model.TeacherAccount, error) {
	var account model.TeacherAccount
	if err := r.db.WithContext(ctx).Where("account_id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *teacherAccountRepo) GetByNomOfficiel(ctx context.Context, nom string) (*model.TeacherAccount, error) {
	var account model.TeacherAccount
	if err := r.db.WithContext(ctx).Where("nom_officiel = ?", nom).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *teacherAccountRepo) List(ctx context.Context) ([]model.TeacherAccount, error) {
	var accounts []model.TeacherAccount
	err := r.db.WithContext(ctx).Order("nom_officiel ASC").Find(&accounts).Error
	return accounts, err
}

func (r *teacherAccountRepo) SetReducedLoad(ctx context.Context, id string, reduced bool) error {
	return r.db.WithContext(ctx).
		Model(&model.TeacherAccount{}).
		Where("account_id = ?", id).
		Update("reduced_load", reduced).Error
}
