package model

// Rôles des comptes
const (
	RoleEnseignant = "enseignant"
	RoleAdmin      = "admin"
)

// TeacherAccount compte enseignant — table teacher_accounts
//
// NomOfficiel doit correspondre exactement à la colonne Enseignants de l'EDT ;
// c'est la seule identité que le cœur métier reçoit après authentification.
// ReducedLoad indique une décharge administrative (charge réglementaire 3h au lieu de 6h).
type TeacherAccount struct {
	AccountID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"account_id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	NomOfficiel  string `gorm:"type:varchar(150);not null"                     json:"nom_officiel"`
	ReducedLoad  bool   `gorm:"not null;default:false"                         json:"reduced_load"`
	Role         string `gorm:"type:varchar(20);not null;default:'enseignant'" json:"role"`
	BaseModel
}

// TableName nom de la table
func (TeacherAccount) TableName() string { return "teacher_accounts" }
