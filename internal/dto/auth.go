package dto

// LoginRequest requête de connexion
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest requête de renouvellement de token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse paire de tokens émise à la connexion
type TokenResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int             `json:"expires_in"`
	Account      AccountResponse `json:"account"`
}

// AccountResponse représentation publique d'un compte enseignant
type AccountResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	NomOfficiel string `json:"nom_officiel"`
	ReducedLoad bool   `json:"reduced_load"`
	Role        string `json:"role"`
}

// SetReducedLoadRequest bascule de la décharge administrative (admin)
type SetReducedLoadRequest struct {
	ReducedLoad *bool `json:"reduced_load" binding:"required"`
}
