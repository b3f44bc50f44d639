package dto

import "github.com/Rodger11/geo-reconexion/internal/domain"

// LoginRequest is the credentials payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the profile object the frontend keeps for the session.
type LoginResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Cargo    *string `json:"cargo"`
	Zona     *string `json:"zona"`
	Activo   bool    `json:"activo"`
	Token    string  `json:"token"`
}

// NewLoginResponse shapes an authenticated user for the frontend.
func NewLoginResponse(user domain.User, token string) LoginResponse {
	return LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.RoleCode.DisplayName(),
		Cargo:    user.Cargo,
		Zona:     domain.ZoneDisplayName(user.Zona),
		Activo:   user.Active,
		Token:    token,
	}
}
