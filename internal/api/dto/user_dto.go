package dto

import "github.com/Rodger11/geo-reconexion/internal/domain"

// UserUpsertRequest is an account payload. A non-empty ID means update; an
// empty password means "keep the stored hash".
type UserUpsertRequest struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Cargo    string `json:"cargo"`
	Zona     string `json:"zona"`
	Activo   bool   `json:"activo"`
}

// UserResponse is one account as listed for the admin screen. The password
// hash never leaves the service.
type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Cargo    *string `json:"cargo"`
	Zona     *string `json:"zona"`
	Activo   bool    `json:"activo"`
}

// NewUserResponse shapes an account for the frontend: display role name and
// the zone sentinel rewrite.
func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.RoleCode.DisplayName(),
		Cargo:    u.Cargo,
		Zona:     domain.ZoneDisplayName(u.Zona),
		Activo:   u.Active,
	}
}
