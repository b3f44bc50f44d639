package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Rodger11/geo-reconexion/internal/auth"
	"github.com/Rodger11/geo-reconexion/internal/config"
	"github.com/Rodger11/geo-reconexion/internal/domain"
	"github.com/Rodger11/geo-reconexion/internal/repository"
	"github.com/Rodger11/geo-reconexion/pkg/util"
)

// Error messages the frontend displays verbatim.
const (
	msgInvalidCredentials = "Credenciales inválidas. Acceso denegado."
	msgInactiveUser       = "Usuario inactivo"
)

// AuthService validates credentials and issues session tokens.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTLHours),
	}
}

// LoginResult bundles the authenticated profile with its session token.
type LoginResult struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time
}

// Login authenticates a username/password pair. An unknown username and a
// wrong password are indistinguishable to the caller; an inactive account is
// reported before the password is checked.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewUnauthorized(msgInvalidCredentials)
		}
		return nil, err
	}

	if !user.Active {
		return nil, util.NewForbidden(msgInactiveUser)
	}

	if user.PasswordHash == nil {
		return nil, util.NewUnauthorized(msgInvalidCredentials)
	}
	if err := auth.ComparePassword(*user.PasswordHash, password); err != nil {
		return nil, util.NewUnauthorized(msgInvalidCredentials)
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user.ID, user.RoleCode.DisplayName())
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: *user, Token: token, ExpiresAt: expiresAt}, nil
}

// TokenManager exposes the underlying token manager, e.g. for downstream
// consumers that verify issued tokens.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
