package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rodger11/geo-reconexion/internal/auth"
	"github.com/Rodger11/geo-reconexion/internal/config"
	"github.com/Rodger11/geo-reconexion/internal/domain"
	"github.com/Rodger11/geo-reconexion/internal/events"
	"github.com/Rodger11/geo-reconexion/pkg/util"
)

type fakeUserRepo struct {
	users    map[string]domain.User
	created  []domain.UserWrite
	updated  []domain.UserWrite
	readErr  error
	writeErr error
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	user, ok := f.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (f *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	result := []domain.User{}
	for _, user := range f.users {
		result = append(result, user)
	}
	return result, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.UserWrite) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user domain.UserWrite) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.updated = append(f.updated, user)
	return nil
}

type fakeDispatcher struct {
	published []events.Event
}

func (f *fakeDispatcher) Publish(_ context.Context, event events.Event) {
	f.published = append(f.published, event)
}

func (f *fakeDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 8, BcryptCost: bcrypt.MinCost}
}

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return &hash
}

func domainStatus(t *testing.T, err error) int {
	t.Helper()
	var domainErr *util.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return domainErr.HTTPStatus
}

func TestLoginUnknownUsername(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), &fakeUserRepo{users: map[string]domain.User{}})

	_, err := svc.Login(context.Background(), "nadie", "whatever")
	if status := domainStatus(t, err); status != 401 {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestLoginInactiveUserForbiddenRegardlessOfPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]domain.User{
		"ana": {ID: "U1", Username: "ana", PasswordHash: hashOf(t, "secret123"), RoleCode: domain.RoleAdmin, Active: false},
	}}
	svc := NewAuthService(testAuthConfig(), repo)

	for _, password := range []string{"secret123", "wrong"} {
		_, err := svc.Login(context.Background(), "ana", password)
		if status := domainStatus(t, err); status != 403 {
			t.Fatalf("password %q: expected 403, got %d", password, status)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]domain.User{
		"ana": {ID: "U1", Username: "ana", PasswordHash: hashOf(t, "secret123"), RoleCode: domain.RoleAdmin, Active: true},
	}}
	svc := NewAuthService(testAuthConfig(), repo)

	_, err := svc.Login(context.Background(), "ana", "not-it")
	if status := domainStatus(t, err); status != 401 {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestLoginUserWithoutPasswordHash(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]domain.User{
		"ana": {ID: "U1", Username: "ana", RoleCode: domain.RoleAdmin, Active: true},
	}}
	svc := NewAuthService(testAuthConfig(), repo)

	_, err := svc.Login(context.Background(), "ana", "anything")
	if status := domainStatus(t, err); status != 401 {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestLoginSuccessIssuesEightHourToken(t *testing.T) {
	cargo := "Coordinadora de campo"
	repo := &fakeUserRepo{users: map[string]domain.User{
		"ana": {
			ID:           "U1",
			Username:     "ana",
			PasswordHash: hashOf(t, "secret123"),
			Name:         "Ana Malaver",
			RoleCode:     domain.RoleAdmin,
			Cargo:        &cargo,
			Active:       true,
		},
	}}
	svc := NewAuthService(testAuthConfig(), repo)

	result, err := svc.Login(context.Background(), "ana", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.User.ID != "U1" || result.User.Username != "ana" {
		t.Fatalf("unexpected profile: %+v", result.User)
	}

	claims, err := svc.TokenManager().ParseToken(result.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != "U1" {
		t.Errorf("expected token id U1, got %s", claims.UserID)
	}
	if claims.Role != "ADMIN" {
		t.Errorf("expected token role ADMIN, got %s", claims.Role)
	}

	if remaining := time.Until(result.ExpiresAt); remaining < 7*time.Hour+59*time.Minute || remaining > 8*time.Hour {
		t.Errorf("expected roughly 8h validity, got %v", remaining)
	}
}

func TestLoginStoreFailurePropagates(t *testing.T) {
	repo := &fakeUserRepo{readErr: errors.New("connection refused")}
	svc := NewAuthService(testAuthConfig(), repo)

	_, err := svc.Login(context.Background(), "ana", "secret123")
	if err == nil {
		t.Fatal("expected error")
	}
	var domainErr *util.DomainError
	if errors.As(err, &domainErr) {
		t.Fatalf("store errors must pass through untyped, got %v", domainErr)
	}
}
