package service

import (
	"context"
	"crypto/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rodger11/geo-reconexion/internal/auth"
	"github.com/Rodger11/geo-reconexion/internal/domain"
	"github.com/Rodger11/geo-reconexion/internal/events"
	"github.com/Rodger11/geo-reconexion/internal/repository"
)

// UserService coordinates account listing and upserts.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher, bcryptCost int) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// UserUpsertInput carries an account payload as the frontend sends it:
// display role name, frontend zone form, plaintext password when one is
// being set.
type UserUpsertInput struct {
	ID       string
	Username string
	Password string
	Name     string
	Role     string
	Cargo    string
	Zona     string
	Active   bool
}

// List returns every account with lookup descriptions joined in.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Upsert creates or updates an account depending on whether the payload
// carries an identifier. It reports whether a new account was created.
func (s *UserService) Upsert(ctx context.Context, input UserUpsertInput) (bool, error) {
	write := domain.UserWrite{
		ID:       input.ID,
		Username: input.Username,
		Name:     input.Name,
		RoleCode: domain.RoleCodeFromDisplay(input.Role),
		Cargo:    input.Cargo,
		Zona:     domain.ZoneStoredName(input.Zona),
		Active:   input.Active,
	}

	if strings.TrimSpace(input.Password) != "" {
		hash, err := auth.HashPassword(input.Password, s.bcryptCost)
		if err != nil {
			return false, err
		}
		write.PasswordHash = &hash
	}

	if input.ID != "" {
		if err := s.users.Update(ctx, write); err != nil {
			return false, err
		}
		s.publish(ctx, events.EventUserUpdated, write)
		return false, nil
	}

	write.ID = newUserID()
	if err := s.users.Create(ctx, write); err != nil {
		return false, err
	}
	s.publish(ctx, events.EventUserCreated, write)
	return true, nil
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, user domain.UserWrite) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: user.ID,
		Timestamp: time.Now(),
		Payload: events.UserUpsertPayload{
			Username: user.Username,
			Role:     user.RoleCode.DisplayName(),
			Active:   user.Active,
		},
	})
}

const userIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newUserID generates a short account identifier: "U" followed by six random
// alphanumeric characters.
func newUserID() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = userIDAlphabet[int(b)%len(userIDAlphabet)]
	}
	return "U" + string(buf)
}
