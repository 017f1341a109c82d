package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/msomdec/job-portal/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Messages returned by AddUser. Callers map them to their own response codes.
const (
	MsgEmailExists    = "Email already exist"
	MsgUserRegistered = "User Registered Successfully"
)

// UsersManager registers job-portal users.
type UsersManager struct {
	users      domain.UserRepository
	bcryptCost int
}

// NewUsersManager creates a new UsersManager. A bcryptCost of 0 stores
// passwords exactly as given; a positive cost hashes them with bcrypt first.
func NewUsersManager(users domain.UserRepository, bcryptCost int) *UsersManager {
	return &UsersManager{
		users:      users,
		bcryptCost: bcryptCost,
	}
}

// AddUser stores user unless its email is already registered, and returns
// MsgUserRegistered or MsgEmailExists. Store failures are returned as errors.
func (m *UsersManager) AddUser(ctx context.Context, user *domain.User) (string, error) {
	if user == nil || user.Email == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	count, err := m.users.CountByEmail(ctx, user.Email)
	if err != nil {
		return "", fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		slog.Info("registration rejected: email already exists", "email", user.Email)
		return MsgEmailExists, nil
	}

	record := *user
	if m.bcryptCost > 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), m.bcryptCost)
		if err != nil {
			return "", fmt.Errorf("hash password: %w", err)
		}
		record.Password = string(hash)
	}

	if err := m.users.Save(ctx, &record); err != nil {
		// Another registration for the same email won between count and insert.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			slog.Info("registration rejected: email already exists", "email", user.Email, "race", true)
			return MsgEmailExists, nil
		}
		return "", fmt.Errorf("save user: %w", err)
	}

	slog.Info("user registered", "email", user.Email, "role", user.Role)
	return MsgUserRegistered, nil
}
