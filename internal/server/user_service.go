package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/hr-screener/internal/config"
	"github.com/jonathan/hr-screener/internal/db"
)

// UserStore is the subset of storage needed for authentication.
type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
}

// UserService provides business logic for user authentication operations
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new dashboard account.
func (s *UserService) Register(ctx context.Context, email, password string) (*db.User, error) {
	passwordHash, err := s.passwordConfig.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.store.CreateUser(ctx, email, passwordHash)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return nil, &ErrEmailAlreadyExists{Email: email}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &db.User{ID: userID, Email: email}, nil
}

// Login authenticates a user and returns the account.
func (s *UserService) Login(ctx context.Context, email, password string) (*db.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: same generic error whether the user is missing or the
	// password is wrong.
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return user, nil
}
