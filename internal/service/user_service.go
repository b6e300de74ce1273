package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// UserService provides registration and login against the user store.
type UserService interface {
	// Register creates a new user with the given credentials.
	// Returns a domain validation error if either input is empty and
	// store.ErrUsernameExists if the username is already taken.
	Register(ctx context.Context, username, password string) (*domain.User, error)

	// Login verifies the given credentials.
	// Returns ErrInvalidCredentials if no such user exists or the password
	// digest does not match; the two cases are indistinguishable.
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// Ensure UserServiceImpl implements UserService interface
var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// Register implements UserService.Register.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrEmptyUsername
	}
	if password == "" {
		return nil, domain.ErrEmptyPassword
	}

	user, err := domain.NewUser(username, s.hasher.Hash(password))
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to register existing username",
				"username", username)
			return nil, err
		}
		s.logger.Error("failed to create user",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		"username", username)

	return user, nil
}

// Login implements UserService.Login.
func (s *UserServiceImpl) Login(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrEmptyUsername
	}
	if password == "" {
		return nil, domain.ErrEmptyPassword
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Unknown user and wrong password produce the same error.
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.DigestsEqual(s.hasher.Hash(password), user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	s.logger.Debug("user logged in",
		"username", username)

	return user, nil
}
