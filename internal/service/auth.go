package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/SokolovG/DevEvents/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AuthService struct {
	users  ports.UserRepo
	logger logger.Logger
}

func NewAuthService(users ports.UserRepo, logger logger.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// Authenticate looks the user up by email and verifies the password against
// the stored bcrypt hash. The comparison is constant-time.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info("user authenticated",
		logger.String("user_id", user.ID),
	)

	return user, nil
}

// Register creates a new active user. The caller supplies an already hashed
// password; this service never hashes plaintext itself.
func (s *AuthService) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.PasswordHash == "" {
		return nil, fmt.Errorf("%w: password_hash is required", domain.ErrValidation)
	}

	_, err := s.users.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          input.Email,
		Username:       input.Username,
		PasswordHash:   input.PasswordHash,
		IsActive:       true,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		logger.String("user_id", user.ID),
	)

	return user, nil
}

func (s *AuthService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
