package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/SokolovG/DevEvents/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, log)

	user := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "s3cret-pass"),
		IsActive:     true,
	}
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	got, err := svc.Authenticate(context.Background(), "alice@example.com", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, log)

	user := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "s3cret-pass"),
		IsActive:     true,
	}
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	_, err := svc.Authenticate(context.Background(), "alice@example.com", "wrong-pass")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, log)

	userRepo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_Authenticate_InactiveUser(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, log)

	user := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "s3cret-pass"),
		IsActive:     false,
	}
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	_, err := svc.Authenticate(context.Background(), "alice@example.com", "s3cret-pass")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_Register_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, log)

	userRepo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(nil, domain.ErrUserNotFound)
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), domain.RegisterUserInput{
		Email:        "bob@example.com",
		PasswordHash: "$2a$10$fakehash",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "bob@example.com", user.Email)
	assert.True(t, user.IsActive)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, log)

	existing := &domain.User{ID: "u1", Email: "bob@example.com"}
	userRepo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(existing, nil)

	_, err := svc.Register(context.Background(), domain.RegisterUserInput{
		Email:        "bob@example.com",
		PasswordHash: "$2a$10$fakehash",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestAuthService_Register_MissingEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, log)

	_, err := svc.Register(context.Background(), domain.RegisterUserInput{
		PasswordHash: "$2a$10$fakehash",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_LookupError(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, log)

	userRepo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(nil, errors.New("db error"))

	_, err := svc.Register(context.Background(), domain.RegisterUserInput{
		Email:        "bob@example.com",
		PasswordHash: "$2a$10$fakehash",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUserAlreadyExists)
}
