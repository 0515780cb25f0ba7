package services

import (
	"context"
	"errors"
	"testing"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthService_Login(t *testing.T) {
	repo := &MockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*entities.User, error) {
			if username != "nurse" {
				return nil, ErrNotFound
			}
			return &entities.User{Username: "nurse", Password: "digest:secret", Role: "staff"}, nil
		},
	}
	svc := NewAuthService(repo, &MockDigester{}, zap.NewNop())

	role, err := svc.Login(context.Background(), dtos.LoginRequest{Username: "nurse", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "staff", role)

	_, err = svc.Login(context.Background(), dtos.LoginRequest{Username: "nurse", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dtos.LoginRequest{Username: "ghost", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginStoreError(t *testing.T) {
	storeErr := errors.New("no such table: users")
	svc := NewAuthService(&MockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*entities.User, error) {
			return nil, storeErr
		},
	}, &MockDigester{}, zap.NewNop())

	_, err := svc.Login(context.Background(), dtos.LoginRequest{Username: "admin", Password: "admin123"})

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_AddUserStoresDigest(t *testing.T) {
	var stored *entities.User
	svc := NewAuthService(&MockUserRepository{
		CreateFunc: func(ctx context.Context, user *entities.User) error {
			stored = user
			return nil
		},
	}, &MockDigester{}, zap.NewNop())

	require.NoError(t, svc.AddUser(context.Background(), "nurse", "secret", "staff"))
	require.NotNil(t, stored)
	assert.Equal(t, "digest:secret", stored.Password)
	assert.Equal(t, "staff", stored.Role)

	assert.ErrorIs(t, svc.AddUser(context.Background(), "", "secret", "staff"), ErrEmptyCredentials)
}
