package services

import (
	"context"

	"hospital-management/internal/domain/dtos"
)

// AuthServiceContract defines the login gate and account management.
type AuthServiceContract interface {
	// Login returns the role of the account when the credentials match, and
	// ErrInvalidCredentials otherwise.
	Login(ctx context.Context, req dtos.LoginRequest) (string, error)
	AddUser(ctx context.Context, username, password, role string) error
}
