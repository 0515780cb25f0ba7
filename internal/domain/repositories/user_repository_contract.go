package repositories

import (
	"context"

	"hospital-management/internal/domain/entities"
)

type UserRepositoryContract interface {
	Create(ctx context.Context, user *entities.User) error
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
