package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/truythudien/truythu-api/internal/domain/entity"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// List returns all users ordered by creation time descending.
	List(ctx context.Context) ([]entity.User, error)
}
