package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/usersapi/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// Insert stores user under a freshly generated identifier, ignoring user.ID.
	Insert(ctx context.Context, user model.User) (*model.User, error)
	Update(ctx context.Context, user model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetPage returns users in insertion order together with the total count.
	GetPage(ctx context.Context, pageNumber, pageSize int) ([]model.User, int, error)
}
