package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/usersapi/internal/domain/model"
)

// UserFacade encapsulates user operations exposed via HTTP.
type UserFacade interface {
	User(ctx context.Context, id uuid.UUID) (*model.User, error)
	PrepareUser(input model.NewUser) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	PatchUser(ctx context.Context, id uuid.UUID, ops []model.PatchOperation) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	Users(ctx context.Context, pageNumber, pageSize int) (*model.Page, error)
}
