package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/usersapi/internal/domain/model"
	"github.com/polkiloo/usersapi/internal/usecase"
)

// UsersFacade exposes user use cases to the transport layer.
type UsersFacade struct {
	users *usecase.UserUseCase
}

func NewUsersFacade(users *usecase.UserUseCase) *UsersFacade {
	return &UsersFacade{users: users}
}

func (f *UsersFacade) User(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return f.users.Get(ctx, id)
}

func (f *UsersFacade) PrepareUser(input model.NewUser) (model.User, error) {
	return f.users.Prepare(input)
}

func (f *UsersFacade) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	return f.users.Insert(ctx, user)
}

func (f *UsersFacade) PatchUser(ctx context.Context, id uuid.UUID, ops []model.PatchOperation) error {
	return f.users.Patch(ctx, id, ops)
}

func (f *UsersFacade) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return f.users.Delete(ctx, id)
}

func (f *UsersFacade) Users(ctx context.Context, pageNumber, pageSize int) (*model.Page, error) {
	return f.users.List(ctx, pageNumber, pageSize)
}
