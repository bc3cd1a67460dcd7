package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/polkiloo/usersapi/internal/domain/model"
	"github.com/polkiloo/usersapi/internal/domain/repository"
)

// UserUseCase orchestrates user lifecycle on top of the repository.
type UserUseCase struct {
	users     repository.UserRepository
	validator *Validator
	paginator Paginator
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, validator *Validator, paginator Paginator) *UserUseCase {
	return &UserUseCase{users: users, validator: validator, paginator: paginator}
}

// Get returns user by identifier.
func (u *UserUseCase) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return u.users.FindByID(ctx, id)
}

// Prepare validates creation input without persisting anything.
func (u *UserUseCase) Prepare(input model.NewUser) (model.User, error) {
	return u.validator.Creation(input)
}

// Insert stores an already validated user.
func (u *UserUseCase) Insert(ctx context.Context, user model.User) (*model.User, error) {
	created, err := u.users.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// Patch applies operations to the stored user and persists the result only when
// every operation succeeded.
func (u *UserUseCase) Patch(ctx context.Context, id uuid.UUID, ops []model.PatchOperation) error {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	patched, err := u.validator.ApplyPatch(*user, ops)
	if err != nil {
		return err
	}

	return u.users.Update(ctx, patched)
}

// Delete removes an existing user.
func (u *UserUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.users.FindByID(ctx, id); err != nil {
		return err
	}
	return u.users.Delete(ctx, id)
}

// List returns the requested page after clamping raw paging input.
func (u *UserUseCase) List(ctx context.Context, pageNumber, pageSize int) (*model.Page, error) {
	pageNumber, pageSize = u.paginator.Normalize(pageNumber, pageSize)

	items, total, err := u.users.GetPage(ctx, pageNumber, pageSize)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	if items == nil {
		items = []model.User{}
	}

	return &model.Page{
		Descriptor: u.paginator.Describe(pageNumber, pageSize, total),
		Items:      items,
	}, nil
}
