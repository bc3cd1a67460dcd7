package test

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/usersapi/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	UserFn        func(context.Context, uuid.UUID) (*model.User, error)
	PrepareUserFn func(model.NewUser) (model.User, error)
	CreateUserFn  func(context.Context, model.User) (*model.User, error)
	PatchUserFn   func(context.Context, uuid.UUID, []model.PatchOperation) error
	DeleteUserFn  func(context.Context, uuid.UUID) error
	UsersFn       func(context.Context, int, int) (*model.Page, error)
}

// User delegates to override or returns a fixed user with the requested id.
func (s UserFacadeStub) User(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Login: "player", FirstName: "John", LastName: "Doe"}, nil
}

// PrepareUser delegates to override or copies input verbatim.
func (s UserFacadeStub) PrepareUser(input model.NewUser) (model.User, error) {
	if s.PrepareUserFn != nil {
		return s.PrepareUserFn(input)
	}
	var user model.User
	if input.Login != nil {
		user.Login = *input.Login
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	return user, nil
}

// CreateUser delegates to override or assigns a random identifier.
func (s UserFacadeStub) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, user)
	}
	user.ID = uuid.New()
	return &user, nil
}

// PatchUser delegates to override or succeeds.
func (s UserFacadeStub) PatchUser(ctx context.Context, id uuid.UUID, ops []model.PatchOperation) error {
	if s.PatchUserFn != nil {
		return s.PatchUserFn(ctx, id, ops)
	}
	return nil
}

// DeleteUser delegates to override or succeeds.
func (s UserFacadeStub) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

// Users delegates to override or returns an empty first page.
func (s UserFacadeStub) Users(ctx context.Context, pageNumber, pageSize int) (*model.Page, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, pageNumber, pageSize)
	}
	return &model.Page{
		Descriptor: model.PageDescriptor{CurrentPage: 1, PageSize: 1},
		Items:      []model.User{},
	}, nil
}
