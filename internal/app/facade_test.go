package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/polkiloo/usersapi/internal/config"
	domainErrors "github.com/polkiloo/usersapi/internal/domain/errors"
	"github.com/polkiloo/usersapi/internal/domain/model"
	"github.com/polkiloo/usersapi/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/usersapi/internal/test"
	"github.com/polkiloo/usersapi/internal/usecase"
)

func newFacade(t *testing.T) (*UsersFacade, *testhelpers.UserRepositoryStub) {
	t.Helper()
	rules, err := usecase.NewRules(&config.Config{LoginPattern: `^[A-Za-z0-9_-]+$`, MinPageSize: 1, MaxPageSize: 20})
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	repo := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewUserUseCase(repo, usecase.NewValidator(rules), usecase.NewPaginator(rules))
	return NewUsersFacade(uc), repo
}

func TestUsersFacadeLifecycle(t *testing.T) {
	facade, repo := newFacade(t)
	ctx := context.Background()

	prepared, err := facade.PrepareUser(model.NewUser{Login: testhelpers.Ptr("alice_01")})
	if err != nil {
		t.Fatalf("prepare returned error: %v", err)
	}
	created, err := facade.CreateUser(ctx, prepared)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	got, err := facade.User(ctx, created.ID)
	if err != nil {
		t.Fatalf("user returned error: %v", err)
	}
	if got.Login != "alice_01" || got.FirstName != "John" || got.LastName != "Doe" {
		t.Fatalf("unexpected user %+v", got)
	}

	value := "Alice"
	if err := facade.PatchUser(ctx, created.ID, []model.PatchOperation{{Op: "replace", Path: "firstName", Value: &value}}); err != nil {
		t.Fatalf("patch returned error: %v", err)
	}
	if repo.Users[created.ID].FirstName != "Alice" {
		t.Fatal("expected patch to be persisted")
	}

	page, err := facade.Users(ctx, 0, 0)
	if err != nil {
		t.Fatalf("users returned error: %v", err)
	}
	if page.Descriptor.PageSize != 1 || len(page.Items) != 1 {
		t.Fatalf("unexpected page %+v", page)
	}

	if err := facade.DeleteUser(ctx, created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := facade.User(ctx, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestUsersFacadeErrors(t *testing.T) {
	facade, repo := newFacade(t)
	ctx := context.Background()

	if _, err := facade.PrepareUser(model.NewUser{}); err == nil {
		t.Fatal("expected validation error for absent login")
	}
	if err := facade.DeleteUser(ctx, uuid.New()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	repo.Err = errors.New("boom")
	if _, err := facade.Users(ctx, 1, 1); err == nil {
		t.Fatal("expected repository error")
	}
}

var _ handlers.UserFacade = (*UsersFacade)(nil)
