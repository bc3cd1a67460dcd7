package test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/usersapi/internal/domain/errors"
	"github.com/polkiloo/usersapi/internal/domain/model"
)

// UserRepositoryStub stores users in insertion order for tests.
type UserRepositoryStub struct {
	FindByIDFn func(context.Context, uuid.UUID) (*model.User, error)
	InsertFn   func(context.Context, model.User) (*model.User, error)
	UpdateFn   func(context.Context, model.User) error
	DeleteFn   func(context.Context, uuid.UUID) error
	GetPageFn  func(context.Context, int, int) ([]model.User, int, error)

	Err     error
	Users   map[uuid.UUID]model.User
	Order   []uuid.UUID
	Updates []model.User
	Deletes []uuid.UUID

	mu sync.Mutex
}

// NewUserRepositoryStub constructs stub repository with initialized storage.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[uuid.UUID]model.User)}
}

// Seed stores users as if they had been inserted, keeping their identifiers.
func (s *UserRepositoryStub) Seed(users ...model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Users == nil {
		s.Users = make(map[uuid.UUID]model.User)
	}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		s.Users[u.ID] = u
		s.Order = append(s.Order, u.ID)
	}
}

// FindByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.FindByIDFn != nil {
		return s.FindByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.Users[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &u, nil
}

// Insert assigns a fresh identifier and stores user.
func (s *UserRepositoryStub) Insert(ctx context.Context, user model.User) (*model.User, error) {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, user)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	user.ID = uuid.Nil
	s.Seed(user)
	s.mu.Lock()
	defer s.mu.Unlock()
	created := s.Users[s.Order[len(s.Order)-1]]
	return &created, nil
}

// Update records the call and replaces stored user.
func (s *UserRepositoryStub) Update(ctx context.Context, user model.User) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, user)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, user)
	if _, ok := s.Users[user.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Users[user.ID] = user
	return nil
}

// Delete records the call and removes stored user.
func (s *UserRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deletes = append(s.Deletes, id)
	if _, ok := s.Users[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Users, id)
	for i, existing := range s.Order {
		if existing == id {
			s.Order = append(s.Order[:i], s.Order[i+1:]...)
			break
		}
	}
	return nil
}

// GetPage slices stored users in insertion order.
func (s *UserRepositoryStub) GetPage(ctx context.Context, pageNumber, pageSize int) ([]model.User, int, error) {
	if s.GetPageFn != nil {
		return s.GetPageFn(ctx, pageNumber, pageSize)
	}
	if s.Err != nil {
		return nil, 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	total := len(s.Order)
	if pageNumber < 1 || pageSize < 1 || total == 0 || pageNumber-1 > (total-1)/pageSize {
		return []model.User{}, total, nil
	}
	start := (pageNumber - 1) * pageSize
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}
	items := make([]model.User, 0, end-start)
	for _, id := range s.Order[start:end] {
		items = append(items, s.Users[id])
	}
	return items, total, nil
}
