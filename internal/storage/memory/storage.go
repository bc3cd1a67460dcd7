package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/usersapi/internal/domain/errors"
	"github.com/polkiloo/usersapi/internal/domain/model"
	"github.com/polkiloo/usersapi/internal/domain/repository"
)

// Storage keeps users in process memory. Records live until the process exits.
type Storage struct {
	mu    sync.RWMutex
	users map[uuid.UUID]model.User
	order []uuid.UUID
}

type userRepository struct {
	storage *Storage
}

// New creates empty storage.
func New() *Storage {
	return &Storage{users: make(map[uuid.UUID]model.User)}
}

// Users exposes storage as a user repository.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

// Len returns number of stored users.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	u, ok := r.storage.users[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	u = u.Clone()
	return &u, nil
}

func (r *userRepository) Insert(_ context.Context, user model.User) (*model.User, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	user = user.Clone()
	for {
		user.ID = uuid.New()
		if _, taken := r.storage.users[user.ID]; !taken {
			break
		}
	}
	r.storage.users[user.ID] = user
	r.storage.order = append(r.storage.order, user.ID)

	created := user.Clone()
	return &created, nil
}

func (r *userRepository) Update(_ context.Context, user model.User) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	if _, ok := r.storage.users[user.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	r.storage.users[user.ID] = user.Clone()
	return nil
}

func (r *userRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	if _, ok := r.storage.users[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.storage.users, id)
	for i, existing := range r.storage.order {
		if existing == id {
			r.storage.order = append(r.storage.order[:i], r.storage.order[i+1:]...)
			break
		}
	}
	return nil
}

// GetPage returns users in insertion order together with the total count taken
// under the same lock, so the two always agree.
func (r *userRepository) GetPage(_ context.Context, pageNumber, pageSize int) ([]model.User, int, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	total := len(r.storage.order)
	if pageNumber < 1 || pageSize < 1 || total == 0 || pageNumber-1 > (total-1)/pageSize {
		return []model.User{}, total, nil
	}
	start := (pageNumber - 1) * pageSize
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}

	items := make([]model.User, 0, end-start)
	for _, id := range r.storage.order[start:end] {
		items = append(items, r.storage.users[id].Clone())
	}
	return items, total, nil
}
