package memory

import (
	"context"
	"sort"
	"sync"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
)

type UserRepository struct {
	mu     sync.RWMutex
	byID   map[uint]*user.User
	nextID uint
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:   make(map[uint]*user.User),
		nextID: 1,
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Username() == u.Username() || existing.Email() == u.Email() {
			return errors.NewConflictError("username or email already exists")
		}
	}

	if u.ID() == 0 {
		if err := u.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	} else if u.ID() >= r.nextID {
		r.nextID = u.ID() + 1
	}

	r.byID[u.ID()] = u
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID()]; !exists {
		return errors.NewNotFoundError("user not found")
	}

	for id, existing := range r.byID {
		if id == u.ID() {
			continue
		}
		if existing.Username() == u.Username() || existing.Email() == u.Email() {
			return errors.NewConflictError("username or email already exists")
		}
	}

	r.byID[u.ID()] = u
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return errors.NewNotFoundError("user not found")
	}

	delete(r.byID, id)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.byID[id]
	if !exists {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*user.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, u)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].ID() < users[j].ID()
	})

	return users, nil
}
