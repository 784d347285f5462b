package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kirkclark82/UGCC-APP/internal/model"
)

// MemoryUserRepo volatile UserRepository. Uniqueness checks and the write that
// follows them happen under one lock, so concurrent registrations cannot both
// claim the same email or USI.
type MemoryUserRepo struct {
	mu     sync.RWMutex
	users  []model.User
	nextID int64
	now    func() time.Time
}

// NewMemoryUserRepo creates an empty store; ids start at 1.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{nextID: 1, now: time.Now}
}

func (r *MemoryUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUniqueLocked(user.Email, user.USI, 0); err != nil {
		return err
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = r.now().UTC()
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.ID == id })
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Email == email })
}

func (r *MemoryUserRepo) GetByUSI(_ context.Context, usi string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.USI == usi })
}

func (r *MemoryUserRepo) find(match func(u *model.User) bool) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if match(&r.users[i]) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepo) Update(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.users {
		if r.users[i].ID == user.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if err := r.checkUniqueLocked(user.Email, user.USI, user.ID); err != nil {
		return err
	}

	r.users[idx].ApplyProfile(user)
	return nil
}

func (r *MemoryUserRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	users := make([]model.User, len(r.users))
	copy(users, r.users)
	r.mu.RUnlock()

	sort.SliceStable(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID > users[j].ID
	})
	return users, nil
}

// checkUniqueLocked ignores the record with id self. Caller holds mu.
func (r *MemoryUserRepo) checkUniqueLocked(email, usi string, self int64) error {
	for i := range r.users {
		u := &r.users[i]
		if u.ID == self {
			continue
		}
		if u.Email == email {
			return ErrDuplicateEmail
		}
	}
	for i := range r.users {
		u := &r.users[i]
		if u.ID == self {
			continue
		}
		if u.USI == usi {
			return ErrDuplicateUSI
		}
	}
	return nil
}
