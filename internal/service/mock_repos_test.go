package service

import (
	"context"
	"errors"

	"github.com/kirkclark82/UGCC-APP/internal/model"
	"github.com/kirkclark82/UGCC-APP/internal/repository"
)

var errStoreDown = errors.New("store unavailable")

// ── Mock UserRepository ──
//
// Backed by the in-memory store; each *Err field, when set, replaces the
// result of the matching method.

type mockUserRepo struct {
	*repository.MemoryUserRepo

	createErr     error
	getByIDErr    error
	getByEmailErr error
	getByUSIErr   error
	updateErr     error
	listErr       error

	creates int
	updates int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{MemoryUserRepo: repository.NewMemoryUserRepo()}
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.creates++
	return m.MemoryUserRepo.Create(ctx, user)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	return m.MemoryUserRepo.GetByID(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailErr != nil {
		return nil, m.getByEmailErr
	}
	return m.MemoryUserRepo.GetByEmail(ctx, email)
}

func (m *mockUserRepo) GetByUSI(ctx context.Context, usi string) (*model.User, error) {
	if m.getByUSIErr != nil {
		return nil, m.getByUSIErr
	}
	return m.MemoryUserRepo.GetByUSI(ctx, usi)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates++
	return m.MemoryUserRepo.Update(ctx, user)
}

func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.MemoryUserRepo.List(ctx)
}

// ── Mock Hasher ──

type mockHasher struct {
	hashErr    error
	compareErr error
}

func (h *mockHasher) Hash(plain string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plain, nil
}

func (h *mockHasher) Compare(hash, plain string) (bool, error) {
	if h.compareErr != nil {
		return false, h.compareErr
	}
	return hash == "hashed:"+plain, nil
}
