package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kirkclark82/UGCC-APP/internal/model"
)

// Store-level errors shared by every UserRepository implementation.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrDuplicateUSI   = errors.New("usi already exists")
)

// UserRepository credential store. Email and USI uniqueness is enforced by the
// store itself: Create and Update fail with ErrDuplicateEmail / ErrDuplicateUSI.
// Email and USI compare exactly, case included, in every implementation.
type UserRepository interface {
	// Create assigns ID and CreatedAt.
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUSI(ctx context.Context, usi string) (*model.User, error)
	// Update overwrites identity and profile fields of user.ID.
	// Password, ID and CreatedAt are never written.
	Update(ctx context.Context, user *model.User) error
	// List returns every record, newest first.
	List(ctx context.Context) ([]model.User, error)
}

// Repository aggregate of all repositories
type Repository struct {
	User UserRepository
}

// NewRepository MySQL-backed repositories
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User: NewUserRepo(db),
	}
}

// NewMemoryRepository volatile repositories; each call is an isolated store.
func NewMemoryRepository() *Repository {
	return &Repository{
		User: NewMemoryUserRepo(),
	}
}
