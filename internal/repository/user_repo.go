package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/kirkclark82/UGCC-APP/internal/model"
)

const (
	mysqlErrDuplicateEntry = 1062

	uniqueEmailKey = "uk_ugcc_registration_email"
	uniqueUSIKey   = "uk_ugcc_registration_usi"
)

// userRepo UserRepository on gorm + MySQL
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates the MySQL UserRepository
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userRepo) GetByUSI(ctx context.Context, usi string) (*model.User, error) {
	return r.first(ctx, "usi = ?", usi)
}

func (r *userRepo) first(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	// a map keeps empty strings in the SET list
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"fullname":            user.FullName,
			"email":               user.Email,
			"usi":                 user.USI,
			"address":             user.Address,
			"department":          user.Department,
			"year":                user.Year,
			"telephone":           user.Telephone,
			"emergency_contact":   user.EmergencyContact,
			"interest":            user.Interest,
			"areas_of_interest":   user.AreasOfInterest,
			"level_of_experience": user.LevelOfExperience,
		})
	if res.Error != nil {
		return translateError(res.Error)
	}
	// the DSN sets clientFoundRows, so an unchanged row still counts
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	err := r.db.WithContext(ctx).
		Select("id", "fullname", "email", "usi", "created_at").
		Order("created_at DESC").
		Order("id DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// translateError maps driver errors onto the store-level sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
		key := strings.TrimSuffix(me.Message, "'")
		switch {
		case strings.HasSuffix(key, uniqueEmailKey):
			return ErrDuplicateEmail
		case strings.HasSuffix(key, uniqueUSIKey):
			return ErrDuplicateUSI
		}
	}
	return err
}
