package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kirkclark82/UGCC-APP/internal/model"
)

func newRepoWithMock(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewUserRepo(db), mock
}

var userColumns = []string{"id", "fullname", "email", "usi", "password", "department", "areas_of_interest", "created_at"}

func q(s string) string { return regexp.QuoteMeta(s) }

func TestUserRepo_Create(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(q("INSERT INTO `ugcc_registration`") + ` \(.*` + q("`created_at`") + `.*\) VALUES`).
		WillReturnResult(sqlmock.NewResult(7, 1))

	before := time.Now().Add(-time.Second)
	u := &model.User{FullName: "Jo", Email: "jo@x.com", USI: "ABC123", PasswordHash: "$2a$10$hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, int64(7), u.ID)
	assert.False(t, u.CreatedAt.IsZero())
	assert.True(t, u.CreatedAt.After(before))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_CreateDuplicateKeys(t *testing.T) {
	cases := []struct {
		msg  string
		want error
	}{
		{"Duplicate entry 'jo@x.com' for key 'ugcc_registration.uk_ugcc_registration_email'", ErrDuplicateEmail},
		{"Duplicate entry 'ABC123' for key 'uk_ugcc_registration_usi'", ErrDuplicateUSI},
	}
	for _, tc := range cases {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q("INSERT INTO `ugcc_registration`")).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: tc.msg})

		err := repo.Create(context.Background(), &model.User{Email: "jo@x.com", USI: "ABC123"})
		assert.ErrorIs(t, err, tc.want)
	}
}

func TestUserRepo_CreateOtherErrorPassesThrough(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	boom := errors.New("connection reset")
	mock.ExpectExec(q("INSERT INTO `ugcc_registration`")).WillReturnError(boom)

	err := repo.Create(context.Background(), &model.User{Email: "jo@x.com", USI: "ABC123"})
	assert.ErrorIs(t, err, boom)
}

func TestUserRepo_GetByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("SELECT * FROM `ugcc_registration` WHERE email = ?")).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Jo", "jo@x.com", "ABC123", "$2a$10$hash", "", "Chess,Go", created))

	u, err := repo.GetByEmail(context.Background(), "jo@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "$2a$10$hash", u.PasswordHash)
	assert.Equal(t, "Chess,Go", u.AreasOfInterest)
	assert.True(t, created.Equal(u.CreatedAt))
}

func TestUserRepo_GetByUSINotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(q("SELECT * FROM `ugcc_registration` WHERE usi = ?")).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByUSI(context.Background(), "NOPE00")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_GetByIDDBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(q("SELECT * FROM `ugcc_registration` WHERE id = ?")).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_Update(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(q("UPDATE `ugcc_registration` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &model.User{ID: 1, FullName: "Jo", Email: "jo@x.com", USI: "ABC123"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateMissingRow(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(q("UPDATE `ugcc_registration` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &model.User{ID: 99, Email: "jo@x.com", USI: "ABC123"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_UpdateDuplicateEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(q("UPDATE `ugcc_registration` SET")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'b@x.com' for key 'uk_ugcc_registration_email'"})

	err := repo.Update(context.Background(), &model.User{ID: 1, Email: "b@x.com", USI: "ABC123"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepo_List(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .* FROM ` + q("`ugcc_registration`") + ` ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fullname", "email", "usi", "created_at"}).
			AddRow(2, "B", "b@x.com", "BBB222", now).
			AddRow(1, "A", "a@x.com", "AAA111", now.Add(-time.Hour)))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(2), users[0].ID)
	assert.Empty(t, users[0].PasswordHash)
}

func TestUserRepo_ListEmpty(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT .* FROM ` + q("`ugcc_registration`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fullname", "email", "usi", "created_at"}))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestTranslateError(t *testing.T) {
	assert.Nil(t, translateError(nil))
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), ErrNotFound)

	other := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'x' for key 'PRIMARY'"}
	assert.Equal(t, error(other), translateError(other))
}
