package postgres

import (
	"context"
	"testing"
	"time"

	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var userColumns = []string{"id", "first_name", "last_name", "email", "password_hash", "gender", "photo", "registration_date"}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	registered := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "Ann", "Lee", "ann@x.io", "hash", "female", "p.jpg", registered))

	user, err := repo.FindByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "Ann", user.FirstName)
	require.NotNil(t, user.LastName)
	assert.Equal(t, "Lee", *user.LastName)
	require.NotNil(t, user.Gender)
	assert.Equal(t, entity.GenderFemale, *user.Gender)
	require.NotNil(t, user.Photo)
	assert.Equal(t, "p.jpg", *user.Photo)
	assert.Equal(t, registered, user.RegistrationDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByID(context.Background(), 99)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_FindByIDForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "Ann", nil, "ann@x.io", "hash", nil, nil, time.Now()))

	user, err := repo.FindByIDForUpdate(context.Background(), 3)

	require.NoError(t, err)
	assert.Nil(t, user.LastName)
	assert.Nil(t, user.Gender)
	assert.Nil(t, user.Photo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NormalizesInput(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE lower\(email\) = \$1`).
		WithArgs("ann@x.io", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "Ann", nil, "ann@x.io", "hash", nil, nil, time.Now()))

	user, err := repo.FindByEmail(context.Background(), "  ANN@x.io ")

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(errors.New("connection refused"))

	_, err := repo.FindByEmail(context.Background(), "ann@x.io")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 503, appErr.HTTPCode())
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	registered := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"registration_date", "id"}).AddRow(registered, 11))

	user := &entity.User{FirstName: "Bo", Email: "Bo@X.io", PasswordHash: "hash"}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(11), user.ID)
	assert.Equal(t, registered, user.RegistrationDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_lower_key"})

	err := repo.Create(context.Background(), &entity.User{FirstName: "Bo", Email: "bo@x.io", PasswordHash: "hash"})

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestUserRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET .*"first_name".*WHERE id = \$`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &entity.User{ID: 3, FirstName: "Ann", Email: "ann@x.io"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.User{ID: 3, FirstName: "Ann", Email: "ann@x.io"})

	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_Update_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Update(context.Background(), &entity.User{ID: 3, FirstName: "Ann", Email: "taken@x.io"})

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestUserRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY registration_date DESC,id DESC LIMIT \$1 OFFSET \$2`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(5, "E", nil, "e@x.io", "h", nil, nil, now).
			AddRow(4, "D", nil, "d@x.io", "h", nil, nil, now))

	users, total, err := repo.List(context.Background(), 20, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, users, 2)
	assert.Equal(t, int64(5), users[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
