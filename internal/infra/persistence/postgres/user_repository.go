// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"
	"userhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// updatableColumns are the only columns an Update may touch.
var updatableColumns = []string{"first_name", "last_name", "email", "gender", "photo"}

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByIDForUpdate retrieves a user with SELECT ... FOR UPDATE.
// Only meaningful inside a transaction from the TransactionManager.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their normalized email.
// The read is pinned to the primary so uniqueness pre-checks never see a lagging replica.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("lower(email) = ?", entity.NormalizeEmail(email)).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. The store assigns the ID and registration date.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("user violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.RegistrationDate = userM.RegistrationDate

	return nil
}

// Update writes the mutable profile columns of an existing user in a single statement.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select(updatableColumns).
		Updates(userM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("user violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns one page of users, newest registrations first, plus the total count.
func (repo *userRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	var userMs []*model.UserModel
	err := repo.db.WithContext(ctx).
		Order("registration_date DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&userMs).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	var gender *entity.Gender
	if data.Gender != nil {
		g := entity.Gender(*data.Gender)
		gender = &g
	}

	return &entity.User{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		Gender:           gender,
		Photo:            data.Photo,
		RegistrationDate: data.RegistrationDate,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	var gender *string
	if data.Gender != nil {
		g := string(*data.Gender)
		gender = &g
	}

	return &model.UserModel{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            entity.NormalizeEmail(data.Email),
		PasswordHash:     data.PasswordHash,
		Gender:           gender,
		Photo:            data.Photo,
		RegistrationDate: data.RegistrationDate,
	}
}
