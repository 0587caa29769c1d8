package postgres

import (
	"context"

	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. An error from fn rolls back and is returned as is;
// failures to begin or commit surface as DatabaseExecuteError. Panics roll back and re-panic.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return domainerrors.NewDatabaseExecuteError(err, "user transaction")
	}
}
