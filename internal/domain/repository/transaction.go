package repository

import "context"

// TransactionManager runs a unit of work atomically. fn's error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory yields repositories that share the surrounding transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
}
