package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// GORM translates the error only when TranslateError is enabled on the connection
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, pgUniqueViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasSQLState(err, pgCheckViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}
