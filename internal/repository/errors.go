package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrDuplicate = errors.New("duplicate key")

const pgUniqueViolation = "23505"

// isUniqueViolation recognises unique constraint failures from both the
// PostgreSQL and the SQLite driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
