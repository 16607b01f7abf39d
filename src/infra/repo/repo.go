// Package repo implements the core repository ports on PostgreSQL using pgx.
// Store-level failures are translated into the domain sentinel errors here,
// so the services never see driver types.
package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reports whether the error is a unique-constraint
// violation (Postgres error class 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
