package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation en SQLSTATE.
const codeUniqueViolation = "23505"

// isUniqueViolation detecta el choque contra un índice único, p.ej. el índice
// sobre lower(email) en users o la PK de companies durante el seed. El
// fallback por substring cubre errores ya envueltos que perdieron el *PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation
	}
	return strings.Contains(err.Error(), codeUniqueViolation)
}
