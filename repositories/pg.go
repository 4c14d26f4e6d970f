package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// isNoRows reports the zero-row outcome of a point lookup or a conditional
// update with RETURNING. For topic transitions this is the race signal.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation reports a constraint collision, e.g. the partial unique
// index guarding the one-topic-per-student rule, or a duplicate identity
// during registration.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
