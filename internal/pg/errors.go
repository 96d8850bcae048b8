package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUniqueViolation is returned by repositories when an insert hits a unique
// index. The constraint is the authoritative duplicate check; callers map this
// to their own "already exists" errors.
var ErrUniqueViolation = errors.New("unique violation")

const uniqueViolationCode = "23505"

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
