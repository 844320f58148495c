package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors the services match on with errors.Is. Raw pgconn error
// codes stay inside this package.
var (
	// ErrDuplicate maps a unique constraint violation (23505).
	ErrDuplicate = errors.New("duplicate row")

	// ErrCheckViolation maps a check constraint violation (23514), e.g. a
	// rating outside 1-10.
	ErrCheckViolation = errors.New("check constraint violation")
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// translateError converts recognizable Postgres constraint failures into
// sentinel errors and leaves everything else untouched.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgCheckViolation:
			return ErrCheckViolation
		}
	}
	return err
}
