package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps driver-level failures into the domain error
// taxonomy. It is the only place vendor error codes are inspected;
// nothing above this package ever sees pgconn.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.ErrAlreadyExists
		case pgForeignKeyViolation:
			// inserting against a missing parent row
			return domain.ErrNotFound
		}
	}

	return &domain.UnexpectedError{Cause: err}
}
