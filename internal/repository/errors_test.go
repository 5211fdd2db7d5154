package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func TestTranslateError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil))
	})

	t.Run("no rows means not found", func(t *testing.T) {
		assert.ErrorIs(t, translateError(sql.ErrNoRows), domain.ErrNotFound)
	})

	t.Run("unique violation means already exists", func(t *testing.T) {
		err := &pgconn.PgError{Code: pgUniqueViolation}

		assert.ErrorIs(t, translateError(err), domain.ErrAlreadyExists)
	})

	t.Run("foreign key violation means not found", func(t *testing.T) {
		err := &pgconn.PgError{Code: pgForeignKeyViolation}

		assert.ErrorIs(t, translateError(err), domain.ErrNotFound)
	})

	t.Run("wrapped driver errors are still recognized", func(t *testing.T) {
		err := fmt.Errorf("failed to insert alumni: %w", &pgconn.PgError{Code: pgUniqueViolation})

		assert.ErrorIs(t, translateError(err), domain.ErrAlreadyExists)
	})

	t.Run("anything else becomes unexpected", func(t *testing.T) {
		cause := errors.New("connection refused")
		translated := translateError(cause)

		var unexpected *domain.UnexpectedError
		assert.ErrorAs(t, translated, &unexpected)
		assert.ErrorIs(t, translated, cause)
	})
}
