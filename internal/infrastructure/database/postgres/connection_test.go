package postgres

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"repairshop/internal/config"
	"repairshop/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

const pgxmockExpectationsNotMetMsg = "pgxmock expectations were not met"

func TestNewConnectionPool(t *testing.T) {
	ctx := context.Background()

	t.Run("should return error when database URL is empty", func(t *testing.T) {
		cfg := config.DatabaseConfig{URL: ""}
		_, err := NewConnectionPool(ctx, cfg, logger)
		assert.Error(t, err)
		assert.Equal(t, "database URL is empty in configuration", err.Error())
	})

	t.Run("should return error when the URL cannot be parsed", func(t *testing.T) {
		cfg := config.DatabaseConfig{URL: "://not-a-url"}
		_, err := NewConnectionPool(ctx, cfg, logger)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse database config from URL")
	})
}

func TestTranslateDBError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translateDBError(nil, logger))
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		err := translateDBError(pgx.ErrNoRows, logger)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("foreign key violation maps to invalid argument", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "tickets_customer_id_fkey"}
		err := translateDBError(pgErr, logger)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "tickets_customer_id_fkey")
	})

	t.Run("other pg errors map to database error", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
		err := translateDBError(pgErr, logger)
		assert.ErrorIs(t, err, apperrors.ErrDatabase)
	})

	t.Run("generic errors map to database error", func(t *testing.T) {
		err := translateDBError(errors.New("connection reset"), logger)
		assert.ErrorIs(t, err, apperrors.ErrDatabase)
	})
}
