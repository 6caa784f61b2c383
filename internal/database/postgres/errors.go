package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/argguild/epgpbot/internal/domain"
)

// wrapErr classifies a driver error and adds the operation context.
// Transaction rollbacks forced by the server are conflicts the caller may
// retry; everything else is a storage failure.
func wrapErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, PgErrorClassTransactionRollback) {
		return fmt.Errorf("%s: %w: %w", msg, domain.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, domain.ErrStorageFailure, err)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// foreignKeyViolation returns the violated constraint name
func foreignKeyViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
