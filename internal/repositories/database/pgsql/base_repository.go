package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
)

// Postgres error codes we branch on.
const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
	pgQueryCanceled   = "57014"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", translateErr(err))
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", translateErr(err))
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// translateErr maps low-level store failures onto the apperrors taxonomy so
// callers can decide on retries without inspecting driver errors.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ErrTimeout
	}
	// The server-side statement_timeout cancels the statement rather than the
	// Go context, so it arrives as SQLSTATE 57014. 57P* covers the server
	// killing the session out from under us.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == pgQueryCanceled || strings.HasPrefix(pgErr.Code, "57P")) {
		return fmt.Errorf("%w: %s", apperrors.ErrTimeout, pgErr.Message)
	}
	return err
}

// isUniqueViolation reports whether err is a Postgres unique-constraint breach.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isFKViolation reports whether err is a Postgres foreign-key breach.
func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgFKViolation
}
