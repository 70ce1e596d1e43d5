package repository

import (
	"context"
	"database/sql"
	"errors"

	"quiz-zone/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}

// PostgreSQL error codes the adapters translate.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// translateError maps driver errors onto domain errors. what names the
// entity for messages, e.g. "quiz".
func translateError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(what + " not found")
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return domain.NewConflictError(what+" already exists", err)
		case pqForeignKeyViolation:
			return domain.NewPreconditionFailedError(what + " is referenced by other records")
		case pqCheckViolation:
			return domain.NewInvalidInputError(what + " violates a data constraint")
		}
	}
	return domain.NewInternalError("database error on "+what, err)
}

// ensureAffected returns not-found when an update or delete touched no rows.
func ensureAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return domain.NewInternalError("database error on "+what, err)
	}
	if n == 0 {
		return domain.NewNotFoundError(what + " not found")
	}
	return nil
}
