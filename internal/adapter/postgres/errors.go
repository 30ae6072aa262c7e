package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

// SQLSTATE codes the repositories translate.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// MapError converts pgx errors into domain errors, prefixed with the entity
// and, when known, its id. Context cancellation and unknown database errors
// keep their original chain.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	subject := entity
	if id != uuid.Nil {
		subject = entity + " " + id.String()
	}
	wrap := func(target error) error { return fmt.Errorf("%s: %w", subject, target) }

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return wrap(err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return wrap(domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return wrap(domain.ErrNotFound)
		case codeCheckViolation:
			field := pgErr.ColumnName
			if field == "" {
				field = pgErr.ConstraintName
			}
			return wrap(domain.NewValidationError(field, "violates constraint"))
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return wrap(domain.ErrConflict)
		}
	}

	return wrap(err)
}
