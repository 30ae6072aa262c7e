// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, now: time.Now}
}

// Create inserts a new refresh token. A zero ID is replaced with a fresh UUID.
func (r *Repo) Create(ctx context.Context, token *domain.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = r.now().UTC()
	}

	sql, args, err := postgres.Builder().
		Insert("refresh_tokens").
		Columns("id", "user_id", "token_hash", "expires_at", "created_at").
		Values(token.ID, token.UserID, token.TokenHash, token.ExpiresAt, token.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert refresh_token: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", token.ID)
	}
	return nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	sql, args, err := postgres.Builder().
		Select("id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at").
		From("refresh_tokens").
		Where(squirrel.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where(squirrel.Gt{"expires_at": r.now().UTC()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select refresh_token: %w", err)
	}

	var t domain.RefreshToken
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return &t, nil
}

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	return r.revoke(ctx, squirrel.Eq{"id": id}, id)
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	return r.revoke(ctx, squirrel.Eq{"user_id": userID}, userID)
}

func (r *Repo) revoke(ctx context.Context, where squirrel.Eq, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Update("refresh_tokens").
		Set("revoked_at", r.now().UTC()).
		Where(where).
		Where(squirrel.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke refresh_token: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens and returns how many were deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().
		Delete("refresh_tokens").
		Where(squirrel.Or{
			squirrel.LtOrEq{"expires_at": r.now().UTC()},
			squirrel.NotEq{"revoked_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete refresh_tokens: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
