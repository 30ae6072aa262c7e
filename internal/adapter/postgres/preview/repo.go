// Package preview implements the detection preview repository using PostgreSQL.
package preview

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

// Repo records annotated copies awaiting accept or reject.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new preview repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert records the pending preview of an item, replacing an older one.
func (r *Repo) Upsert(ctx context.Context, p *domain.DetectionPreview) error {
	sql, args, err := postgres.Builder().
		Insert("detection_previews").
		Columns("item_id", "preview_key", "label", "box_count", "created_at").
		Values(p.ItemID, p.PreviewKey, p.Label, p.BoxCount, p.CreatedAt).
		Suffix(`ON CONFLICT (item_id) DO UPDATE SET
			preview_key = EXCLUDED.preview_key,
			label = EXCLUDED.label,
			box_count = EXCLUDED.box_count,
			created_at = EXCLUDED.created_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert detection_preview: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "detection_preview", p.ItemID)
	}
	return nil
}

// GetByItem returns the pending preview of an item.
func (r *Repo) GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.DetectionPreview, error) {
	list, err := r.list(ctx, postgres.Builder().
		Select("item_id", "preview_key", "label", "box_count", "created_at").
		From("detection_previews").
		Where(squirrel.Eq{"item_id": itemID}))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "detection_preview", itemID)
	}
	return &list[0], nil
}

// Delete removes the preview record of an item.
func (r *Repo) Delete(ctx context.Context, itemID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete("detection_previews").
		Where(squirrel.Eq{"item_id": itemID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete detection_preview: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "detection_preview", itemID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "detection_preview", itemID)
	}
	return nil
}

// ListOlderThan returns up to limit previews created before cutoff, oldest first.
func (r *Repo) ListOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]domain.DetectionPreview, error) {
	return r.list(ctx, postgres.Builder().
		Select("item_id", "preview_key", "label", "box_count", "created_at").
		From("detection_previews").
		Where(squirrel.Lt{"created_at": cutoff}).
		OrderBy("created_at").
		Limit(uint64(limit)))
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.DetectionPreview, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select detection_previews: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "detection_preview", uuid.Nil)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DetectionPreview, error) {
		var p domain.DetectionPreview
		err := row.Scan(&p.ItemID, &p.PreviewKey, &p.Label, &p.BoxCount, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "detection_preview", uuid.Nil)
	}
	return list, nil
}
