// Package item implements the InputItem repository using PostgreSQL.
package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

var columns = []string{
	"i.id", "i.user_id", "i.filename", "i.original_filename", "i.file_key", "i.kind", "i.mime_type",
	"i.file_size", "i.processed", "i.transcription", "i.extracted_data", "i.uploaded_at", "i.updated_at",
}

// Repo provides input item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new input item.
func (r *Repo) Create(ctx context.Context, it *domain.InputItem) error {
	extracted, err := encodeExtracted(it.Extracted)
	if err != nil {
		return err
	}

	sql, args, err := postgres.Builder().
		Insert("input_items").
		Columns("id", "user_id", "filename", "original_filename", "file_key", "kind", "mime_type",
			"file_size", "processed", "transcription", "extracted_data", "uploaded_at", "updated_at").
		Values(it.ID, it.UserID, it.Filename, it.OriginalFilename, it.FileKey, string(it.Kind), it.MimeType,
			it.FileSize, it.Processed, it.Transcription, extracted, it.UploadedAt, it.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert input_item: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "input_item", it.ID)
	}
	return nil
}

// UpdateTranscription replaces the transcription text.
func (r *Repo) UpdateTranscription(ctx context.Context, id uuid.UUID, text string, now time.Time) error {
	return r.update(ctx, id, squirrel.Eq{}, map[string]any{
		"transcription": text,
		"updated_at":    now,
	})
}

// UpdateExtracted replaces the extracted data. A nil value clears it.
func (r *Repo) UpdateExtracted(ctx context.Context, id uuid.UUID, data *domain.ExtractedData, now time.Time) error {
	extracted, err := encodeExtracted(data)
	if err != nil {
		return err
	}
	return r.update(ctx, id, squirrel.Eq{}, map[string]any{
		"extracted_data": extracted,
		"updated_at":     now,
	})
}

// UpdateFile records the stored file after its content was replaced.
func (r *Repo) UpdateFile(ctx context.Context, id uuid.UUID, fileKey, filename, mimeType string, size int64, now time.Time) error {
	return r.update(ctx, id, squirrel.Eq{}, map[string]any{
		"file_key":   fileKey,
		"filename":   filename,
		"mime_type":  mimeType,
		"file_size":  size,
		"updated_at": now,
	})
}

// MarkProcessed stores an enrichment result and sets processed, but only if
// the item is still unprocessed. It reports false when another caller got
// there first.
func (r *Repo) MarkProcessed(ctx context.Context, id uuid.UUID, transcription string, data *domain.ExtractedData, now time.Time) (bool, error) {
	extracted, err := encodeExtracted(data)
	if err != nil {
		return false, err
	}

	err = r.update(ctx, id, squirrel.Eq{"processed": false}, map[string]any{
		"processed":      true,
		"transcription":  transcription,
		"extracted_data": extracted,
		"updated_at":     now,
	})
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		// The row exists but is already processed, or it is gone.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return false, getErr
		}
		return false, nil
	default:
		return false, err
	}
}

// SaveProcessed stores an enrichment result and sets processed regardless of
// the current flag. Used for on-demand re-transcription.
func (r *Repo) SaveProcessed(ctx context.Context, id uuid.UUID, transcription string, data *domain.ExtractedData, now time.Time) error {
	extracted, err := encodeExtracted(data)
	if err != nil {
		return err
	}
	return r.update(ctx, id, squirrel.Eq{}, map[string]any{
		"processed":      true,
		"transcription":  transcription,
		"extracted_data": extracted,
		"updated_at":     now,
	})
}

// Delete removes the item row. Membership and annotations cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete("input_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete input_item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "input_item", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "input_item", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InputItem, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("input_items i").
		Where(squirrel.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select input_item: %w", err)
	}

	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "input_item", id)
	}
	return &it, nil
}

// ListByUser returns the user's items newest first. A non-empty kind filters
// by kind. The int is the total count before pagination.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, kind domain.ItemKind, limit, offset int) ([]domain.InputItem, int, error) {
	where := squirrel.Eq{"i.user_id": userID}
	if kind != "" {
		where["i.kind"] = string(kind)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("input_items i").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count input_items: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "input_item", uuid.Nil)
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From("input_items i").
		Where(where).
		OrderBy("i.uploaded_at DESC", "i.id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list input_items: %w", err)
	}

	items, err := r.collect(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListByWorkspace returns the workspace's member items in membership order.
// Member ids without a matching item cannot exist (the join table cascades).
func (r *Repo) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.InputItem, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("workspace_items wi").
		Join("input_items i ON i.id = wi.item_id").
		Where(squirrel.Eq{"wi.workspace_id": workspaceID}).
		OrderBy("wi.position", "wi.added_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list workspace items: %w", err)
	}

	return r.collect(ctx, sql, args)
}

// ListUnprocessed returns up to limit unprocessed items of the given kind,
// oldest upload first.
func (r *Repo) ListUnprocessed(ctx context.Context, kind domain.ItemKind, limit int) ([]domain.InputItem, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("input_items i").
		Where(squirrel.Eq{"i.processed": false, "i.kind": string(kind)}).
		OrderBy("i.uploaded_at", "i.id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list unprocessed items: %w", err)
	}

	return r.collect(ctx, sql, args)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) update(ctx context.Context, id uuid.UUID, guard squirrel.Eq, set map[string]any) error {
	b := postgres.Builder().
		Update("input_items").
		SetMap(set).
		Where(squirrel.Eq{"id": id})
	if len(guard) > 0 {
		b = b.Where(guard)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update input_item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "input_item", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "input_item", id)
	}
	return nil
}

func (r *Repo) collect(ctx context.Context, sql string, args []any) ([]domain.InputItem, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "input_item", uuid.Nil)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InputItem, error) {
		return scanItem(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "input_item", uuid.Nil)
	}
	return items, nil
}

func scanItem(row pgx.Row) (domain.InputItem, error) {
	var (
		it        domain.InputItem
		kind      string
		extracted []byte
	)
	err := row.Scan(&it.ID, &it.UserID, &it.Filename, &it.OriginalFilename, &it.FileKey, &kind, &it.MimeType,
		&it.FileSize, &it.Processed, &it.Transcription, &extracted, &it.UploadedAt, &it.UpdatedAt)
	if err != nil {
		return it, err
	}
	it.Kind = domain.ItemKind(kind)

	if extracted != nil {
		var d domain.ExtractedData
		if err := json.Unmarshal(extracted, &d); err != nil {
			return it, fmt.Errorf("decode extracted_data for %s: %w", it.ID, err)
		}
		d = d.Normalize()
		it.Extracted = &d
	}
	return it, nil
}

func encodeExtracted(d *domain.ExtractedData) ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	b, err := json.Marshal(d.Normalize())
	if err != nil {
		return nil, fmt.Errorf("encode extracted_data: %w", err)
	}
	return b, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
