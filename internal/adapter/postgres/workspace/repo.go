// Package workspace implements the Workspace repository using PostgreSQL.
// Membership lives in the workspace_items join table; its position column
// keeps the insertion order.
package workspace

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

// Repo provides workspace and membership persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new workspace repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Workspace operations
// ---------------------------------------------------------------------------

// Create inserts a new workspace. Members are not written.
func (r *Repo) Create(ctx context.Context, ws *domain.Workspace) error {
	sql, args, err := postgres.Builder().
		Insert("workspaces").
		Columns("id", "user_id", "name", "status", "created_at", "updated_at").
		Values(ws.ID, ws.UserID, ws.Name, string(ws.Status), ws.CreatedAt, ws.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert workspace: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "workspace", ws.ID)
	}
	return nil
}

// GetByID returns a workspace with its member ids in insertion order.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	sql, args, err := postgres.Builder().
		Select("id", "user_id", "name", "status", "created_at", "updated_at").
		From("workspaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select workspace: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		ws     domain.Workspace
		status string
	)
	err = q.QueryRow(ctx, sql, args...).Scan(&ws.ID, &ws.UserID, &ws.Name, &status, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "workspace", id)
	}
	ws.Status = domain.WorkspaceStatus(status)

	ids, err := r.ListItemIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	ws.ItemIDs = ids
	ws.ItemCount = len(ids)

	return &ws, nil
}

// ListByUser returns the user's workspaces, most recently updated first,
// with member counts but without member ids. The int is the total count.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Workspace, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From("workspaces").Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count workspaces: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "workspace", uuid.Nil)
	}

	sql, args, err := postgres.Builder().
		Select("w.id", "w.user_id", "w.name", "w.status", "w.created_at", "w.updated_at",
			"(SELECT count(*) FROM workspace_items wi WHERE wi.workspace_id = w.id)").
		From("workspaces w").
		Where(squirrel.Eq{"w.user_id": userID}).
		OrderBy("w.updated_at DESC", "w.id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list workspaces: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "workspace", uuid.Nil)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Workspace, error) {
		var (
			ws     domain.Workspace
			status string
		)
		err := row.Scan(&ws.ID, &ws.UserID, &ws.Name, &status, &ws.CreatedAt, &ws.UpdatedAt, &ws.ItemCount)
		ws.Status = domain.WorkspaceStatus(status)
		return ws, err
	})
	if err != nil {
		return nil, 0, postgres.MapError(err, "workspace", uuid.Nil)
	}

	return list, total, nil
}

// Update writes name, status and updated_at.
func (r *Repo) Update(ctx context.Context, ws *domain.Workspace) error {
	sql, args, err := postgres.Builder().
		Update("workspaces").
		Set("name", ws.Name).
		Set("status", string(ws.Status)).
		Set("updated_at", ws.UpdatedAt).
		Where(squirrel.Eq{"id": ws.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update workspace: %w", err)
	}

	return r.execOne(ctx, sql, args, ws.ID)
}

// SetStatus changes only the status and refreshes updated_at.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.WorkspaceStatus, now time.Time) error {
	sql, args, err := postgres.Builder().
		Update("workspaces").
		Set("status", string(status)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set workspace status: %w", err)
	}

	return r.execOne(ctx, sql, args, id)
}

// Touch refreshes updated_at.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID, now time.Time) error {
	sql, args, err := postgres.Builder().
		Update("workspaces").
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build touch workspace: %w", err)
	}

	return r.execOne(ctx, sql, args, id)
}

// Delete removes the workspace and its membership rows. Items are untouched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete("workspaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete workspace: %w", err)
	}

	return r.execOne(ctx, sql, args, id)
}

// ---------------------------------------------------------------------------
// Membership operations
// ---------------------------------------------------------------------------

// AddItem appends itemID to the member list. It reports false when the item
// was already a member.
func (r *Repo) AddItem(ctx context.Context, workspaceID, itemID uuid.UUID) (bool, error) {
	sql, args, err := postgres.Builder().
		Insert("workspace_items").
		Columns("workspace_id", "item_id", "position").
		Values(workspaceID, itemID, squirrel.Expr(
			"(SELECT COALESCE(MAX(position), 0) + 1 FROM workspace_items WHERE workspace_id = ?)", workspaceID,
		)).
		Suffix("ON CONFLICT (workspace_id, item_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert workspace_item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "workspace_item", itemID)
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveItem drops itemID from the member list. It reports false when the
// item was not a member.
func (r *Repo) RemoveItem(ctx context.Context, workspaceID, itemID uuid.UUID) (bool, error) {
	sql, args, err := postgres.Builder().
		Delete("workspace_items").
		Where(squirrel.Eq{"workspace_id": workspaceID, "item_id": itemID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete workspace_item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "workspace_item", itemID)
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveItemEverywhere drops itemID from every workspace and returns how
// many memberships were removed.
func (r *Repo) RemoveItemEverywhere(ctx context.Context, itemID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Delete("workspace_items").
		Where(squirrel.Eq{"item_id": itemID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete workspace_items: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "workspace_item", itemID)
	}
	return int(tag.RowsAffected()), nil
}

// ListItemIDs returns member ids in insertion order.
func (r *Repo) ListItemIDs(ctx context.Context, workspaceID uuid.UUID) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder().
		Select("item_id").
		From("workspace_items").
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("position", "added_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list workspace_items: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "workspace_item", workspaceID)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "workspace_item", workspaceID)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) execOne(ctx context.Context, sql string, args []any, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "workspace", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "workspace", id)
	}
	return nil
}
