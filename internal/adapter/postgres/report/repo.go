// Package report implements the MaintenanceReport and ReportAnnotation
// repositories using PostgreSQL.
package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

const recentReports = 5

var reportColumns = []string{
	"id", "workspace_id", "user_id", "title", "description", "equipment_id", "part_numbers",
	"defect_codes", "corrective_action", "parts_used", "next_service_date", "priority", "status",
	"finalized", "created_at", "updated_at",
}

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Report operations
// ---------------------------------------------------------------------------

// Create inserts a new report.
func (r *Repo) Create(ctx context.Context, rep *domain.MaintenanceReport) error {
	sql, args, err := postgres.Builder().
		Insert("maintenance_reports").
		Columns(reportColumns...).
		Values(rep.ID, rep.WorkspaceID, rep.UserID, rep.Title, rep.Description, rep.EquipmentID,
			nonNil(rep.PartNumbers), nonNil(rep.DefectCodes), rep.CorrectiveAction, nonNil(rep.PartsUsed),
			rep.NextServiceDate, string(rep.Priority), string(rep.Status), rep.Finalized, rep.CreatedAt, rep.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert report: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "report", rep.ID)
	}
	return nil
}

// GetByID returns a report by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error) {
	sql, args, err := postgres.Builder().
		Select(reportColumns...).
		From("maintenance_reports").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select report: %w", err)
	}

	rep, err := scanReport(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "report", id)
	}
	return &rep, nil
}

// List returns reports newest first plus the total count before pagination.
func (r *Repo) List(ctx context.Context, f domain.ReportFilter) ([]domain.MaintenanceReport, int, error) {
	where := squirrel.Eq{"user_id": f.UserID}
	if f.WorkspaceID != nil {
		where["workspace_id"] = *f.WorkspaceID
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("maintenance_reports").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count reports: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "report", uuid.Nil)
	}

	list, err := r.query(ctx, postgres.Builder().
		Select(reportColumns...).
		From("maintenance_reports").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)))
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update writes every mutable field of the report.
func (r *Repo) Update(ctx context.Context, rep *domain.MaintenanceReport) error {
	sql, args, err := postgres.Builder().
		Update("maintenance_reports").
		SetMap(map[string]any{
			"title":             rep.Title,
			"description":       rep.Description,
			"equipment_id":      rep.EquipmentID,
			"part_numbers":      nonNil(rep.PartNumbers),
			"defect_codes":      nonNil(rep.DefectCodes),
			"corrective_action": rep.CorrectiveAction,
			"parts_used":        nonNil(rep.PartsUsed),
			"next_service_date": rep.NextServiceDate,
			"priority":          string(rep.Priority),
			"status":            string(rep.Status),
			"finalized":         rep.Finalized,
			"updated_at":        rep.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": rep.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update report: %w", err)
	}

	return r.execOne(ctx, sql, args, "report", rep.ID)
}

// Delete removes the report and its annotations.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete("maintenance_reports").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete report: %w", err)
	}

	return r.execOne(ctx, sql, args, "report", id)
}

// Stats counts the user's reports by status and priority and returns the
// most recent ones.
func (r *Repo) Stats(ctx context.Context, userID uuid.UUID) (*domain.ReportStats, error) {
	stats := &domain.ReportStats{
		ByStatus:   map[domain.ReportStatus]int{},
		ByPriority: map[domain.Priority]int{},
	}

	sql, args, err := postgres.Builder().
		Select("status", "priority", "count(*)").
		From("maintenance_reports").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("status", "priority").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build report stats: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "report", userID)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status, priority string
			n                int
		)
		if err := rows.Scan(&status, &priority, &n); err != nil {
			return nil, postgres.MapError(err, "report", userID)
		}
		stats.Total += n
		stats.ByStatus[domain.ReportStatus(status)] += n
		stats.ByPriority[domain.Priority(priority)] += n
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "report", userID)
	}

	recent, err := r.query(ctx, postgres.Builder().
		Select(reportColumns...).
		From("maintenance_reports").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(recentReports))
	if err != nil {
		return nil, err
	}
	stats.Recent = recent

	return stats, nil
}

// ---------------------------------------------------------------------------
// Annotation operations
// ---------------------------------------------------------------------------

// CreateAnnotation inserts a new annotation.
func (r *Repo) CreateAnnotation(ctx context.Context, a *domain.ReportAnnotation) error {
	coords, err := json.Marshal(a.Coordinates)
	if err != nil {
		return fmt.Errorf("encode coordinates: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert("report_annotations").
		Columns("id", "report_id", "input_item_id", "annotation_type", "coordinates", "note", "created_at").
		Values(a.ID, a.ReportID, a.InputItemID, string(a.Type), coords, a.Note, a.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert annotation: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "annotation", a.ID)
	}
	return nil
}

// GetAnnotation returns an annotation by primary key.
func (r *Repo) GetAnnotation(ctx context.Context, id uuid.UUID) (*domain.ReportAnnotation, error) {
	list, err := r.annotations(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "annotation", id)
	}
	return &list[0], nil
}

// ListAnnotations returns a report's annotations, oldest first.
func (r *Repo) ListAnnotations(ctx context.Context, reportID uuid.UUID) ([]domain.ReportAnnotation, error) {
	return r.annotations(ctx, squirrel.Eq{"report_id": reportID})
}

// DeleteAnnotation removes an annotation.
func (r *Repo) DeleteAnnotation(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete("report_annotations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete annotation: %w", err)
	}

	return r.execOne(ctx, sql, args, "annotation", id)
}

func (r *Repo) annotations(ctx context.Context, where squirrel.Eq) ([]domain.ReportAnnotation, error) {
	sql, args, err := postgres.Builder().
		Select("id", "report_id", "input_item_id", "annotation_type", "coordinates", "note", "created_at").
		From("report_annotations").
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select annotations: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "annotation", uuid.Nil)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ReportAnnotation, error) {
		var (
			a      domain.ReportAnnotation
			typ    string
			coords []byte
		)
		if err := row.Scan(&a.ID, &a.ReportID, &a.InputItemID, &typ, &coords, &a.Note, &a.CreatedAt); err != nil {
			return a, err
		}
		a.Type = domain.AnnotationType(typ)
		if coords != nil {
			if err := json.Unmarshal(coords, &a.Coordinates); err != nil {
				return a, fmt.Errorf("decode coordinates for %s: %w", a.ID, err)
			}
		}
		return a, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "annotation", uuid.Nil)
	}
	return list, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) query(ctx context.Context, b squirrel.SelectBuilder) ([]domain.MaintenanceReport, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select reports: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "report", uuid.Nil)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MaintenanceReport, error) {
		return scanReport(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "report", uuid.Nil)
	}
	return list, nil
}

func (r *Repo) execOne(ctx context.Context, sql string, args []any, entity string, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

func scanReport(row pgx.Row) (domain.MaintenanceReport, error) {
	var (
		rep              domain.MaintenanceReport
		priority, status string
	)
	err := row.Scan(&rep.ID, &rep.WorkspaceID, &rep.UserID, &rep.Title, &rep.Description, &rep.EquipmentID,
		&rep.PartNumbers, &rep.DefectCodes, &rep.CorrectiveAction, &rep.PartsUsed, &rep.NextServiceDate,
		&priority, &status, &rep.Finalized, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return rep, err
	}
	rep.Priority = domain.Priority(priority)
	rep.Status = domain.ReportStatus(status)
	return rep, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
