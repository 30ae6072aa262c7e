package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "tech-" + suffix,
		Email:        "tech-" + suffix + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehold",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Active, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedWorkspace creates an empty draft workspace owned by userID.
func SeedWorkspace(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Workspace {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ws := domain.Workspace{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Workspace " + uniqueSuffix(),
		Status:    domain.WorkspaceStatusDraft,
		ItemIDs:   []uuid.UUID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO workspaces (id, user_id, name, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ws.ID, ws.UserID, ws.Name, string(ws.Status), ws.CreatedAt, ws.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWorkspace: %v", err)
	}

	return ws
}

// SeedItem creates an unprocessed input item of the given kind owned by userID.
func SeedItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, kind domain.ItemKind) domain.InputItem {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.InputItem{
		ID:               uuid.New(),
		UserID:           userID,
		Filename:         suffix + ".bin",
		OriginalFilename: "upload-" + suffix + ".bin",
		FileKey:          kind.Dir() + "/" + suffix + ".bin",
		Kind:             kind,
		MimeType:         "application/octet-stream",
		FileSize:         42,
		UploadedAt:       now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO input_items (id, user_id, filename, original_filename, file_key, kind, mime_type, file_size, uploaded_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		item.ID, item.UserID, item.Filename, item.OriginalFilename, item.FileKey, string(item.Kind),
		item.MimeType, item.FileSize, item.UploadedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}

	return item
}

// SeedMember appends itemID to the workspace member list.
func SeedMember(t *testing.T, pool *pgxpool.Pool, workspaceID, itemID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO workspace_items (workspace_id, item_id, position)
		 VALUES ($1, $2, (SELECT COALESCE(MAX(position), 0) + 1 FROM workspace_items WHERE workspace_id = $1))`,
		workspaceID, itemID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember: %v", err)
	}
}

// SeedReport creates an open report for the workspace.
func SeedReport(t *testing.T, pool *pgxpool.Pool, userID, workspaceID uuid.UUID, priority domain.Priority) domain.MaintenanceReport {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.NewReport(userID, workspaceID, domain.ReportDraft{
		Title:       "Report " + uniqueSuffix(),
		PartNumbers: []string{"P-1"},
		Priority:    priority,
	}, now)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO maintenance_reports (id, workspace_id, user_id, title, part_numbers, defect_codes, parts_used, priority, status, finalized, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		r.ID, r.WorkspaceID, r.UserID, r.Title, r.PartNumbers, r.DefectCodes, r.PartsUsed,
		string(r.Priority), string(r.Status), r.Finalized, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReport: %v", err)
	}

	return *r
}
