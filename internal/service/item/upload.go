package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/pkg/ctxutil"
)

// UploadResult is the workspace the files joined and the created items, in upload order.
type UploadResult struct {
	Workspace *domain.Workspace
	Items     []domain.InputItem
}

// Upload stores every file, creates an item per file and adds it to the
// target workspace. Text files are read and run through extraction
// immediately; audio and images wait for enrichment or detection.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.validate(s.limits.MaxFiles, s.limits.MaxBytes); err != nil {
		return nil, err
	}

	ws, err := s.targetWorkspace(ctx, userID, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("item.Upload: %w", err)
	}

	result := &UploadResult{Workspace: ws, Items: make([]domain.InputItem, 0, len(input.Files))}
	for _, f := range input.Files {
		it, err := s.store(ctx, userID, f)
		if err != nil {
			return nil, fmt.Errorf("item.Upload: %s: %w", f.Filename, err)
		}

		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if err := s.items.Create(txCtx, it); err != nil {
				return fmt.Errorf("create item: %w", err)
			}
			if _, err := s.workspaces.AddItem(txCtx, ws.ID, it.ID); err != nil {
				return fmt.Errorf("add to workspace: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("item.Upload: %w", err)
		}

		ws.ItemIDs = append(ws.ItemIDs, it.ID)
		result.Items = append(result.Items, *it)
	}

	now := s.now().UTC()
	if err := s.workspaces.Touch(ctx, ws.ID, now); err != nil {
		return nil, fmt.Errorf("item.Upload: %w", err)
	}
	ws.UpdatedAt = now
	ws.ItemCount = len(ws.ItemIDs)

	s.log.InfoContext(ctx, "files uploaded",
		slog.String("user_id", userID.String()),
		slog.String("workspace_id", ws.ID.String()),
		slog.Int("count", len(result.Items)),
	)
	return result, nil
}

func (s *Service) targetWorkspace(ctx context.Context, userID uuid.UUID, id *uuid.UUID) (*domain.Workspace, error) {
	wsID := uuid.New()
	if id != nil {
		ws, err := s.ownedOrMissing(ctx, userID, *id)
		if err != nil || ws != nil {
			return ws, err
		}
		wsID = *id
	}

	now := s.now().UTC()
	ws := &domain.Workspace{
		ID:        wsID,
		UserID:    userID,
		Name:      domain.DefaultWorkspaceName(now),
		Status:    domain.WorkspaceStatusDraft,
		ItemIDs:   []uuid.UUID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.workspaces.Create(ctx, ws)
	switch {
	case err == nil:
		return ws, nil
	case id != nil && errors.Is(err, domain.ErrAlreadyExists):
		// Created by a concurrent upload.
		existing, getErr := s.ownedOrMissing(ctx, userID, *id)
		if getErr != nil {
			return nil, getErr
		}
		if existing != nil {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("create workspace: %w", err)
}

// ownedOrMissing returns the workspace when the user owns it, nil when it
// does not exist and ErrForbidden when it belongs to someone else.
func (s *Service) ownedOrMissing(ctx context.Context, userID, id uuid.UUID) (*domain.Workspace, error) {
	ws, err := s.workspaces.GetByID(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("get workspace: %w", err)
	case !ws.OwnedBy(userID):
		return nil, domain.ErrForbidden
	}
	return ws, nil
}

// store saves one file and builds its item. The file is written before the
// row exists; a failed insert leaves an orphaned file.
func (s *Service) store(ctx context.Context, userID uuid.UUID, f UploadFile) (*domain.InputItem, error) {
	original := filepath.Base(strings.TrimSpace(f.Filename))
	kind := domain.InferItemKind(f.ContentType, original)
	id := uuid.New()
	name := id.String() + strings.ToLower(filepath.Ext(original))
	key := kind.Dir() + "/" + name

	size, err := s.files.Save(ctx, key, f.Content, f.Size, f.ContentType)
	if err != nil {
		return nil, fmt.Errorf("save file: %w", err)
	}

	now := s.now().UTC()
	it := &domain.InputItem{
		ID:               id,
		UserID:           userID,
		Filename:         name,
		OriginalFilename: original,
		FileKey:          key,
		Kind:             kind,
		MimeType:         f.ContentType,
		FileSize:         size,
		UploadedAt:       now,
		UpdatedAt:        now,
	}

	if kind == domain.ItemKindText {
		s.extractText(ctx, it)
	}
	return it, nil
}

func (s *Service) extractText(ctx context.Context, it *domain.InputItem) {
	rc, err := s.files.Open(ctx, it.FileKey)
	if err != nil {
		it.Transcription = "Error reading file: " + err.Error()
		return
	}
	defer rc.Close()

	res, processed := s.enricher.ExtractText(ctx, rc)
	it.Transcription = res.Transcription
	it.Extracted = res.Extracted
	it.Processed = processed
}
