package item

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

const (
	defaultLimit        = 50
	maxLimit            = 200
	maxTranscriptionLen = 100_000
)

// UploadFile is one file of a multipart upload.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadInput holds the files of one upload and the optional target
// workspace. A nil or unknown workspace id creates a new workspace.
type UploadInput struct {
	WorkspaceID *uuid.UUID
	Files       []UploadFile
}

func (i UploadInput) validate(maxFiles int, maxBytes int64) error {
	var errs []domain.FieldError

	if len(i.Files) == 0 {
		errs = append(errs, domain.FieldError{Field: "files", Message: "at least one file is required"})
	}
	if len(i.Files) > maxFiles {
		errs = append(errs, domain.FieldError{Field: "files", Message: fmt.Sprintf("at most %d files per upload", maxFiles)})
	}
	for n, f := range i.Files {
		field := fmt.Sprintf("files[%d]", n)
		if strings.TrimSpace(f.Filename) == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "filename is required"})
		}
		if f.Content == nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "content is required"})
		}
		if f.Size > maxBytes {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("larger than %d bytes", maxBytes)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput filters and paginates the caller's items. An empty Kind lists all kinds.
type ListInput struct {
	Kind   domain.ItemKind
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.Kind != "" && !i.Kind.IsValid() {
		return domain.NewValidationError("kind", "must be audio, image or text")
	}
	return nil
}

func (i ListInput) normalized() ListInput {
	if i.Limit <= 0 {
		i.Limit = defaultLimit
	}
	i.Limit = min(i.Limit, maxLimit)
	i.Offset = max(i.Offset, 0)
	return i
}

func validateTranscription(text string) error {
	if len(text) > maxTranscriptionLen {
		return domain.NewValidationError("transcription", "too long")
	}
	return nil
}

func validateExtracted(d domain.ExtractedData) error {
	if d.Priority == "" {
		return nil
	}
	if _, ok := domain.ParsePriority(string(d.Priority)); !ok {
		return domain.NewValidationError("priority", "must be one of low, medium, high, critical")
	}
	return nil
}
