package workspace

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

const (
	maxNameLen   = 200
	defaultLimit = 50
	maxLimit     = 200
)

// CreateInput holds the parameters for creating a workspace.
// An empty name is replaced with a timestamped default.
type CreateInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(i.Name)) > maxNameLen {
		return domain.NewValidationError("name", "max 200 characters")
	}
	return nil
}

// UpdateInput holds the parameters for renaming a workspace or changing its status.
type UpdateInput struct {
	ID     uuid.UUID
	Name   *string
	Status *domain.WorkspaceStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Status == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if utf8.RuneCountInString(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be draft, processing or completed"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds pagination parameters.
type ListInput struct {
	Limit  int
	Offset int
}

func (i ListInput) normalized() ListInput {
	if i.Limit <= 0 {
		i.Limit = defaultLimit
	}
	i.Limit = min(i.Limit, maxLimit)
	i.Offset = max(i.Offset, 0)
	return i
}
