package report

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

const (
	defaultLimit  = 20
	maxLimit      = 100
	maxTitleLen   = 300
	maxNoteLen    = 2000
	maxTextLength = 20_000
)

// ListInput filters and paginates the caller's reports.
type ListInput struct {
	WorkspaceID *uuid.UUID
	Limit       int
	Offset      int
}

func (i ListInput) normalized() ListInput {
	if i.Limit <= 0 {
		i.Limit = defaultLimit
	}
	i.Limit = min(i.Limit, maxLimit)
	i.Offset = max(i.Offset, 0)
	return i
}

// UpdateInput holds a partial report edit. List fields and the service date
// use their text forms: comma-separated lists and YYYY-MM-DD. An empty date
// clears it.
type UpdateInput struct {
	ID               uuid.UUID
	Title            *string
	Description      *string
	EquipmentID      *string
	PartNumbers      *string
	DefectCodes      *string
	CorrectiveAction *string
	PartsUsed        *string
	NextServiceDate  *string
	Priority         *string
	Status           *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		if title := strings.TrimSpace(*i.Title); title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if utf8.RuneCountInString(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
		}
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.CorrectiveAction != nil && utf8.RuneCountInString(*i.CorrectiveAction) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "corrective_action", Message: "too long"})
	}
	if i.NextServiceDate != nil {
		if _, ok := domain.ParseServiceDate(*i.NextServiceDate); !ok {
			errs = append(errs, domain.FieldError{Field: "next_service_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if i.Priority != nil {
		if _, ok := domain.ParsePriority(*i.Priority); !ok {
			errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of low, medium, high, critical"})
		}
	}
	if i.Status != nil && !domain.ReportStatus(strings.TrimSpace(*i.Status)).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be open, in_progress, completed or closed"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply copies the set fields onto rep. Validate must have passed.
func (i UpdateInput) apply(rep *domain.MaintenanceReport) {
	if i.Title != nil {
		rep.Title = strings.TrimSpace(*i.Title)
	}
	if i.Description != nil {
		rep.Description = strings.TrimSpace(*i.Description)
	}
	if i.EquipmentID != nil {
		rep.EquipmentID = strings.TrimSpace(*i.EquipmentID)
	}
	if i.PartNumbers != nil {
		rep.PartNumbers = domain.ParseList(*i.PartNumbers)
	}
	if i.DefectCodes != nil {
		rep.DefectCodes = domain.ParseList(*i.DefectCodes)
	}
	if i.CorrectiveAction != nil {
		rep.CorrectiveAction = strings.TrimSpace(*i.CorrectiveAction)
	}
	if i.PartsUsed != nil {
		rep.PartsUsed = domain.ParseList(*i.PartsUsed)
	}
	if i.NextServiceDate != nil {
		rep.NextServiceDate, _ = domain.ParseServiceDate(*i.NextServiceDate)
	}
	if i.Priority != nil {
		rep.Priority, _ = domain.ParsePriority(*i.Priority)
	}
	if i.Status != nil {
		rep.Status = domain.ReportStatus(strings.TrimSpace(*i.Status))
	}
}

// AnnotationInput holds the parameters for annotating a report.
type AnnotationInput struct {
	ReportID    uuid.UUID
	InputItemID uuid.UUID
	Type        domain.AnnotationType
	Coordinates domain.Coordinates
	Note        string
}

// Validate checks all fields and collects all errors.
func (i AnnotationInput) Validate() error {
	var errs []domain.FieldError

	if i.ReportID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "report_id", Message: "required"})
	}
	if i.InputItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "input_item_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be bounding_box, pin or note"})
	} else {
		errs = append(errs, i.Coordinates.Validate(i.Type)...)
	}
	if i.Type == domain.AnnotationTypeNote && strings.TrimSpace(i.Note) == "" {
		errs = append(errs, domain.FieldError{Field: "note", Message: "required for note annotations"})
	}
	if utf8.RuneCountInString(i.Note) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
