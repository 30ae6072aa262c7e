package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportAnnotation marks up an input item in the context of a report.
type ReportAnnotation struct {
	ID          uuid.UUID
	ReportID    uuid.UUID
	InputItemID uuid.UUID
	Type        AnnotationType
	Coordinates Coordinates
	Note        string
	CreatedAt   time.Time
}

// Coordinates are normalized to 0..1. A pin uses X and Y, a bounding box
// uses the four edges, a note uses neither.
type Coordinates struct {
	X    *float64 `json:"x,omitempty"`
	Y    *float64 `json:"y,omitempty"`
	XMin *float64 `json:"x_min,omitempty"`
	YMin *float64 `json:"y_min,omitempty"`
	XMax *float64 `json:"x_max,omitempty"`
	YMax *float64 `json:"y_max,omitempty"`
}

// Validate checks that the coordinates match the annotation type.
func (c Coordinates) Validate(t AnnotationType) []FieldError {
	var errs []FieldError
	check := func(name string, v *float64) {
		switch {
		case v == nil:
			errs = append(errs, FieldError{Field: "coordinates." + name, Message: "required"})
		case *v < 0 || *v > 1:
			errs = append(errs, FieldError{Field: "coordinates." + name, Message: "must be between 0 and 1"})
		}
	}

	switch t {
	case AnnotationTypePin:
		check("x", c.X)
		check("y", c.Y)
	case AnnotationTypeBoundingBox:
		check("x_min", c.XMin)
		check("y_min", c.YMin)
		check("x_max", c.XMax)
		check("y_max", c.YMax)
		if len(errs) == 0 && (*c.XMin >= *c.XMax || *c.YMin >= *c.YMax) {
			errs = append(errs, FieldError{Field: "coordinates", Message: "min must be less than max"})
		}
	}
	return errs
}
