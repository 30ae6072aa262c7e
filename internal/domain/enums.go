package domain

import "strings"

// WorkspaceStatus tracks where a workspace is in the report pipeline.
type WorkspaceStatus string

const (
	WorkspaceStatusDraft      WorkspaceStatus = "draft"
	WorkspaceStatusProcessing WorkspaceStatus = "processing"
	WorkspaceStatusCompleted  WorkspaceStatus = "completed"
)

func (s WorkspaceStatus) String() string { return string(s) }

func (s WorkspaceStatus) IsValid() bool {
	switch s {
	case WorkspaceStatusDraft, WorkspaceStatusProcessing, WorkspaceStatusCompleted:
		return true
	}
	return false
}

// ItemKind is the declared kind of an uploaded input.
type ItemKind string

const (
	ItemKindAudio ItemKind = "audio"
	ItemKindImage ItemKind = "image"
	ItemKindText  ItemKind = "text"
)

func (k ItemKind) String() string { return string(k) }

func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindAudio, ItemKindImage, ItemKindText:
		return true
	}
	return false
}

// Dir returns the storage directory used for files of this kind.
func (k ItemKind) Dir() string {
	switch k {
	case ItemKindAudio:
		return "audio"
	case ItemKindImage:
		return "images"
	default:
		return "text"
	}
}

// Priority is the urgency of a maintenance issue.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// ParsePriority normalizes free text ("High", " critical ") into a Priority.
// The second return value is false when the input is not a known priority.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// ReportStatus is the lifecycle status of a maintenance report.
type ReportStatus string

const (
	ReportStatusOpen       ReportStatus = "open"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusCompleted  ReportStatus = "completed"
	ReportStatusClosed     ReportStatus = "closed"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusOpen, ReportStatusInProgress, ReportStatusCompleted, ReportStatusClosed:
		return true
	}
	return false
}

// AnnotationType identifies the shape of a report annotation.
type AnnotationType string

const (
	AnnotationTypeBoundingBox AnnotationType = "bounding_box"
	AnnotationTypePin         AnnotationType = "pin"
	AnnotationTypeNote        AnnotationType = "note"
)

func (t AnnotationType) String() string { return string(t) }

func (t AnnotationType) IsValid() bool {
	switch t {
	case AnnotationTypeBoundingBox, AnnotationTypePin, AnnotationTypeNote:
		return true
	}
	return false
}
