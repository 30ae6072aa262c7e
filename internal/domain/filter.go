package domain

import "github.com/google/uuid"

// ReportFilter narrows a report listing. A nil WorkspaceID lists every
// report of the user.
type ReportFilter struct {
	UserID      uuid.UUID
	WorkspaceID *uuid.UUID
	Limit       int
	Offset      int
}
