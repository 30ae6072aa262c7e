package domain

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is a user-owned collection of input items staged for one report.
// ItemIDs holds the member list in insertion order.
type Workspace struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Status    WorkspaceStatus
	ItemIDs   []uuid.UUID
	ItemCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the workspace belongs to userID.
func (w *Workspace) OwnedBy(userID uuid.UUID) bool {
	return w.UserID == userID
}

// HasItem reports whether itemID is in the member list.
func (w *Workspace) HasItem(itemID uuid.UUID) bool {
	for _, id := range w.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// DefaultWorkspaceName is the name given to workspaces created implicitly by an upload.
func DefaultWorkspaceName(now time.Time) string {
	return "Workspace " + now.Format("2006-01-02 15:04")
}
