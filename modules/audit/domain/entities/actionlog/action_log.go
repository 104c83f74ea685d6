package actionlog

import (
	"context"
	"time"
)

const (
	ActionComplaintCreated       = "complaint.created"
	ActionComplaintAssigned      = "complaint.assigned"
	ActionComplaintStatusUpdated = "complaint.status_updated"
	ActionComplaintDeleted       = "complaint.deleted"
)

// ActionLog is one row of the complaint audit trail. UserID is nil when the
// acting user is not known from the event.
type ActionLog struct {
	ID          int64
	UserID      *int64
	Action      string
	ComplaintID int64
	Detail      string
	CreatedAt   time.Time
}

type FindParams struct {
	Action      string
	ComplaintID int64
	Limit       int
	Offset      int
}

type Repository interface {
	Create(ctx context.Context, entry *ActionLog) error
	// List returns entries newest first.
	List(ctx context.Context, params *FindParams) ([]*ActionLog, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
}
