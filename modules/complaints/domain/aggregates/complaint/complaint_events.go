package complaint

func NewCreatedEvent(result Complaint) *CreatedEvent {
	return &CreatedEvent{Result: result}
}

func NewAssignedEvent(badge string, result Complaint) *AssignedEvent {
	return &AssignedEvent{Badge: badge, Result: result}
}

func NewStatusUpdatedEvent(previous Status, result Complaint) *StatusUpdatedEvent {
	return &StatusUpdatedEvent{Previous: previous, Result: result}
}

func NewDeletedEvent(id, userID int64) *DeletedEvent {
	return &DeletedEvent{ID: id, UserID: userID}
}

type CreatedEvent struct {
	Result Complaint
}

type AssignedEvent struct {
	Badge  string
	Result Complaint
}

type StatusUpdatedEvent struct {
	Previous Status
	Result   Complaint
}

type DeletedEvent struct {
	ID     int64
	UserID int64
}
