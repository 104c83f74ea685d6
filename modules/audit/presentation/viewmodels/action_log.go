package viewmodels

type ActionLog struct {
	ID          int64  `json:"id"`
	UserID      *int64 `json:"user_id"`
	Action      string `json:"action"`
	ComplaintID int64  `json:"complaint_id"`
	Detail      string `json:"detail"`
	CreatedAt   string `json:"created_at"`
}
