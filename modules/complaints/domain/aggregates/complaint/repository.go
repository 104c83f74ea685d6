package complaint

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Complaint, error)
	ListByAssignedBadge(ctx context.Context, badge string) ([]Complaint, error)
	ListByPincode(ctx context.Context, pincode string) ([]Complaint, error)
	ListByReporter(ctx context.Context, userID int64) ([]Complaint, error)
	// CountsByBadges groups complaints assigned to the given badges by
	// status. Badges without rows are absent from the result.
	CountsByBadges(ctx context.Context, badges []string) (map[string]StatusCounts, error)
	Create(ctx context.Context, c Complaint) (Complaint, error)
	Assign(ctx context.Context, id int64, badge, remark string) (Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status Status, remark string) (Complaint, error)
	UpdateCaseFile(ctx context.Context, id int64, url string) (Complaint, error)
	DeleteByReporter(ctx context.Context, id, userID int64) error
}
