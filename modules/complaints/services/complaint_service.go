package services

import (
	"context"
	"strings"

	"github.com/civisafe/civisafe/modules/complaints/domain/aggregates/complaint"
	"github.com/civisafe/civisafe/pkg/eventbus"
	"github.com/civisafe/civisafe/pkg/serrors"
)

var ErrEmptyCaseFileURL = serrors.NewError("CASE_FILE_URL_EMPTY", "case file url must not be empty")

// ComplaintService covers citizen submissions and the guarded single-field
// mutations officers apply to a complaint.
type ComplaintService struct {
	repo      complaint.Repository
	publisher eventbus.EventBus
}

func NewComplaintService(repo complaint.Repository, publisher eventbus.EventBus) *ComplaintService {
	return &ComplaintService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *ComplaintService) Submit(ctx context.Context, userID int64, dto *complaint.CreateDTO) (complaint.Complaint, error) {
	created, err := s.repo.Create(ctx, complaint.New(userID, dto))
	if err != nil {
		return complaint.Complaint{}, err
	}
	s.publisher.Publish(complaint.NewCreatedEvent(created))
	return created, nil
}

func (s *ComplaintService) ListByReporter(ctx context.Context, userID int64) ([]complaint.Complaint, error) {
	return s.repo.ListByReporter(ctx, userID)
}

func (s *ComplaintService) GetByID(ctx context.Context, id int64) (complaint.Complaint, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves the complaint to the given status. The raw status is
// validated against the closed status set before any row is touched.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id int64, rawStatus, remark string) (complaint.Complaint, error) {
	status, err := complaint.ParseStatus(rawStatus)
	if err != nil {
		return complaint.Complaint{}, err
	}

	previous, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return complaint.Complaint{}, err
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, remark)
	if err != nil {
		return complaint.Complaint{}, err
	}
	s.publisher.Publish(complaint.NewStatusUpdatedEvent(previous.Status(), updated))
	return updated, nil
}

// UpdateCaseFile attaches a case file document to the complaint. Whitespace
// only URLs are rejected.
func (s *ComplaintService) UpdateCaseFile(ctx context.Context, id int64, url string) (complaint.Complaint, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return complaint.Complaint{}, ErrEmptyCaseFileURL
	}
	return s.repo.UpdateCaseFile(ctx, id, url)
}

func (s *ComplaintService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repo.DeleteByReporter(ctx, id, userID); err != nil {
		return err
	}
	s.publisher.Publish(complaint.NewDeletedEvent(id, userID))
	return nil
}
