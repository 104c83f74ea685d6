package services

import (
	"context"

	"github.com/civisafe/civisafe/modules/audit/domain/entities/actionlog"
)

// AuditService records and serves the complaint audit trail.
type AuditService struct {
	repo actionlog.Repository
}

func NewAuditService(repo actionlog.Repository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Log(ctx context.Context, entry *actionlog.ActionLog) error {
	return s.repo.Create(ctx, entry)
}

func (s *AuditService) List(ctx context.Context, params *actionlog.FindParams) ([]*actionlog.ActionLog, error) {
	return s.repo.List(ctx, params)
}

func (s *AuditService) Count(ctx context.Context, params *actionlog.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}
