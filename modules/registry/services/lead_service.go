package services

import (
	"context"

	"github.com/civisafe/civisafe/modules/registry/domain/entities/lead"
)

// LeadService handles citizen tips and sighting updates attached to
// registry records.
type LeadService struct {
	repo lead.Repository
}

func NewLeadService(repo lead.Repository) *LeadService {
	return &LeadService{repo: repo}
}

// SubmitLead files a tip. Anonymous submissions drop the reporter's
// identity before it reaches storage.
func (s *LeadService) SubmitLead(ctx context.Context, userID int64, dto *lead.CreateDTO) (lead.Lead, error) {
	if dto.Anonymous {
		userID = 0
	}
	return s.repo.CreateLead(ctx, lead.Lead{
		UserID:           userID,
		Title:            dto.Title,
		MediaURLs:        dto.MediaURLs,
		Description:      dto.Description,
		IncidentDatetime: dto.IncidentDatetime,
		LocationAddress:  dto.LocationAddress,
		Town:             dto.Town,
		District:         dto.District,
		State:            dto.State,
		Pincode:          dto.Pincode,
		Country:          dto.Country,
		Anonymous:        dto.Anonymous,
	})
}

func (s *LeadService) Search(ctx context.Context, f lead.Filter) ([]lead.Lead, error) {
	return s.repo.Search(ctx, f)
}

func (s *LeadService) AddSighting(ctx context.Context, userID int64, role string, dto *lead.SightingDTO) (lead.Sighting, error) {
	refType, err := lead.ParseRefType(dto.Type)
	if err != nil {
		return lead.Sighting{}, err
	}
	return s.repo.CreateSighting(ctx, lead.Sighting{
		Type:           refType,
		RefID:          dto.RefID,
		UpdatedBy:      userID,
		UpdatedByRole:  role,
		UpdateText:     dto.UpdateText,
		ProofURL:       dto.ProofURL,
		Address:        dto.Address,
		Pincode:        dto.Pincode,
		District:       dto.District,
		TimeOfSighting: dto.TimeOfSighting,
	})
}

func (s *LeadService) SightingsFor(ctx context.Context, refType lead.RefType, refID int64) ([]lead.Sighting, error) {
	return s.repo.SightingsByRef(ctx, refType, refID)
}
