package services

import (
	"context"

	"github.com/civisafe/civisafe/modules/complaints/domain/aggregates/complaint"
	"github.com/civisafe/civisafe/modules/complaints/domain/entities/officer"
	"github.com/civisafe/civisafe/pkg/serrors"
)

var ErrMissingStationPincode = serrors.NewError("PINCODE_MISSING", "station pincode not found for officer")

// SubInspectorWorkload pairs a station Sub-Inspector with the status
// breakdown of complaints currently assigned to their badge.
type SubInspectorWorkload struct {
	officer.SubInspector
	ComplaintCounts complaint.StatusCounts
}

type VisibilityResult struct {
	Rank          officer.Rank
	Complaints    []complaint.Complaint
	SubInspectors []SubInspectorWorkload
}

// VisibilityService resolves which complaints and which subordinate
// officers a police account may see, scoped by rank.
type VisibilityService struct {
	complaints complaint.Repository
	officers   officer.Repository
}

func NewVisibilityService(
	complaints complaint.Repository,
	officers officer.Repository,
) *VisibilityService {
	return &VisibilityService{
		complaints: complaints,
		officers:   officers,
	}
}

// VisibleComplaints implements the rank scoping rules. Sub-Inspectors see
// only complaints assigned to their own badge. Inspectors see every
// complaint filed under their station pincode plus the workload of each
// Sub-Inspector posted there.
func (s *VisibilityService) VisibleComplaints(ctx context.Context, userID int64) (*VisibilityResult, error) {
	off, err := s.officers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch off.Rank() {
	case officer.RankSubInspector:
		list, err := s.complaints.ListByAssignedBadge(ctx, off.BadgeNumber())
		if err != nil {
			return nil, err
		}
		return &VisibilityResult{
			Rank:          off.Rank(),
			Complaints:    list,
			SubInspectors: []SubInspectorWorkload{},
		}, nil
	case officer.RankInspector:
		return s.inspectorView(ctx, off)
	default:
		return nil, officer.ErrInvalidRank
	}
}

func (s *VisibilityService) inspectorView(ctx context.Context, off officer.Officer) (*VisibilityResult, error) {
	pincode, err := s.stationPincode(ctx, off)
	if err != nil {
		return nil, err
	}

	list, err := s.complaints.ListByPincode(ctx, pincode)
	if err != nil {
		return nil, err
	}

	subs, err := s.officers.ListSubInspectorsByStation(ctx, pincode)
	if err != nil {
		return nil, err
	}

	badges := make([]string, 0, len(subs))
	for _, sub := range subs {
		badges = append(badges, sub.BadgeNumber)
	}
	counts, err := s.complaints.CountsByBadges(ctx, badges)
	if err != nil {
		return nil, err
	}

	workloads := make([]SubInspectorWorkload, 0, len(subs))
	for _, sub := range subs {
		workloads = append(workloads, SubInspectorWorkload{
			SubInspector: sub,
			// The zero value of StatusCounts is the required default
			// for badges with no assigned complaints.
			ComplaintCounts: counts[sub.BadgeNumber],
		})
	}

	return &VisibilityResult{
		Rank:          off.Rank(),
		Complaints:    list,
		SubInspectors: workloads,
	}, nil
}

// stationPincode resolves the Inspector's station from the user profile.
// An empty profile pincode is a validation error, not a cue to guess from
// police_details.
func (s *VisibilityService) stationPincode(ctx context.Context, off officer.Officer) (string, error) {
	pincode, err := s.officers.ProfilePincode(ctx, off.UserID())
	if err != nil {
		return "", err
	}
	if pincode == "" {
		return "", ErrMissingStationPincode
	}
	return pincode, nil
}
