package services

import (
	"context"

	"github.com/civisafe/civisafe/modules/registry/domain/entities/contributor"
)

const topContributorLimit = 15

// ContributorService keeps the neighbourhood leaderboard of users whose
// tips panned out.
type ContributorService struct {
	repo contributor.Repository
}

func NewContributorService(repo contributor.Repository) *ContributorService {
	return &ContributorService{repo: repo}
}

func (s *ContributorService) AwardPoint(ctx context.Context, userID int64) (contributor.Contributor, error) {
	return s.repo.AwardPoint(ctx, userID)
}

// TopInArea returns the top fifteen contributors in the caller's pincode.
// When the caller places below the cutoff they are appended as an extra row
// carrying their absolute rank. A caller without a profile pincode gets an
// empty board.
func (s *ContributorService) TopInArea(ctx context.Context, userID int64) ([]contributor.Contributor, error) {
	pincode, err := s.repo.ProfilePincode(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pincode == "" {
		return []contributor.Contributor{}, nil
	}

	ranked, err := s.repo.RankedByPincode(ctx, pincode)
	if err != nil {
		return nil, err
	}

	if len(ranked) <= topContributorLimit {
		return ranked, nil
	}

	top := append([]contributor.Contributor{}, ranked[:topContributorLimit]...)
	for _, c := range top {
		if c.UserID == userID {
			return top, nil
		}
	}
	for i, c := range ranked {
		if c.UserID == userID {
			c.Rank = i + 1
			return append(top, c), nil
		}
	}
	return top, nil
}
