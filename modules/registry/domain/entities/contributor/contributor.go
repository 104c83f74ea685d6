package contributor

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Contributor is a user's public standing in the neighbourhood leaderboard.
// Rank is zero inside the top listing and set only when the caller is
// appended below the cutoff.
type Contributor struct {
	UserID             int64
	Name               string
	ProfilePictureURL  string
	ContributionPoints int
	Rank               int
}

type Repository interface {
	// AwardPoint increments the user's contribution points by one.
	AwardPoint(ctx context.Context, userID int64) (Contributor, error)
	// RankedByPincode returns every contributor registered under the
	// pincode, ordered by points descending.
	RankedByPincode(ctx context.Context, pincode string) ([]Contributor, error)
	// ProfilePincode returns the user's registered pincode, empty when the
	// profile has none.
	ProfilePincode(ctx context.Context, userID int64) (string, error)
}
