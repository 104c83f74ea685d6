package criminal

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound      = errors.New("criminal record not found")
	ErrInvalidStatus = errors.New("invalid criminal status")
	ErrInvalidStar   = errors.New("star must be between 1 and 5")
	ErrEmptyPatch    = errors.New("no fields to update")
)

type Status string

const (
	StatusWanted   Status = "wanted"
	StatusArrested Status = "arrested"
	StatusClosed   Status = "closed"
)

func ParseStatus(v string) (Status, error) {
	switch Status(v) {
	case StatusWanted:
		return StatusWanted, nil
	case StatusArrested:
		return StatusArrested, nil
	case StatusClosed:
		return StatusClosed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, v)
	}
}

// ValidStar bounds the danger rating.
func ValidStar(star int) bool {
	return star >= 1 && star <= 5
}

type Criminal struct {
	ID                  int64
	Name                string
	Age                 int
	Gender              string
	Description         string
	ProfilePictureURL   string
	LastSeenLocation    string
	LastSeenTime        time.Time
	ProbableLocation    string
	Address             string
	District            string
	Pincode             string
	RegisteredPincode   string
	AddedBy             int64
	Star                int
	RewardOnInformation int
	Status              Status
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Patch struct {
	Description         *string
	LastSeenLocation    *string
	LastSeenTime        *time.Time
	ProbableLocation    *string
	Pincode             *string
	Star                *int
	RewardOnInformation *int
	Status              *Status
}

func (p Patch) Empty() bool {
	return p.Description == nil &&
		p.LastSeenLocation == nil &&
		p.LastSeenTime == nil &&
		p.ProbableLocation == nil &&
		p.Pincode == nil &&
		p.Star == nil &&
		p.RewardOnInformation == nil &&
		p.Status == nil
}
