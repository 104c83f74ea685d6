package missingperson

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound      = errors.New("missing person not found")
	ErrInvalidStatus = errors.New("invalid missing person status")
	ErrEmptyPatch    = errors.New("no fields to update")
)

type Status string

const (
	StatusActive Status = "active"
	StatusFound  Status = "found"
	StatusClosed Status = "closed"
)

func ParseStatus(v string) (Status, error) {
	switch Status(v) {
	case StatusActive:
		return StatusActive, nil
	case StatusFound:
		return StatusFound, nil
	case StatusClosed:
		return StatusClosed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, v)
	}
}

// MissingPerson is a police-maintained record. registered_pincode is the
// station that filed it; pincode is where the person was last seen, which
// citizens browse by.
type MissingPerson struct {
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
	RewardOnInformation int
	Status              Status
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Patch carries the optional fields a partial update may set. Nil means
// "leave the column alone".
type Patch struct {
	ProbableLocation    *string
	Pincode             *string
	LastSeenLocation    *string
	LastSeenTime        *time.Time
	Description         *string
	RewardOnInformation *int
	Status              *Status
}

func (p Patch) Empty() bool {
	return p.ProbableLocation == nil &&
		p.Pincode == nil &&
		p.LastSeenLocation == nil &&
		p.LastSeenTime == nil &&
		p.Description == nil &&
		p.RewardOnInformation == nil &&
		p.Status == nil
}
