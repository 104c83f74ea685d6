package lead

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRefType = errors.New("invalid sighting reference type")

// RefType says which registry record a sighting points at.
type RefType string

const (
	RefMissing  RefType = "missing"
	RefCriminal RefType = "criminal"
)

func ParseRefType(v string) (RefType, error) {
	switch RefType(v) {
	case RefMissing:
		return RefMissing, nil
	case RefCriminal:
		return RefCriminal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRefType, v)
	}
}

// Lead is a citizen-submitted tip about an incident, optionally anonymous.
// UserID is zero for anonymous leads.
type Lead struct {
	ID               int64
	UserID           int64
	Title            string
	MediaURLs        []string
	Description      string
	IncidentDatetime time.Time
	LocationAddress  string
	Town             string
	District         string
	State            string
	Pincode          string
	Country          string
	Anonymous        bool
	CreatedAt        time.Time
}

// Filter narrows a lead search. Zero values mean "no constraint"; the two
// dates bound incident_datetime inclusively.
type Filter struct {
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Town      string
	District  string
	State     string
	Pincode   string
	Country   string
}

// Sighting is an update attached to a missing-person or criminal record.
type Sighting struct {
	ID             int64
	Type           RefType
	RefID          int64
	UpdatedBy      int64
	UpdatedByRole  string
	UpdateText     string
	ProofURL       string
	Address        string
	Pincode        string
	District       string
	TimeOfSighting time.Time
	CreatedAt      time.Time
}
