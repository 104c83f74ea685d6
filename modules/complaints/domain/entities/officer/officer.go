package officer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound    = errors.New("police officer not found")
	ErrInvalidRank = errors.New("invalid police rank")
)

// Rank is a closed set: only Sub-Inspectors and Inspectors take part in the
// complaint workflow. Raw rank strings that parse to neither are rejected at
// the boundary so downstream code can switch exhaustively.
type Rank int

const (
	RankSubInspector Rank = iota + 1
	RankInspector
)

func ParseRank(v string) (Rank, error) {
	switch strings.TrimSpace(v) {
	case "Sub-Inspector":
		return RankSubInspector, nil
	case "Inspector":
		return RankInspector, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, v)
	}
}

func (r Rank) String() string {
	switch r {
	case RankSubInspector:
		return "Sub-Inspector"
	case RankInspector:
		return "Inspector"
	default:
		return "unknown"
	}
}

type Officer struct {
	policeID       int64
	userID         int64
	badgeNumber    string
	stationPincode string
	rank           Rank
	name           string
	email          string
}

func Hydrate(
	policeID int64,
	userID int64,
	badgeNumber string,
	stationPincode string,
	rank Rank,
	name string,
	email string,
) Officer {
	return Officer{
		policeID:       policeID,
		userID:         userID,
		badgeNumber:    badgeNumber,
		stationPincode: stationPincode,
		rank:           rank,
		name:           name,
		email:          email,
	}
}

func (o Officer) PoliceID() int64        { return o.policeID }
func (o Officer) UserID() int64          { return o.userID }
func (o Officer) BadgeNumber() string    { return o.badgeNumber }
func (o Officer) StationPincode() string { return o.stationPincode }
func (o Officer) Rank() Rank             { return o.rank }
func (o Officer) Name() string           { return o.name }
func (o Officer) Email() string          { return o.email }
func (o Officer) IsZero() bool           { return o.policeID == 0 && o.badgeNumber == "" }

// SubInspector is the listing shape Inspectors see for station staff.
type SubInspector struct {
	PoliceID          int64
	UserID            int64
	Name              string
	BadgeNumber       string
	ProfilePictureURL string
}
