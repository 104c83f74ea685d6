package complaint

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound        = errors.New("complaint not found")
	ErrInvalidStatus   = errors.New("invalid complaint status")
	ErrPincodeMismatch = errors.New("police station pincode does not match complaint pincode")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
	StatusRejected   Status = "rejected"
)

func ParseStatus(v string) (Status, error) {
	switch Status(strings.TrimSpace(v)) {
	case StatusPending:
		return StatusPending, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusResolved:
		return StatusResolved, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, v)
	}
}

// StatusCounts is the per-badge workload aggregate. Every key defaults to
// zero, including total, when a badge has no assigned complaints.
type StatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in-progress"`
	Resolved   int `json:"resolved"`
	Rejected   int `json:"rejected"`
	Total      int `json:"total"`
}

func (c *StatusCounts) Add(status Status, n int) {
	switch status {
	case StatusPending:
		c.Pending += n
	case StatusInProgress:
		c.InProgress += n
	case StatusResolved:
		c.Resolved += n
	case StatusRejected:
		c.Rejected += n
	default:
		return
	}
	c.Total += n
}

type Complaint struct {
	id              int64
	userID          int64
	title           string
	crimeType       string
	description     string
	locationAddress string
	town            string
	district        string
	state           string
	pincode         string
	crimeDatetime   time.Time
	proofURLs       []string
	status          Status
	assignedBadge   string
	remark          string
	caseFileURL     string
	createdAt       time.Time
	updatedAt       time.Time
}

func New(userID int64, dto *CreateDTO) Complaint {
	return Complaint{
		userID:          userID,
		title:           strings.TrimSpace(dto.Title),
		crimeType:       strings.TrimSpace(dto.CrimeType),
		description:     dto.Description,
		locationAddress: dto.LocationAddress,
		town:            dto.Town,
		district:        dto.District,
		state:           dto.State,
		pincode:         strings.TrimSpace(dto.Pincode),
		crimeDatetime:   dto.CrimeDatetime,
		proofURLs:       dto.ProofURLs,
		status:          StatusPending,
	}
}

func Hydrate(
	id int64,
	userID int64,
	title string,
	crimeType string,
	description string,
	locationAddress string,
	town string,
	district string,
	state string,
	pincode string,
	crimeDatetime time.Time,
	proofURLs []string,
	status Status,
	assignedBadge string,
	remark string,
	caseFileURL string,
	createdAt time.Time,
	updatedAt time.Time,
) Complaint {
	return Complaint{
		id:              id,
		userID:          userID,
		title:           title,
		crimeType:       crimeType,
		description:     description,
		locationAddress: locationAddress,
		town:            town,
		district:        district,
		state:           state,
		pincode:         pincode,
		crimeDatetime:   crimeDatetime,
		proofURLs:       proofURLs,
		status:          status,
		assignedBadge:   assignedBadge,
		remark:          remark,
		caseFileURL:     caseFileURL,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (c Complaint) ID() int64                    { return c.id }
func (c Complaint) UserID() int64                { return c.userID }
func (c Complaint) Title() string                { return c.title }
func (c Complaint) CrimeType() string            { return c.crimeType }
func (c Complaint) Description() string          { return c.description }
func (c Complaint) LocationAddress() string      { return c.locationAddress }
func (c Complaint) Town() string                 { return c.town }
func (c Complaint) District() string             { return c.district }
func (c Complaint) State() string                { return c.state }
func (c Complaint) Pincode() string              { return c.pincode }
func (c Complaint) CrimeDatetime() time.Time     { return c.crimeDatetime }
func (c Complaint) ProofURLs() []string          { return c.proofURLs }
func (c Complaint) Status() Status               { return c.status }
func (c Complaint) AssignedBadge() string        { return c.assignedBadge }
func (c Complaint) Remark() string               { return c.remark }
func (c Complaint) CaseFileURL() string          { return c.caseFileURL }
func (c Complaint) CreatedAt() time.Time         { return c.createdAt }
func (c Complaint) UpdatedAt() time.Time         { return c.updatedAt }
func (c Complaint) IsZero() bool                 { return c.id == 0 }
func (c Complaint) IsAssigned() bool             { return c.assignedBadge != "" }
func (c Complaint) AssignedTo(badge string) bool { return c.assignedBadge == badge }
