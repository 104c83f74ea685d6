package viewmodels

// Complaint is the JSON shape of a complaint row as both citizen and
// police endpoints return it. Nullable columns render as JSON null, not
// empty strings.
type Complaint struct {
	ComplaintID     int64    `json:"complaint_id"`
	UserID          int64    `json:"user_id"`
	Title           string   `json:"title"`
	CrimeType       string   `json:"crime_type"`
	Description     string   `json:"description"`
	LocationAddress string   `json:"location_address"`
	Town            string   `json:"town"`
	District        string   `json:"district"`
	State           string   `json:"state"`
	Pincode         string   `json:"pincode"`
	CrimeDatetime   string   `json:"crime_datetime"`
	ProofURLs       []string `json:"proof_urls"`
	Status          string   `json:"status"`
	AssignedBadge   *string  `json:"assigned_badge"`
	Remark          *string  `json:"remark"`
	CaseFileURL     *string  `json:"case_file_url"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// ComplaintCounts is the per-badge workload breakdown shown to
// Inspectors. Every key is present even when zero.
type ComplaintCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in-progress"`
	Resolved   int `json:"resolved"`
	Rejected   int `json:"rejected"`
	Total      int `json:"total"`
}

type SubInspector struct {
	PoliceID          int64           `json:"police_id"`
	UserID            int64           `json:"user_id"`
	Name              string          `json:"name"`
	BadgeNumber       string          `json:"badge_number"`
	ProfilePictureURL *string         `json:"profile_picture_url"`
	ComplaintCounts   ComplaintCounts `json:"complaintCounts"`
}
