package viewmodels

type MissingPerson struct {
	MissingID           int64    `json:"missing_id"`
	Name                string   `json:"name"`
	Age                 int      `json:"age"`
	Gender              *string  `json:"gender"`
	Description         *string  `json:"description"`
	ProfilePictureURL   *string  `json:"profile_picture_url"`
	LastSeenLocation    *string  `json:"last_seen_location"`
	LastSeenTime        string   `json:"last_seen_time"`
	ProbableLocation    *string  `json:"probable_location"`
	Address             *string  `json:"address"`
	District            *string  `json:"district"`
	Pincode             string   `json:"pincode"`
	RegisteredPincode   string   `json:"registered_pincode"`
	AddedBy             int64    `json:"added_by"`
	RewardOnInformation int      `json:"reward_on_information"`
	Status              string   `json:"status"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

type Criminal struct {
	CriminalID          int64   `json:"criminal_id"`
	Name                string  `json:"name"`
	Age                 int     `json:"age"`
	Gender              *string `json:"gender"`
	Description         *string `json:"description"`
	ProfilePictureURL   *string `json:"profile_picture_url"`
	LastSeenLocation    *string `json:"last_seen_location"`
	LastSeenTime        string  `json:"last_seen_time"`
	ProbableLocation    *string `json:"probable_location"`
	Address             *string `json:"address"`
	District            *string `json:"district"`
	Pincode             string  `json:"pincode"`
	RegisteredPincode   string  `json:"registered_pincode"`
	AddedBy             int64   `json:"added_by"`
	Star                int     `json:"star"`
	RewardOnInformation int     `json:"reward_on_information"`
	Status              string  `json:"status"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type Lead struct {
	LeadID           int64    `json:"lead_id"`
	UserID           *int64   `json:"user_id"`
	Title            string   `json:"title"`
	MediaURLs        []string `json:"media_urls"`
	Description      *string  `json:"description"`
	IncidentDatetime string   `json:"incident_datetime"`
	LocationAddress  *string  `json:"location_address"`
	Town             *string  `json:"town"`
	District         *string  `json:"district"`
	State            *string  `json:"state"`
	Pincode          *string  `json:"pincode"`
	Country          string   `json:"country"`
	Anonymous        bool     `json:"anonymous"`
	CreatedAt        string   `json:"created_at"`
}

type Sighting struct {
	UpdateID       int64  `json:"update_id"`
	Type           string `json:"type"`
	RefID          int64  `json:"ref_id"`
	UpdatedBy      int64  `json:"updated_by"`
	UpdatedByRole  string `json:"updated_by_role"`
	UpdateText     string `json:"update_text"`
	ProofURL       string `json:"proof_url"`
	Address        string `json:"address"`
	Pincode        string `json:"pincode"`
	District       string `json:"district"`
	TimeOfSighting string `json:"time_of_sighting"`
	CreatedAt      string `json:"created_at"`
}

type Contributor struct {
	UserID             int64   `json:"user_id"`
	Name               string  `json:"name"`
	ProfilePictureURL  *string `json:"profile_picture_url"`
	ContributionPoints int     `json:"contribution_points"`
	Rank               int     `json:"rank,omitempty"`
}
