package lead

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/civisafe/civisafe/pkg/constants"
	"github.com/civisafe/civisafe/pkg/serrors"
)

type CreateDTO struct {
	Title            string    `json:"title" validate:"required"`
	MediaURLs        []string  `json:"media_urls" validate:"max=3"`
	Description      string    `json:"description"`
	IncidentDatetime time.Time `json:"incident_datetime" validate:"required"`
	LocationAddress  string    `json:"location_address"`
	Town             string    `json:"town"`
	District         string    `json:"district"`
	State            string    `json:"state"`
	Pincode          string    `json:"pincode"`
	Country          string    `json:"country"`
	Anonymous        bool      `json:"anonymous"`
}

func (d *CreateDTO) Normalize() {
	if d.MediaURLs == nil {
		d.MediaURLs = []string{}
	}
	if d.Country == "" {
		d.Country = "India"
	}
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
}

// SightingDTO is the request body for attaching a sighting to a record.
// Every field is required.
type SightingDTO struct {
	Type           string    `json:"type" validate:"required,oneof=missing criminal"`
	RefID          int64     `json:"ref_id" validate:"required"`
	UpdateText     string    `json:"update_text" validate:"required"`
	ProofURL       string    `json:"proof_url" validate:"required"`
	Address        string    `json:"address" validate:"required"`
	Pincode        string    `json:"pincode" validate:"required"`
	District       string    `json:"district" validate:"required"`
	TimeOfSighting time.Time `json:"time_of_sighting" validate:"required"`
}

func (d *SightingDTO) Ok() (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
}
