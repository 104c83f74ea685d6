package complaint

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/civisafe/civisafe/pkg/constants"
	"github.com/civisafe/civisafe/pkg/serrors"
)

type CreateDTO struct {
	Title           string    `json:"title"`
	CrimeType       string    `json:"crime_type" validate:"required"`
	Description     string    `json:"description"`
	LocationAddress string    `json:"location_address"`
	Town            string    `json:"town"`
	District        string    `json:"district"`
	State           string    `json:"state"`
	Pincode         string    `json:"pincode"`
	CrimeDatetime   time.Time `json:"crime_datetime" validate:"required"`
	ProofURLs       []string  `json:"proof_urls"`
}

func (d *CreateDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.CrimeType = strings.TrimSpace(d.CrimeType)
	d.Pincode = strings.TrimSpace(d.Pincode)
	if d.ProofURLs == nil {
		d.ProofURLs = []string{}
	}
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
}
