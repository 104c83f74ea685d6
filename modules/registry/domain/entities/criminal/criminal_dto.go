package criminal

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/civisafe/civisafe/pkg/constants"
	"github.com/civisafe/civisafe/pkg/serrors"
)

type CreateDTO struct {
	Name                string    `json:"name" validate:"required"`
	Age                 int       `json:"age" validate:"gte=0,lte=150"`
	Gender              string    `json:"gender" validate:"omitempty,oneof=male female other"`
	Description         string    `json:"description"`
	ProfilePictureURL   string    `json:"profile_picture_url"`
	LastSeenLocation    string    `json:"last_seen_location"`
	LastSeenTime        time.Time `json:"last_seen_time" validate:"required"`
	ProbableLocation    string    `json:"probable_location"`
	Address             string    `json:"address"`
	District            string    `json:"district"`
	Pincode             string    `json:"pincode" validate:"required"`
	Star                int       `json:"star" validate:"omitempty,gte=1,lte=5"`
	RewardOnInformation int       `json:"reward_on_information" validate:"gte=0"`
}

// Normalize applies the record defaults: an unrated criminal starts at one
// star.
func (d *CreateDTO) Normalize() {
	if d.Star == 0 {
		d.Star = 1
	}
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
}

type PatchDTO struct {
	Description         *string    `json:"description"`
	LastSeenLocation    *string    `json:"last_seen_location"`
	LastSeenTime        *time.Time `json:"last_seen_time"`
	ProbableLocation    *string    `json:"probable_location"`
	Pincode             *string    `json:"pincode"`
	Star                *int       `json:"star"`
	RewardOnInformation *int       `json:"reward_on_information"`
	Status              *string    `json:"status"`
}

func (d *PatchDTO) ToPatch() (Patch, error) {
	if d.Star != nil && !ValidStar(*d.Star) {
		return Patch{}, ErrInvalidStar
	}
	patch := Patch{
		Description:         d.Description,
		LastSeenLocation:    d.LastSeenLocation,
		LastSeenTime:        d.LastSeenTime,
		ProbableLocation:    d.ProbableLocation,
		Pincode:             d.Pincode,
		Star:                d.Star,
		RewardOnInformation: d.RewardOnInformation,
	}
	if d.Status != nil {
		status, err := ParseStatus(*d.Status)
		if err != nil {
			return Patch{}, err
		}
		patch.Status = &status
	}
	if patch.Empty() {
		return Patch{}, ErrEmptyPatch
	}
	return patch, nil
}
