package missingperson

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
	RewardOnInformation int       `json:"reward_on_information" validate:"gte=0"`
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
}

// PatchDTO mirrors the request body of a partial update. Pointer fields
// distinguish absent from zero.
type PatchDTO struct {
	ProbableLocation    *string    `json:"probable_location"`
	Pincode             *string    `json:"pincode"`
	LastSeenLocation    *string    `json:"last_seen_location"`
	LastSeenTime        *time.Time `json:"last_seen_time"`
	Description         *string    `json:"description"`
	RewardOnInformation *int       `json:"reward_on_information"`
	Status              *string    `json:"status"`
}

func (d *PatchDTO) ToPatch() (Patch, error) {
	patch := Patch{
		ProbableLocation:    d.ProbableLocation,
		Pincode:             d.Pincode,
		LastSeenLocation:    d.LastSeenLocation,
		LastSeenTime:        d.LastSeenTime,
		Description:         d.Description,
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
