package services

import (
	"context"

	"github.com/civisafe/civisafe/modules/complaints/domain/entities/officer"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/contributor"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/criminal"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/missingperson"
	"github.com/civisafe/civisafe/pkg/serrors"
)

var ErrMissingAreaPincode = serrors.NewError("PINCODE_MISSING", "no pincode provided and profile has none")

// RecordSet is the combined registry listing both portals render: missing
// persons and criminals under one pincode, newest first.
type RecordSet struct {
	Pincode        string
	MissingPersons []missingperson.MissingPerson
	Criminals      []criminal.Criminal
}

// RecordService maintains the police registry of missing persons and
// criminals. Police operations are scoped to the officer's station;
// citizen reads are scoped to a neighbourhood pincode.
type RecordService struct {
	missing      missingperson.Repository
	criminals    criminal.Repository
	officers     officer.Repository
	contributors contributor.Repository
}

func NewRecordService(
	missing missingperson.Repository,
	criminals criminal.Repository,
	officers officer.Repository,
	contributors contributor.Repository,
) *RecordService {
	return &RecordService{
		missing:      missing,
		criminals:    criminals,
		officers:     officers,
		contributors: contributors,
	}
}

// AddMissingPerson files a record under the officer's station pincode.
func (s *RecordService) AddMissingPerson(ctx context.Context, policeUserID int64, dto *missingperson.CreateDTO) (missingperson.MissingPerson, error) {
	off, err := s.officers.GetByUserID(ctx, policeUserID)
	if err != nil {
		return missingperson.MissingPerson{}, err
	}
	return s.missing.Create(ctx, missingperson.MissingPerson{
		Name:                dto.Name,
		Age:                 dto.Age,
		Gender:              dto.Gender,
		Description:         dto.Description,
		ProfilePictureURL:   dto.ProfilePictureURL,
		LastSeenLocation:    dto.LastSeenLocation,
		LastSeenTime:        dto.LastSeenTime,
		ProbableLocation:    dto.ProbableLocation,
		Address:             dto.Address,
		District:            dto.District,
		Pincode:             dto.Pincode,
		RegisteredPincode:   off.StationPincode(),
		AddedBy:             off.PoliceID(),
		RewardOnInformation: dto.RewardOnInformation,
		Status:              missingperson.StatusActive,
	})
}

func (s *RecordService) AddCriminal(ctx context.Context, policeUserID int64, dto *criminal.CreateDTO) (criminal.Criminal, error) {
	off, err := s.officers.GetByUserID(ctx, policeUserID)
	if err != nil {
		return criminal.Criminal{}, err
	}
	return s.criminals.Create(ctx, criminal.Criminal{
		Name:                dto.Name,
		Age:                 dto.Age,
		Gender:              dto.Gender,
		Description:         dto.Description,
		ProfilePictureURL:   dto.ProfilePictureURL,
		LastSeenLocation:    dto.LastSeenLocation,
		LastSeenTime:        dto.LastSeenTime,
		ProbableLocation:    dto.ProbableLocation,
		Address:             dto.Address,
		District:            dto.District,
		Pincode:             dto.Pincode,
		RegisteredPincode:   off.StationPincode(),
		AddedBy:             off.PoliceID(),
		Star:                dto.Star,
		RewardOnInformation: dto.RewardOnInformation,
		Status:              criminal.StatusWanted,
	})
}

// StationRecords lists everything filed by the officer's station.
func (s *RecordService) StationRecords(ctx context.Context, policeUserID int64) (*RecordSet, error) {
	off, err := s.officers.GetByUserID(ctx, policeUserID)
	if err != nil {
		return nil, err
	}
	return s.recordsByPincode(ctx, off.StationPincode(), true)
}

// AreaRecords lists records for a citizen's neighbourhood. An explicit
// pincode wins; otherwise the profile pincode is used, and its absence is a
// validation error.
func (s *RecordService) AreaRecords(ctx context.Context, userID int64, pincode string) (*RecordSet, error) {
	if pincode == "" {
		profilePincode, err := s.contributors.ProfilePincode(ctx, userID)
		if err != nil {
			return nil, err
		}
		if profilePincode == "" {
			return nil, ErrMissingAreaPincode
		}
		pincode = profilePincode
	}
	return s.recordsByPincode(ctx, pincode, false)
}

func (s *RecordService) recordsByPincode(ctx context.Context, pincode string, byStation bool) (*RecordSet, error) {
	var (
		missing   []missingperson.MissingPerson
		criminals []criminal.Criminal
		err       error
	)
	if byStation {
		missing, err = s.missing.ListByRegisteredPincode(ctx, pincode)
	} else {
		missing, err = s.missing.ListByPincode(ctx, pincode)
	}
	if err != nil {
		return nil, err
	}

	if byStation {
		criminals, err = s.criminals.ListByRegisteredPincode(ctx, pincode)
	} else {
		criminals, err = s.criminals.ListByPincode(ctx, pincode)
	}
	if err != nil {
		return nil, err
	}

	return &RecordSet{
		Pincode:        pincode,
		MissingPersons: missing,
		Criminals:      criminals,
	}, nil
}

func (s *RecordService) UpdateMissingPerson(ctx context.Context, id int64, dto *missingperson.PatchDTO) (missingperson.MissingPerson, error) {
	patch, err := dto.ToPatch()
	if err != nil {
		return missingperson.MissingPerson{}, err
	}
	return s.missing.Update(ctx, id, patch)
}

func (s *RecordService) UpdateCriminal(ctx context.Context, id int64, dto *criminal.PatchDTO) (criminal.Criminal, error) {
	patch, err := dto.ToPatch()
	if err != nil {
		return criminal.Criminal{}, err
	}
	return s.criminals.Update(ctx, id, patch)
}

func (s *RecordService) DeleteMissingPerson(ctx context.Context, id int64) (missingperson.MissingPerson, error) {
	return s.missing.Delete(ctx, id)
}

func (s *RecordService) DeleteCriminal(ctx context.Context, id int64) (criminal.Criminal, error) {
	return s.criminals.Delete(ctx, id)
}
