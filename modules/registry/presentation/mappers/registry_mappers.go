package mappers

import (
	"time"

	"github.com/civisafe/civisafe/modules/registry/domain/entities/contributor"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/criminal"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/lead"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/missingperson"
	"github.com/civisafe/civisafe/modules/registry/presentation/viewmodels"
)

func MissingPersonToViewModel(p missingperson.MissingPerson) *viewmodels.MissingPerson {
	return &viewmodels.MissingPerson{
		MissingID:           p.ID,
		Name:                p.Name,
		Age:                 p.Age,
		Gender:              nullable(p.Gender),
		Description:         nullable(p.Description),
		ProfilePictureURL:   nullable(p.ProfilePictureURL),
		LastSeenLocation:    nullable(p.LastSeenLocation),
		LastSeenTime:        p.LastSeenTime.Format(time.RFC3339),
		ProbableLocation:    nullable(p.ProbableLocation),
		Address:             nullable(p.Address),
		District:            nullable(p.District),
		Pincode:             p.Pincode,
		RegisteredPincode:   p.RegisteredPincode,
		AddedBy:             p.AddedBy,
		RewardOnInformation: p.RewardOnInformation,
		Status:              string(p.Status),
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           p.UpdatedAt.Format(time.RFC3339),
	}
}

func MissingPersonsToViewModels(list []missingperson.MissingPerson) []*viewmodels.MissingPerson {
	out := make([]*viewmodels.MissingPerson, 0, len(list))
	for _, p := range list {
		out = append(out, MissingPersonToViewModel(p))
	}
	return out
}

func CriminalToViewModel(c criminal.Criminal) *viewmodels.Criminal {
	return &viewmodels.Criminal{
		CriminalID:          c.ID,
		Name:                c.Name,
		Age:                 c.Age,
		Gender:              nullable(c.Gender),
		Description:         nullable(c.Description),
		ProfilePictureURL:   nullable(c.ProfilePictureURL),
		LastSeenLocation:    nullable(c.LastSeenLocation),
		LastSeenTime:        c.LastSeenTime.Format(time.RFC3339),
		ProbableLocation:    nullable(c.ProbableLocation),
		Address:             nullable(c.Address),
		District:            nullable(c.District),
		Pincode:             c.Pincode,
		RegisteredPincode:   c.RegisteredPincode,
		AddedBy:             c.AddedBy,
		Star:                c.Star,
		RewardOnInformation: c.RewardOnInformation,
		Status:              string(c.Status),
		CreatedAt:           c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           c.UpdatedAt.Format(time.RFC3339),
	}
}

func CriminalsToViewModels(list []criminal.Criminal) []*viewmodels.Criminal {
	out := make([]*viewmodels.Criminal, 0, len(list))
	for _, c := range list {
		out = append(out, CriminalToViewModel(c))
	}
	return out
}

func LeadToViewModel(l lead.Lead) *viewmodels.Lead {
	media := l.MediaURLs
	if media == nil {
		media = []string{}
	}
	var userID *int64
	if l.UserID != 0 {
		userID = &l.UserID
	}
	return &viewmodels.Lead{
		LeadID:           l.ID,
		UserID:           userID,
		Title:            l.Title,
		MediaURLs:        media,
		Description:      nullable(l.Description),
		IncidentDatetime: l.IncidentDatetime.Format(time.RFC3339),
		LocationAddress:  nullable(l.LocationAddress),
		Town:             nullable(l.Town),
		District:         nullable(l.District),
		State:            nullable(l.State),
		Pincode:          nullable(l.Pincode),
		Country:          l.Country,
		Anonymous:        l.Anonymous,
		CreatedAt:        l.CreatedAt.Format(time.RFC3339),
	}
}

func LeadsToViewModels(list []lead.Lead) []*viewmodels.Lead {
	out := make([]*viewmodels.Lead, 0, len(list))
	for _, l := range list {
		out = append(out, LeadToViewModel(l))
	}
	return out
}

func SightingToViewModel(s lead.Sighting) *viewmodels.Sighting {
	return &viewmodels.Sighting{
		UpdateID:       s.ID,
		Type:           string(s.Type),
		RefID:          s.RefID,
		UpdatedBy:      s.UpdatedBy,
		UpdatedByRole:  s.UpdatedByRole,
		UpdateText:     s.UpdateText,
		ProofURL:       s.ProofURL,
		Address:        s.Address,
		Pincode:        s.Pincode,
		District:       s.District,
		TimeOfSighting: s.TimeOfSighting.Format(time.RFC3339),
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}

func SightingsToViewModels(list []lead.Sighting) []*viewmodels.Sighting {
	out := make([]*viewmodels.Sighting, 0, len(list))
	for _, s := range list {
		out = append(out, SightingToViewModel(s))
	}
	return out
}

func ContributorToViewModel(c contributor.Contributor) *viewmodels.Contributor {
	return &viewmodels.Contributor{
		UserID:             c.UserID,
		Name:               c.Name,
		ProfilePictureURL:  nullable(c.ProfilePictureURL),
		ContributionPoints: c.ContributionPoints,
		Rank:               c.Rank,
	}
}

func ContributorsToViewModels(list []contributor.Contributor) []*viewmodels.Contributor {
	out := make([]*viewmodels.Contributor, 0, len(list))
	for _, c := range list {
		out = append(out, ContributorToViewModel(c))
	}
	return out
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
