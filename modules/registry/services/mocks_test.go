package services_test

import (
	"context"
	"sort"
	"time"

	"github.com/civisafe/civisafe/modules/complaints/domain/entities/officer"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/contributor"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/criminal"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/lead"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/missingperson"
)

type memoryMissingRepo struct {
	byID   map[int64]missingperson.MissingPerson
	nextID int64
}

func newMemoryMissingRepo() *memoryMissingRepo {
	return &memoryMissingRepo{byID: map[int64]missingperson.MissingPerson{}, nextID: 1}
}

func (r *memoryMissingRepo) Create(_ context.Context, p missingperson.MissingPerson) (missingperson.MissingPerson, error) {
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.byID[p.ID] = p
	r.nextID++
	return p, nil
}

func (r *memoryMissingRepo) ListByRegisteredPincode(_ context.Context, pincode string) ([]missingperson.MissingPerson, error) {
	out := make([]missingperson.MissingPerson, 0)
	for _, p := range r.byID {
		if p.RegisteredPincode == pincode {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryMissingRepo) ListByPincode(_ context.Context, pincode string) ([]missingperson.MissingPerson, error) {
	out := make([]missingperson.MissingPerson, 0)
	for _, p := range r.byID {
		if p.Pincode == pincode {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryMissingRepo) Update(_ context.Context, id int64, patch missingperson.Patch) (missingperson.MissingPerson, error) {
	p, ok := r.byID[id]
	if !ok {
		return missingperson.MissingPerson{}, missingperson.ErrNotFound
	}
	if patch.ProbableLocation != nil {
		p.ProbableLocation = *patch.ProbableLocation
	}
	if patch.Pincode != nil {
		p.Pincode = *patch.Pincode
	}
	if patch.LastSeenLocation != nil {
		p.LastSeenLocation = *patch.LastSeenLocation
	}
	if patch.LastSeenTime != nil {
		p.LastSeenTime = *patch.LastSeenTime
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.RewardOnInformation != nil {
		p.RewardOnInformation = *patch.RewardOnInformation
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	p.UpdatedAt = time.Now()
	r.byID[id] = p
	return p, nil
}

func (r *memoryMissingRepo) Delete(_ context.Context, id int64) (missingperson.MissingPerson, error) {
	p, ok := r.byID[id]
	if !ok {
		return missingperson.MissingPerson{}, missingperson.ErrNotFound
	}
	delete(r.byID, id)
	return p, nil
}

type memoryCriminalRepo struct {
	byID   map[int64]criminal.Criminal
	nextID int64
}

func newMemoryCriminalRepo() *memoryCriminalRepo {
	return &memoryCriminalRepo{byID: map[int64]criminal.Criminal{}, nextID: 1}
}

func (r *memoryCriminalRepo) Create(_ context.Context, c criminal.Criminal) (criminal.Criminal, error) {
	c.ID = r.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.byID[c.ID] = c
	r.nextID++
	return c, nil
}

func (r *memoryCriminalRepo) ListByRegisteredPincode(_ context.Context, pincode string) ([]criminal.Criminal, error) {
	out := make([]criminal.Criminal, 0)
	for _, c := range r.byID {
		if c.RegisteredPincode == pincode {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryCriminalRepo) ListByPincode(_ context.Context, pincode string) ([]criminal.Criminal, error) {
	out := make([]criminal.Criminal, 0)
	for _, c := range r.byID {
		if c.Pincode == pincode {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryCriminalRepo) Update(_ context.Context, id int64, patch criminal.Patch) (criminal.Criminal, error) {
	c, ok := r.byID[id]
	if !ok {
		return criminal.Criminal{}, criminal.ErrNotFound
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.LastSeenLocation != nil {
		c.LastSeenLocation = *patch.LastSeenLocation
	}
	if patch.LastSeenTime != nil {
		c.LastSeenTime = *patch.LastSeenTime
	}
	if patch.ProbableLocation != nil {
		c.ProbableLocation = *patch.ProbableLocation
	}
	if patch.Pincode != nil {
		c.Pincode = *patch.Pincode
	}
	if patch.Star != nil {
		c.Star = *patch.Star
	}
	if patch.RewardOnInformation != nil {
		c.RewardOnInformation = *patch.RewardOnInformation
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	c.UpdatedAt = time.Now()
	r.byID[id] = c
	return c, nil
}

func (r *memoryCriminalRepo) Delete(_ context.Context, id int64) (criminal.Criminal, error) {
	c, ok := r.byID[id]
	if !ok {
		return criminal.Criminal{}, criminal.ErrNotFound
	}
	delete(r.byID, id)
	return c, nil
}

type memoryLeadRepo struct {
	leads     []lead.Lead
	sightings []lead.Sighting
}

func (r *memoryLeadRepo) CreateLead(_ context.Context, l lead.Lead) (lead.Lead, error) {
	l.ID = int64(len(r.leads) + 1)
	l.CreatedAt = time.Now()
	r.leads = append(r.leads, l)
	return l, nil
}

func (r *memoryLeadRepo) Search(_ context.Context, f lead.Filter) ([]lead.Lead, error) {
	out := make([]lead.Lead, 0)
	for _, l := range r.leads {
		if f.Title != "" && l.Title != f.Title {
			continue
		}
		if f.Pincode != "" && l.Pincode != f.Pincode {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *memoryLeadRepo) CreateSighting(_ context.Context, s lead.Sighting) (lead.Sighting, error) {
	s.ID = int64(len(r.sightings) + 1)
	s.CreatedAt = time.Now()
	r.sightings = append(r.sightings, s)
	return s, nil
}

func (r *memoryLeadRepo) SightingsByRef(_ context.Context, refType lead.RefType, refID int64) ([]lead.Sighting, error) {
	out := make([]lead.Sighting, 0)
	for _, s := range r.sightings {
		if s.Type == refType && s.RefID == refID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memoryContributorRepo struct {
	byUserID map[int64]contributor.Contributor
	pincodes map[int64]string
}

func newMemoryContributorRepo() *memoryContributorRepo {
	return &memoryContributorRepo{
		byUserID: map[int64]contributor.Contributor{},
		pincodes: map[int64]string{},
	}
}

func (r *memoryContributorRepo) add(userID int64, name, pincode string, points int) {
	r.byUserID[userID] = contributor.Contributor{
		UserID:             userID,
		Name:               name,
		ContributionPoints: points,
	}
	r.pincodes[userID] = pincode
}

func (r *memoryContributorRepo) AwardPoint(_ context.Context, userID int64) (contributor.Contributor, error) {
	c, ok := r.byUserID[userID]
	if !ok {
		return contributor.Contributor{}, contributor.ErrNotFound
	}
	c.ContributionPoints++
	r.byUserID[userID] = c
	return c, nil
}

func (r *memoryContributorRepo) RankedByPincode(_ context.Context, pincode string) ([]contributor.Contributor, error) {
	out := make([]contributor.Contributor, 0)
	for userID, c := range r.byUserID {
		if r.pincodes[userID] == pincode {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ContributionPoints != out[j].ContributionPoints {
			return out[i].ContributionPoints > out[j].ContributionPoints
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

func (r *memoryContributorRepo) ProfilePincode(_ context.Context, userID int64) (string, error) {
	if _, ok := r.byUserID[userID]; !ok {
		return "", contributor.ErrNotFound
	}
	return r.pincodes[userID], nil
}

type stubOfficerRepo struct {
	byUserID map[int64]officer.Officer
}

func (r *stubOfficerRepo) GetByUserID(_ context.Context, userID int64) (officer.Officer, error) {
	off, ok := r.byUserID[userID]
	if !ok {
		return officer.Officer{}, officer.ErrNotFound
	}
	return off, nil
}

func (r *stubOfficerRepo) GetSubInspectorByPoliceID(_ context.Context, _ int64) (officer.Officer, error) {
	return officer.Officer{}, officer.ErrNotFound
}

func (r *stubOfficerRepo) ListSubInspectorsByStation(_ context.Context, _ string) ([]officer.SubInspector, error) {
	return nil, nil
}

func (r *stubOfficerRepo) ProfilePincode(_ context.Context, _ int64) (string, error) {
	return "", nil
}
