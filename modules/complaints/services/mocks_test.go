package services_test

import (
	"context"
	"time"

	"github.com/civisafe/civisafe/modules/complaints/domain/aggregates/complaint"
	"github.com/civisafe/civisafe/modules/complaints/domain/entities/officer"
)

// memoryComplaintRepo is a behavioral fake backed by a map, mirroring the
// SQL repository's semantics closely enough for service-level tests.
type memoryComplaintRepo struct {
	byID   map[int64]complaint.Complaint
	nextID int64
}

func newMemoryComplaintRepo(seed ...complaint.Complaint) *memoryComplaintRepo {
	repo := &memoryComplaintRepo{byID: map[int64]complaint.Complaint{}, nextID: 1}
	for _, c := range seed {
		repo.byID[c.ID()] = c
		if c.ID() >= repo.nextID {
			repo.nextID = c.ID() + 1
		}
	}
	return repo
}

func (r *memoryComplaintRepo) GetByID(_ context.Context, id int64) (complaint.Complaint, error) {
	c, ok := r.byID[id]
	if !ok {
		return complaint.Complaint{}, complaint.ErrNotFound
	}
	return c, nil
}

func (r *memoryComplaintRepo) ListByAssignedBadge(_ context.Context, badge string) ([]complaint.Complaint, error) {
	out := make([]complaint.Complaint, 0)
	for _, c := range r.byID {
		if c.AssignedBadge() == badge {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryComplaintRepo) ListByPincode(_ context.Context, pincode string) ([]complaint.Complaint, error) {
	out := make([]complaint.Complaint, 0)
	for _, c := range r.byID {
		if c.Pincode() == pincode {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryComplaintRepo) ListByReporter(_ context.Context, userID int64) ([]complaint.Complaint, error) {
	out := make([]complaint.Complaint, 0)
	for _, c := range r.byID {
		if c.UserID() == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryComplaintRepo) CountsByBadges(_ context.Context, badges []string) (map[string]complaint.StatusCounts, error) {
	wanted := make(map[string]bool, len(badges))
	for _, b := range badges {
		wanted[b] = true
	}
	out := make(map[string]complaint.StatusCounts)
	for _, c := range r.byID {
		if c.AssignedBadge() == "" || !wanted[c.AssignedBadge()] {
			continue
		}
		counts := out[c.AssignedBadge()]
		counts.Add(c.Status(), 1)
		out[c.AssignedBadge()] = counts
	}
	return out, nil
}

func (r *memoryComplaintRepo) Create(_ context.Context, c complaint.Complaint) (complaint.Complaint, error) {
	now := time.Now()
	created := complaint.Hydrate(
		r.nextID, c.UserID(), c.Title(), c.CrimeType(), c.Description(),
		c.LocationAddress(), c.Town(), c.District(), c.State(), c.Pincode(),
		c.CrimeDatetime(), c.ProofURLs(), c.Status(), "", "", "", now, now,
	)
	r.byID[r.nextID] = created
	r.nextID++
	return created, nil
}

func (r *memoryComplaintRepo) Assign(_ context.Context, id int64, badge, remark string) (complaint.Complaint, error) {
	c, ok := r.byID[id]
	if !ok {
		return complaint.Complaint{}, complaint.ErrNotFound
	}
	updated := complaint.Hydrate(
		c.ID(), c.UserID(), c.Title(), c.CrimeType(), c.Description(),
		c.LocationAddress(), c.Town(), c.District(), c.State(), c.Pincode(),
		c.CrimeDatetime(), c.ProofURLs(), complaint.StatusInProgress, badge, remark,
		c.CaseFileURL(), c.CreatedAt(), time.Now(),
	)
	r.byID[id] = updated
	return updated, nil
}

func (r *memoryComplaintRepo) UpdateStatus(_ context.Context, id int64, status complaint.Status, remark string) (complaint.Complaint, error) {
	c, ok := r.byID[id]
	if !ok {
		return complaint.Complaint{}, complaint.ErrNotFound
	}
	updated := complaint.Hydrate(
		c.ID(), c.UserID(), c.Title(), c.CrimeType(), c.Description(),
		c.LocationAddress(), c.Town(), c.District(), c.State(), c.Pincode(),
		c.CrimeDatetime(), c.ProofURLs(), status, c.AssignedBadge(), remark,
		c.CaseFileURL(), c.CreatedAt(), time.Now(),
	)
	r.byID[id] = updated
	return updated, nil
}

func (r *memoryComplaintRepo) UpdateCaseFile(_ context.Context, id int64, url string) (complaint.Complaint, error) {
	c, ok := r.byID[id]
	if !ok {
		return complaint.Complaint{}, complaint.ErrNotFound
	}
	updated := complaint.Hydrate(
		c.ID(), c.UserID(), c.Title(), c.CrimeType(), c.Description(),
		c.LocationAddress(), c.Town(), c.District(), c.State(), c.Pincode(),
		c.CrimeDatetime(), c.ProofURLs(), c.Status(), c.AssignedBadge(), c.Remark(),
		url, c.CreatedAt(), time.Now(),
	)
	r.byID[id] = updated
	return updated, nil
}

func (r *memoryComplaintRepo) DeleteByReporter(_ context.Context, id, userID int64) error {
	c, ok := r.byID[id]
	if !ok || c.UserID() != userID {
		return complaint.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type memoryOfficerRepo struct {
	byUserID       map[int64]officer.Officer
	subsByPoliceID map[int64]officer.Officer
	byStation      map[string][]officer.SubInspector
	profilePincode map[int64]string
}

func newMemoryOfficerRepo() *memoryOfficerRepo {
	return &memoryOfficerRepo{
		byUserID:       map[int64]officer.Officer{},
		subsByPoliceID: map[int64]officer.Officer{},
		byStation:      map[string][]officer.SubInspector{},
		profilePincode: map[int64]string{},
	}
}

func (r *memoryOfficerRepo) addOfficer(off officer.Officer) {
	r.byUserID[off.UserID()] = off
	if off.Rank() == officer.RankSubInspector {
		r.subsByPoliceID[off.PoliceID()] = off
		r.byStation[off.StationPincode()] = append(r.byStation[off.StationPincode()], officer.SubInspector{
			PoliceID:    off.PoliceID(),
			UserID:      off.UserID(),
			Name:        off.Name(),
			BadgeNumber: off.BadgeNumber(),
		})
	}
}

func (r *memoryOfficerRepo) GetByUserID(_ context.Context, userID int64) (officer.Officer, error) {
	off, ok := r.byUserID[userID]
	if !ok {
		return officer.Officer{}, officer.ErrNotFound
	}
	return off, nil
}

func (r *memoryOfficerRepo) GetSubInspectorByPoliceID(_ context.Context, policeID int64) (officer.Officer, error) {
	off, ok := r.subsByPoliceID[policeID]
	if !ok {
		return officer.Officer{}, officer.ErrNotFound
	}
	return off, nil
}

func (r *memoryOfficerRepo) ListSubInspectorsByStation(_ context.Context, stationPincode string) ([]officer.SubInspector, error) {
	return r.byStation[stationPincode], nil
}

func (r *memoryOfficerRepo) ProfilePincode(_ context.Context, userID int64) (string, error) {
	if _, ok := r.byUserID[userID]; !ok {
		return "", officer.ErrNotFound
	}
	return r.profilePincode[userID], nil
}

func passthroughTx(ctx context.Context, fn func(context.Context) (complaint.Complaint, error)) (complaint.Complaint, error) {
	return fn(ctx)
}
