package mappers

import (
	"time"

	"github.com/civisafe/civisafe/modules/complaints/domain/aggregates/complaint"
	"github.com/civisafe/civisafe/modules/complaints/presentation/viewmodels"
	"github.com/civisafe/civisafe/modules/complaints/services"
)

func ComplaintToViewModel(c complaint.Complaint) *viewmodels.Complaint {
	proofs := c.ProofURLs()
	if proofs == nil {
		proofs = []string{}
	}
	return &viewmodels.Complaint{
		ComplaintID:     c.ID(),
		UserID:          c.UserID(),
		Title:           c.Title(),
		CrimeType:       c.CrimeType(),
		Description:     c.Description(),
		LocationAddress: c.LocationAddress(),
		Town:            c.Town(),
		District:        c.District(),
		State:           c.State(),
		Pincode:         c.Pincode(),
		CrimeDatetime:   c.CrimeDatetime().Format(time.RFC3339),
		ProofURLs:       proofs,
		Status:          string(c.Status()),
		AssignedBadge:   nullable(c.AssignedBadge()),
		Remark:          nullable(c.Remark()),
		CaseFileURL:     nullable(c.CaseFileURL()),
		CreatedAt:       c.CreatedAt().Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt().Format(time.RFC3339),
	}
}

func ComplaintsToViewModels(list []complaint.Complaint) []*viewmodels.Complaint {
	out := make([]*viewmodels.Complaint, 0, len(list))
	for _, c := range list {
		out = append(out, ComplaintToViewModel(c))
	}
	return out
}

func SubInspectorToViewModel(w services.SubInspectorWorkload) *viewmodels.SubInspector {
	return &viewmodels.SubInspector{
		PoliceID:          w.PoliceID,
		UserID:            w.UserID,
		Name:              w.Name,
		BadgeNumber:       w.BadgeNumber,
		ProfilePictureURL: nullable(w.ProfilePictureURL),
		ComplaintCounts: viewmodels.ComplaintCounts{
			Pending:    w.ComplaintCounts.Pending,
			InProgress: w.ComplaintCounts.InProgress,
			Resolved:   w.ComplaintCounts.Resolved,
			Rejected:   w.ComplaintCounts.Rejected,
			Total:      w.ComplaintCounts.Total,
		},
	}
}

func SubInspectorsToViewModels(list []services.SubInspectorWorkload) []*viewmodels.SubInspector {
	out := make([]*viewmodels.SubInspector, 0, len(list))
	for _, w := range list {
		out = append(out, SubInspectorToViewModel(w))
	}
	return out
}

// nullable maps the entity convention of empty string for NULL columns
// back to a JSON null.
func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
