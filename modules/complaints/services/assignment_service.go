package services

import (
	"context"
	"fmt"

	"github.com/civisafe/civisafe/modules/complaints/domain/aggregates/complaint"
	"github.com/civisafe/civisafe/modules/complaints/domain/entities/officer"
	"github.com/civisafe/civisafe/pkg/composables"
	"github.com/civisafe/civisafe/pkg/eventbus"
)

// TxRunner runs fn inside a transaction boundary and hands its result back.
// Production wiring uses composables.InTxResult; tests substitute a
// passthrough.
type TxRunner func(ctx context.Context, fn func(context.Context) (complaint.Complaint, error)) (complaint.Complaint, error)

// AssignmentService hands a complaint to a Sub-Inspector. The rank check,
// the pincode match and the mutation all run inside one transaction so a
// failed validation never leaves partial state behind.
type AssignmentService struct {
	complaints complaint.Repository
	officers   officer.Repository
	publisher  eventbus.EventBus
	runTx      TxRunner
}

func NewAssignmentService(
	complaints complaint.Repository,
	officers officer.Repository,
	publisher eventbus.EventBus,
) *AssignmentService {
	return NewAssignmentServiceWithRunner(complaints, officers, publisher, composables.InTxResult[complaint.Complaint])
}

func NewAssignmentServiceWithRunner(
	complaints complaint.Repository,
	officers officer.Repository,
	publisher eventbus.EventBus,
	runTx TxRunner,
) *AssignmentService {
	return &AssignmentService{
		complaints: complaints,
		officers:   officers,
		publisher:  publisher,
		runTx:      runTx,
	}
}

// Assign pairs the complaint with the Sub-Inspector identified by policeID.
// The officer's station pincode must equal the complaint's pincode. On
// success the complaint moves to in-progress and carries an assignment
// remark naming the officer.
func (s *AssignmentService) Assign(ctx context.Context, policeID, complaintID int64) (complaint.Complaint, error) {
	assigned, err := s.runTx(ctx, func(txCtx context.Context) (complaint.Complaint, error) {
		sub, err := s.officers.GetSubInspectorByPoliceID(txCtx, policeID)
		if err != nil {
			return complaint.Complaint{}, err
		}

		c, err := s.complaints.GetByID(txCtx, complaintID)
		if err != nil {
			return complaint.Complaint{}, err
		}

		if sub.StationPincode() != c.Pincode() {
			return complaint.Complaint{}, complaint.ErrPincodeMismatch
		}

		remark := fmt.Sprintf(
			"Assigned to Sub-Inspector: %s (Email: %s, Badge: %s)",
			sub.Name(), sub.Email(), sub.BadgeNumber(),
		)
		return s.complaints.Assign(txCtx, c.ID(), sub.BadgeNumber(), remark)
	})
	if err != nil {
		return complaint.Complaint{}, err
	}

	s.publisher.Publish(complaint.NewAssignedEvent(assigned.AssignedBadge(), assigned))
	return assigned, nil
}
