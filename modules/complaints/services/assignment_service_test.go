package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civisafe/civisafe/modules/complaints/domain/aggregates/complaint"
	"github.com/civisafe/civisafe/modules/complaints/domain/entities/officer"
	"github.com/civisafe/civisafe/modules/complaints/services"
	"github.com/civisafe/civisafe/pkg/eventbus"
)

func quietBus() eventbus.EventBus {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return eventbus.NewEventPublisher(log)
}

func TestAssign_SetsBadgeStatusAndRemark(t *testing.T) {
	officers := newMemoryOfficerRepo()
	officers.addOfficer(officer.Hydrate(5, 20, "SI-001", "500001", officer.RankSubInspector, "A. Kumar", "a.kumar@p.in"))

	complaints := newMemoryComplaintRepo(
		seedComplaint(1, 100, "500001", "", complaint.StatusPending),
	)

	bus := quietBus()
	var published *complaint.AssignedEvent
	bus.Subscribe(func(event *complaint.AssignedEvent) {
		published = event
	})

	svc := services.NewAssignmentServiceWithRunner(complaints, officers, bus, passthroughTx)
	assigned, err := svc.Assign(context.Background(), 5, 1)
	require.NoError(t, err)

	assert.Equal(t, complaint.StatusInProgress, assigned.Status())
	assert.Equal(t, "SI-001", assigned.AssignedBadge())
	assert.Equal(t,
		"Assigned to Sub-Inspector: A. Kumar (Email: a.kumar@p.in, Badge: SI-001)",
		assigned.Remark(),
	)

	require.NotNil(t, published)
	assert.Equal(t, "SI-001", published.Badge)
	assert.Equal(t, int64(1), published.Result.ID())
}

func TestAssign_PincodeMismatchLeavesComplaintUnmodified(t *testing.T) {
	officers := newMemoryOfficerRepo()
	officers.addOfficer(officer.Hydrate(5, 20, "SI-001", "500001", officer.RankSubInspector, "A. Kumar", "a@p.in"))

	complaints := newMemoryComplaintRepo(
		seedComplaint(1, 100, "500002", "", complaint.StatusPending),
	)

	svc := services.NewAssignmentServiceWithRunner(complaints, officers, quietBus(), passthroughTx)
	_, err := svc.Assign(context.Background(), 5, 1)
	assert.ErrorIs(t, err, complaint.ErrPincodeMismatch)

	unchanged, getErr := complaints.GetByID(context.Background(), 1)
	require.NoError(t, getErr)
	assert.Equal(t, complaint.StatusPending, unchanged.Status())
	assert.Empty(t, unchanged.AssignedBadge())
	assert.Empty(t, unchanged.Remark())
}

func TestAssign_SubInspectorNotFound(t *testing.T) {
	complaints := newMemoryComplaintRepo(
		seedComplaint(1, 100, "500001", "", complaint.StatusPending),
	)

	svc := services.NewAssignmentServiceWithRunner(complaints, newMemoryOfficerRepo(), quietBus(), passthroughTx)
	_, err := svc.Assign(context.Background(), 5, 1)
	assert.ErrorIs(t, err, officer.ErrNotFound)
}

func TestAssign_CommitFailurePublishesNothing(t *testing.T) {
	officers := newMemoryOfficerRepo()
	officers.addOfficer(officer.Hydrate(5, 20, "SI-001", "500001", officer.RankSubInspector, "A. Kumar", "a@p.in"))

	complaints := newMemoryComplaintRepo(
		seedComplaint(1, 100, "500001", "", complaint.StatusPending),
	)

	bus := quietBus()
	var published *complaint.AssignedEvent
	bus.Subscribe(func(event *complaint.AssignedEvent) {
		published = event
	})

	// All checks pass, then the transaction fails to commit.
	errCommit := errors.New("commit failed")
	failingCommit := func(ctx context.Context, fn func(context.Context) (complaint.Complaint, error)) (complaint.Complaint, error) {
		if _, err := fn(ctx); err != nil {
			return complaint.Complaint{}, err
		}
		return complaint.Complaint{}, errCommit
	}

	svc := services.NewAssignmentServiceWithRunner(complaints, officers, bus, failingCommit)
	_, err := svc.Assign(context.Background(), 5, 1)
	assert.ErrorIs(t, err, errCommit)
	assert.Nil(t, published)
}

func TestAssign_ComplaintNotFound(t *testing.T) {
	officers := newMemoryOfficerRepo()
	officers.addOfficer(officer.Hydrate(5, 20, "SI-001", "500001", officer.RankSubInspector, "A. Kumar", "a@p.in"))

	svc := services.NewAssignmentServiceWithRunner(newMemoryComplaintRepo(), officers, quietBus(), passthroughTx)
	_, err := svc.Assign(context.Background(), 5, 404)
	assert.ErrorIs(t, err, complaint.ErrNotFound)
}
