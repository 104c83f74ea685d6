package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civisafe/civisafe/modules/audit/domain/entities/actionlog"
	"github.com/civisafe/civisafe/modules/audit/handlers"
	"github.com/civisafe/civisafe/modules/audit/services"
	"github.com/civisafe/civisafe/modules/complaints/domain/aggregates/complaint"
	"github.com/civisafe/civisafe/pkg/application"
	"github.com/civisafe/civisafe/pkg/eventbus"
)

type memoryActionLogRepo struct {
	entries []*actionlog.ActionLog
}

func (r *memoryActionLogRepo) Create(_ context.Context, entry *actionlog.ActionLog) error {
	entry.ID = int64(len(r.entries) + 1)
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memoryActionLogRepo) List(_ context.Context, params *actionlog.FindParams) ([]*actionlog.ActionLog, error) {
	out := make([]*actionlog.ActionLog, 0)
	for _, entry := range r.entries {
		if params.Action != "" && entry.Action != params.Action {
			continue
		}
		if params.ComplaintID != 0 && entry.ComplaintID != params.ComplaintID {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *memoryActionLogRepo) Count(ctx context.Context, params *actionlog.FindParams) (int64, error) {
	entries, err := r.List(ctx, params)
	return int64(len(entries)), err
}

func newAuditFixture() (eventbus.EventBus, *memoryActionLogRepo) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	bus := eventbus.NewEventPublisher(log)

	repo := &memoryActionLogRepo{}
	app := application.New(&application.ApplicationOptions{
		EventBus: bus,
		Logger:   log,
	})
	app.RegisterServices(services.NewAuditService(repo))
	handlers.RegisterComplaintEventHandlers(app)
	return bus, repo
}

func seedComplaint(id, userID int64, status complaint.Status) complaint.Complaint {
	now := time.Now()
	return complaint.Hydrate(
		id, userID, "Stolen bicycle", "theft", "", "", "", "", "", "302001",
		now, nil, status, "", "", "", now, now,
	)
}

func TestOnCreated_RecordsReporter(t *testing.T) {
	bus, repo := newAuditFixture()

	bus.Publish(complaint.NewCreatedEvent(seedComplaint(1, 42, complaint.StatusPending)))

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, actionlog.ActionComplaintCreated, entry.Action)
	assert.Equal(t, int64(1), entry.ComplaintID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, int64(42), *entry.UserID)
	assert.Equal(t, "Stolen bicycle", entry.Detail)
}

func TestOnAssigned_RecordsBadge(t *testing.T) {
	bus, repo := newAuditFixture()

	bus.Publish(complaint.NewAssignedEvent("SI-001", seedComplaint(1, 42, complaint.StatusInProgress)))

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, actionlog.ActionComplaintAssigned, entry.Action)
	assert.Nil(t, entry.UserID)
	assert.Equal(t, "assigned to badge SI-001", entry.Detail)
}

func TestOnStatusUpdated_RecordsTransition(t *testing.T) {
	bus, repo := newAuditFixture()

	bus.Publish(complaint.NewStatusUpdatedEvent(
		complaint.StatusInProgress,
		seedComplaint(1, 42, complaint.StatusResolved),
	))

	require.Len(t, repo.entries, 1)
	assert.Equal(t, "in-progress -> resolved", repo.entries[0].Detail)
}

func TestOnDeleted_RecordsActor(t *testing.T) {
	bus, repo := newAuditFixture()

	bus.Publish(complaint.NewDeletedEvent(7, 42))

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, actionlog.ActionComplaintDeleted, entry.Action)
	assert.Equal(t, int64(7), entry.ComplaintID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, int64(42), *entry.UserID)
}
