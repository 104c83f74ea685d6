package handlers

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/civisafe/civisafe/modules/audit/domain/entities/actionlog"
	"github.com/civisafe/civisafe/modules/audit/services"
	"github.com/civisafe/civisafe/modules/complaints/domain/aggregates/complaint"
	"github.com/civisafe/civisafe/pkg/application"
	"github.com/civisafe/civisafe/pkg/composables"
)

// ComplaintEventsHandler turns complaint lifecycle events into audit trail
// entries. Writes are best effort: a failed insert is logged and dropped,
// never surfaced to the operation that raised the event.
type ComplaintEventsHandler struct {
	app     application.Application
	service *services.AuditService
	logger  *logrus.Logger
}

func RegisterComplaintEventHandlers(app application.Application) {
	handler := &ComplaintEventsHandler{
		app:     app,
		service: app.Service(services.AuditService{}).(*services.AuditService),
		logger:  app.Logger(),
	}
	app.EventPublisher().Subscribe(handler.onCreated)
	app.EventPublisher().Subscribe(handler.onAssigned)
	app.EventPublisher().Subscribe(handler.onStatusUpdated)
	app.EventPublisher().Subscribe(handler.onDeleted)
}

func (h *ComplaintEventsHandler) onCreated(event *complaint.CreatedEvent) {
	userID := event.Result.UserID()
	h.record(&actionlog.ActionLog{
		UserID:      &userID,
		Action:      actionlog.ActionComplaintCreated,
		ComplaintID: event.Result.ID(),
		Detail:      event.Result.Title(),
	})
}

func (h *ComplaintEventsHandler) onAssigned(event *complaint.AssignedEvent) {
	h.record(&actionlog.ActionLog{
		Action:      actionlog.ActionComplaintAssigned,
		ComplaintID: event.Result.ID(),
		Detail:      fmt.Sprintf("assigned to badge %s", event.Badge),
	})
}

func (h *ComplaintEventsHandler) onStatusUpdated(event *complaint.StatusUpdatedEvent) {
	h.record(&actionlog.ActionLog{
		Action:      actionlog.ActionComplaintStatusUpdated,
		ComplaintID: event.Result.ID(),
		Detail:      fmt.Sprintf("%s -> %s", event.Previous, event.Result.Status()),
	})
}

func (h *ComplaintEventsHandler) onDeleted(event *complaint.DeletedEvent) {
	userID := event.UserID
	h.record(&actionlog.ActionLog{
		UserID:      &userID,
		Action:      actionlog.ActionComplaintDeleted,
		ComplaintID: event.ID,
	})
}

func (h *ComplaintEventsHandler) record(entry *actionlog.ActionLog) {
	ctx := composables.WithPool(context.Background(), h.app.DB())
	if err := h.service.Log(ctx, entry); err != nil {
		h.logger.WithError(err).
			WithField("action", entry.Action).
			WithField("complaint_id", entry.ComplaintID).
			Warn("failed to persist audit entry")
	}
}
