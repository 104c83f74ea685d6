package mappers

import (
	"time"

	"github.com/civisafe/civisafe/modules/audit/domain/entities/actionlog"
	"github.com/civisafe/civisafe/modules/audit/presentation/viewmodels"
)

func ActionLogToViewModel(entry *actionlog.ActionLog) *viewmodels.ActionLog {
	return &viewmodels.ActionLog{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Action:      entry.Action,
		ComplaintID: entry.ComplaintID,
		Detail:      entry.Detail,
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
	}
}

func ActionLogsToViewModels(entries []*actionlog.ActionLog) []*viewmodels.ActionLog {
	out := make([]*viewmodels.ActionLog, 0, len(entries))
	for _, entry := range entries {
		out = append(out, ActionLogToViewModel(entry))
	}
	return out
}
