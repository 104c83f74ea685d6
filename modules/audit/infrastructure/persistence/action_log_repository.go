package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/civisafe/civisafe/modules/audit/domain/entities/actionlog"
	"github.com/civisafe/civisafe/pkg/composables"
)

const actionLogColumns = `id, user_id, action, complaint_id, detail, created_at`

type ActionLogRepository struct{}

func NewActionLogRepository() actionlog.Repository {
	return &ActionLogRepository{}
}

func (r *ActionLogRepository) Create(ctx context.Context, entry *actionlog.ActionLog) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	var userID any
	if entry.UserID != nil {
		userID = *entry.UserID
	}
	return tx.QueryRow(ctx, `
INSERT INTO action_logs (user_id, action, complaint_id, detail)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at
`, userID, entry.Action, entry.ComplaintID, entry.Detail).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *ActionLogRepository) List(ctx context.Context, params *actionlog.FindParams) ([]*actionlog.ActionLog, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	where, args := buildFilters(params)
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query := fmt.Sprintf(
		`SELECT %s FROM action_logs%s ORDER BY id DESC LIMIT $%d`,
		actionLogColumns, where, len(args),
	)
	if params.Offset > 0 {
		args = append(args, params.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*actionlog.ActionLog, 0)
	for rows.Next() {
		entry, err := scanActionLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (r *ActionLogRepository) Count(ctx context.Context, params *actionlog.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	where, args := buildFilters(params)
	var count int64
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM action_logs`+where, args...).Scan(&count)
	return count, err
}

func buildFilters(params *actionlog.FindParams) (string, []any) {
	var conditions []string
	var args []any
	if params.Action != "" {
		args = append(args, params.Action)
		conditions = append(conditions, fmt.Sprintf("action = $%d", len(args)))
	}
	if params.ComplaintID != 0 {
		args = append(args, params.ComplaintID)
		conditions = append(conditions, fmt.Sprintf("complaint_id = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanActionLog(row pgx.Row) (*actionlog.ActionLog, error) {
	var (
		entry  actionlog.ActionLog
		userID pgtype.Int8
	)
	if err := row.Scan(
		&entry.ID, &userID, &entry.Action, &entry.ComplaintID,
		&entry.Detail, &entry.CreatedAt,
	); err != nil {
		return nil, err
	}
	if userID.Valid {
		entry.UserID = &userID.Int64
	}
	return &entry, nil
}
