package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/civisafe/civisafe/modules/complaints/domain/aggregates/complaint"
	"github.com/civisafe/civisafe/pkg/composables"
)

const complaintColumns = `
	complaint_id, user_id, title, crime_type, description, location_address,
	town, district, state, pincode, crime_datetime, proof_urls, status,
	assigned_badge, remark, case_file_url, created_at, updated_at`

type ComplaintRepository struct{}

func NewComplaintRepository() complaint.Repository {
	return &ComplaintRepository{}
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (complaint.Complaint, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return complaint.Complaint{}, err
	}
	row := tx.QueryRow(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE complaint_id = $1`, id)
	c, err := scanComplaint(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return complaint.Complaint{}, complaint.ErrNotFound
		}
		return complaint.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintRepository) ListByAssignedBadge(ctx context.Context, badge string) ([]complaint.Complaint, error) {
	return r.list(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE assigned_badge = $1`, badge)
}

func (r *ComplaintRepository) ListByPincode(ctx context.Context, pincode string) ([]complaint.Complaint, error) {
	return r.list(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE pincode = $1`, pincode)
}

func (r *ComplaintRepository) ListByReporter(ctx context.Context, userID int64) ([]complaint.Complaint, error) {
	return r.list(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *ComplaintRepository) CountsByBadges(ctx context.Context, badges []string) (map[string]complaint.StatusCounts, error) {
	out := make(map[string]complaint.StatusCounts)
	if len(badges) == 0 {
		return out, nil
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, `
SELECT assigned_badge, status, COUNT(*)
FROM complaints
WHERE assigned_badge = ANY($1)
GROUP BY assigned_badge, status
`, badges)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var badge, rawStatus string
		var count int
		if err := rows.Scan(&badge, &rawStatus, &count); err != nil {
			return nil, err
		}
		status, err := complaint.ParseStatus(rawStatus)
		if err != nil {
			continue
		}
		counts := out[badge]
		counts.Add(status, count)
		out[badge] = counts
	}
	return out, rows.Err()
}

func (r *ComplaintRepository) Create(ctx context.Context, c complaint.Complaint) (complaint.Complaint, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return complaint.Complaint{}, err
	}
	row := tx.QueryRow(ctx, `
INSERT INTO complaints (
	user_id, title, crime_type, description, location_address,
	town, district, state, pincode, crime_datetime, proof_urls, status
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
RETURNING `+complaintColumns,
		c.UserID(),
		c.Title(),
		c.CrimeType(),
		c.Description(),
		c.LocationAddress(),
		c.Town(),
		c.District(),
		c.State(),
		c.Pincode(),
		c.CrimeDatetime(),
		c.ProofURLs(),
		string(c.Status()),
	)
	return scanComplaint(row)
}

func (r *ComplaintRepository) Assign(ctx context.Context, id int64, badge, remark string) (complaint.Complaint, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return complaint.Complaint{}, err
	}
	row := tx.QueryRow(ctx, `
UPDATE complaints
SET status = $1,
    assigned_badge = $2,
    remark = $3,
    updated_at = NOW()
WHERE complaint_id = $4
RETURNING `+complaintColumns,
		string(complaint.StatusInProgress), badge, remark, id)
	c, err := scanComplaint(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return complaint.Complaint{}, complaint.ErrNotFound
		}
		return complaint.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status complaint.Status, remark string) (complaint.Complaint, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return complaint.Complaint{}, err
	}
	row := tx.QueryRow(ctx, `
UPDATE complaints
SET status = $1,
    remark = $2,
    updated_at = NOW()
WHERE complaint_id = $3
RETURNING `+complaintColumns,
		string(status), remark, id)
	c, err := scanComplaint(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return complaint.Complaint{}, complaint.ErrNotFound
		}
		return complaint.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintRepository) UpdateCaseFile(ctx context.Context, id int64, url string) (complaint.Complaint, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return complaint.Complaint{}, err
	}
	row := tx.QueryRow(ctx, `
UPDATE complaints
SET case_file_url = $1,
    updated_at = NOW()
WHERE complaint_id = $2
RETURNING `+complaintColumns,
		url, id)
	c, err := scanComplaint(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return complaint.Complaint{}, complaint.ErrNotFound
		}
		return complaint.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintRepository) DeleteByReporter(ctx context.Context, id, userID int64) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM complaints WHERE complaint_id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return complaint.ErrNotFound
	}
	return nil
}

func (r *ComplaintRepository) list(ctx context.Context, query string, args ...any) ([]complaint.Complaint, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]complaint.Complaint, 0)
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanComplaint(row pgx.Row) (complaint.Complaint, error) {
	var (
		id, userID    int64
		title         string
		crimeType     string
		description   string
		location      string
		town          string
		district      string
		state         string
		pincode       string
		crimeDatetime pgtype.Timestamptz
		proofURLs     []string
		rawStatus     string
		assignedBadge pgtype.Text
		remark        pgtype.Text
		caseFileURL   pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &userID, &title, &crimeType, &description, &location,
		&town, &district, &state, &pincode, &crimeDatetime, &proofURLs, &rawStatus,
		&assignedBadge, &remark, &caseFileURL, &createdAt, &updatedAt,
	); err != nil {
		return complaint.Complaint{}, err
	}

	status, err := complaint.ParseStatus(rawStatus)
	if err != nil {
		return complaint.Complaint{}, err
	}

	return complaint.Hydrate(
		id,
		userID,
		title,
		crimeType,
		description,
		location,
		town,
		district,
		state,
		pincode,
		crimeDatetime.Time,
		proofURLs,
		status,
		assignedBadge.String,
		remark.String,
		caseFileURL.String,
		createdAt.Time,
		updatedAt.Time,
	), nil
}
