package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/civisafe/civisafe/modules/complaints/domain/entities/officer"
	"github.com/civisafe/civisafe/pkg/composables"
)

type OfficerRepository struct{}

func NewOfficerRepository() officer.Repository {
	return &OfficerRepository{}
}

func (r *OfficerRepository) GetByUserID(ctx context.Context, userID int64) (officer.Officer, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return officer.Officer{}, err
	}
	row := tx.QueryRow(ctx, `
SELECT pd.police_id, pd.user_id, pd.badge_number, pd.station_pincode, pd.rank, u.name, u.email
FROM police_details pd
JOIN users u ON u.user_id = pd.user_id
WHERE pd.user_id = $1
`, userID)
	return scanOfficer(row)
}

func (r *OfficerRepository) GetSubInspectorByPoliceID(ctx context.Context, policeID int64) (officer.Officer, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return officer.Officer{}, err
	}
	row := tx.QueryRow(ctx, `
SELECT pd.police_id, pd.user_id, pd.badge_number, pd.station_pincode, pd.rank, u.name, u.email
FROM police_details pd
JOIN users u ON u.user_id = pd.user_id
WHERE pd.police_id = $1 AND pd.rank = 'Sub-Inspector'
`, policeID)
	return scanOfficer(row)
}

func (r *OfficerRepository) ListSubInspectorsByStation(ctx context.Context, stationPincode string) ([]officer.SubInspector, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, `
SELECT pd.police_id, pd.user_id, u.name, pd.badge_number, u.profile_picture_url
FROM police_details pd
JOIN users u ON u.user_id = pd.user_id
WHERE pd.station_pincode = $1 AND pd.rank = 'Sub-Inspector'
ORDER BY u.name
`, stationPincode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]officer.SubInspector, 0)
	for rows.Next() {
		var (
			si      officer.SubInspector
			picture pgtype.Text
		)
		if err := rows.Scan(&si.PoliceID, &si.UserID, &si.Name, &si.BadgeNumber, &picture); err != nil {
			return nil, err
		}
		si.ProfilePictureURL = picture.String
		out = append(out, si)
	}
	return out, rows.Err()
}

func (r *OfficerRepository) ProfilePincode(ctx context.Context, userID int64) (string, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return "", err
	}
	var pincode pgtype.Text
	if err := tx.QueryRow(ctx, `SELECT pincode FROM users WHERE user_id = $1`, userID).Scan(&pincode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", officer.ErrNotFound
		}
		return "", err
	}
	return pincode.String, nil
}

func scanOfficer(row pgx.Row) (officer.Officer, error) {
	var (
		policeID, userID int64
		badge            string
		stationPincode   pgtype.Text
		rawRank          string
		name             string
		email            string
	)
	if err := row.Scan(&policeID, &userID, &badge, &stationPincode, &rawRank, &name, &email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return officer.Officer{}, officer.ErrNotFound
		}
		return officer.Officer{}, err
	}
	rank, err := officer.ParseRank(rawRank)
	if err != nil {
		return officer.Officer{}, err
	}
	return officer.Hydrate(policeID, userID, badge, stationPincode.String, rank, name, email), nil
}
