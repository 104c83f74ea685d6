package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/civisafe/civisafe/modules/registry/domain/entities/contributor"
	"github.com/civisafe/civisafe/pkg/composables"
)

type ContributorRepository struct{}

func NewContributorRepository() contributor.Repository {
	return &ContributorRepository{}
}

func (r *ContributorRepository) AwardPoint(ctx context.Context, userID int64) (contributor.Contributor, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return contributor.Contributor{}, err
	}
	var (
		c       contributor.Contributor
		picture pgtype.Text
	)
	err = tx.QueryRow(ctx, `
UPDATE users
SET contribution_points = contribution_points + 1,
    updated_at = NOW()
WHERE user_id = $1
RETURNING user_id, name, profile_picture_url, contribution_points
`, userID).Scan(&c.UserID, &c.Name, &picture, &c.ContributionPoints)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contributor.Contributor{}, contributor.ErrNotFound
		}
		return contributor.Contributor{}, err
	}
	c.ProfilePictureURL = picture.String
	return c, nil
}

func (r *ContributorRepository) RankedByPincode(ctx context.Context, pincode string) ([]contributor.Contributor, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, `
SELECT user_id, name, profile_picture_url, contribution_points
FROM users
WHERE pincode = $1
ORDER BY contribution_points DESC, user_id
`, pincode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]contributor.Contributor, 0)
	for rows.Next() {
		var (
			c       contributor.Contributor
			picture pgtype.Text
		)
		if err := rows.Scan(&c.UserID, &c.Name, &picture, &c.ContributionPoints); err != nil {
			return nil, err
		}
		c.ProfilePictureURL = picture.String
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ContributorRepository) ProfilePincode(ctx context.Context, userID int64) (string, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return "", err
	}
	var pincode pgtype.Text
	if err := tx.QueryRow(ctx, `SELECT pincode FROM users WHERE user_id = $1`, userID).Scan(&pincode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", contributor.ErrNotFound
		}
		return "", err
	}
	return pincode.String, nil
}
