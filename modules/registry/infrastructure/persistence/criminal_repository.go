package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/civisafe/civisafe/modules/registry/domain/entities/criminal"
	"github.com/civisafe/civisafe/pkg/composables"
)

const criminalColumns = `
	criminal_id, name, age, gender, description, profile_picture_url,
	last_seen_location, last_seen_time, probable_location, address, district,
	pincode, registered_pincode, added_by, star, reward_on_information, status,
	created_at, updated_at`

type CriminalRepository struct{}

func NewCriminalRepository() criminal.Repository {
	return &CriminalRepository{}
}

func (r *CriminalRepository) Create(ctx context.Context, c criminal.Criminal) (criminal.Criminal, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return criminal.Criminal{}, err
	}
	row := tx.QueryRow(ctx, `
INSERT INTO criminals (
	name, age, gender, description, profile_picture_url,
	last_seen_location, last_seen_time, probable_location, address, district,
	pincode, registered_pincode, added_by, star, reward_on_information, status
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
RETURNING `+criminalColumns,
		c.Name, c.Age, c.Gender, c.Description, c.ProfilePictureURL,
		c.LastSeenLocation, c.LastSeenTime, c.ProbableLocation, c.Address, c.District,
		c.Pincode, c.RegisteredPincode, c.AddedBy, c.Star, c.RewardOnInformation, string(c.Status),
	)
	return scanCriminal(row)
}

func (r *CriminalRepository) ListByRegisteredPincode(ctx context.Context, pincode string) ([]criminal.Criminal, error) {
	return r.list(ctx, `
SELECT `+criminalColumns+`
FROM criminals
WHERE registered_pincode = $1
ORDER BY created_at DESC
`, pincode)
}

func (r *CriminalRepository) ListByPincode(ctx context.Context, pincode string) ([]criminal.Criminal, error) {
	return r.list(ctx, `
SELECT `+criminalColumns+`
FROM criminals
WHERE pincode = $1
ORDER BY created_at DESC
`, pincode)
}

func (r *CriminalRepository) Update(ctx context.Context, id int64, patch criminal.Patch) (criminal.Criminal, error) {
	if patch.Empty() {
		return criminal.Criminal{}, criminal.ErrEmptyPatch
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return criminal.Criminal{}, err
	}

	builder := &updateBuilder{}
	if patch.Description != nil {
		builder.Set("description", *patch.Description)
	}
	if patch.LastSeenLocation != nil {
		builder.Set("last_seen_location", *patch.LastSeenLocation)
	}
	if patch.LastSeenTime != nil {
		builder.Set("last_seen_time", *patch.LastSeenTime)
	}
	if patch.ProbableLocation != nil {
		builder.Set("probable_location", *patch.ProbableLocation)
	}
	if patch.Pincode != nil {
		builder.Set("pincode", *patch.Pincode)
	}
	if patch.Star != nil {
		builder.Set("star", *patch.Star)
	}
	if patch.RewardOnInformation != nil {
		builder.Set("reward_on_information", *patch.RewardOnInformation)
	}
	if patch.Status != nil {
		builder.Set("status", string(*patch.Status))
	}

	query, args := builder.Build("criminals", "criminal_id", id)
	c, err := scanCriminal(tx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return criminal.Criminal{}, criminal.ErrNotFound
		}
		return criminal.Criminal{}, err
	}
	return c, nil
}

func (r *CriminalRepository) Delete(ctx context.Context, id int64) (criminal.Criminal, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return criminal.Criminal{}, err
	}
	row := tx.QueryRow(ctx, `
DELETE FROM criminals WHERE criminal_id = $1
RETURNING `+criminalColumns, id)
	c, err := scanCriminal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return criminal.Criminal{}, criminal.ErrNotFound
		}
		return criminal.Criminal{}, err
	}
	return c, nil
}

func (r *CriminalRepository) list(ctx context.Context, query string, args ...any) ([]criminal.Criminal, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]criminal.Criminal, 0)
	for rows.Next() {
		c, err := scanCriminal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCriminal(row pgx.Row) (criminal.Criminal, error) {
	var (
		c         criminal.Criminal
		age       pgtype.Int4
		gender    pgtype.Text
		desc      pgtype.Text
		picture   pgtype.Text
		lastLoc   pgtype.Text
		probable  pgtype.Text
		address   pgtype.Text
		district  pgtype.Text
		rawStatus string
	)
	if err := row.Scan(
		&c.ID, &c.Name, &age, &gender, &desc, &picture,
		&lastLoc, &c.LastSeenTime, &probable, &address, &district,
		&c.Pincode, &c.RegisteredPincode, &c.AddedBy, &c.Star, &c.RewardOnInformation, &rawStatus,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return criminal.Criminal{}, err
	}
	status, err := criminal.ParseStatus(rawStatus)
	if err != nil {
		return criminal.Criminal{}, err
	}
	c.Age = int(age.Int32)
	c.Gender = gender.String
	c.Description = desc.String
	c.ProfilePictureURL = picture.String
	c.LastSeenLocation = lastLoc.String
	c.ProbableLocation = probable.String
	c.Address = address.String
	c.District = district.String
	c.Status = status
	return c, nil
}
