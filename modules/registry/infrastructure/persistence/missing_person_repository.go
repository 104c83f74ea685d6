package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/civisafe/civisafe/modules/registry/domain/entities/missingperson"
	"github.com/civisafe/civisafe/pkg/composables"
)

const missingPersonColumns = `
	missing_id, name, age, gender, description, profile_picture_url,
	last_seen_location, last_seen_time, probable_location, address, district,
	pincode, registered_pincode, added_by, reward_on_information, status,
	created_at, updated_at`

type MissingPersonRepository struct{}

func NewMissingPersonRepository() missingperson.Repository {
	return &MissingPersonRepository{}
}

func (r *MissingPersonRepository) Create(ctx context.Context, p missingperson.MissingPerson) (missingperson.MissingPerson, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return missingperson.MissingPerson{}, err
	}
	row := tx.QueryRow(ctx, `
INSERT INTO missing_persons (
	name, age, gender, description, profile_picture_url,
	last_seen_location, last_seen_time, probable_location, address, district,
	pincode, registered_pincode, added_by, reward_on_information, status
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
RETURNING `+missingPersonColumns,
		p.Name, p.Age, p.Gender, p.Description, p.ProfilePictureURL,
		p.LastSeenLocation, p.LastSeenTime, p.ProbableLocation, p.Address, p.District,
		p.Pincode, p.RegisteredPincode, p.AddedBy, p.RewardOnInformation, string(p.Status),
	)
	return scanMissingPerson(row)
}

func (r *MissingPersonRepository) ListByRegisteredPincode(ctx context.Context, pincode string) ([]missingperson.MissingPerson, error) {
	return r.list(ctx, `
SELECT `+missingPersonColumns+`
FROM missing_persons
WHERE registered_pincode = $1
ORDER BY created_at DESC
`, pincode)
}

func (r *MissingPersonRepository) ListByPincode(ctx context.Context, pincode string) ([]missingperson.MissingPerson, error) {
	return r.list(ctx, `
SELECT `+missingPersonColumns+`
FROM missing_persons
WHERE pincode = $1
ORDER BY created_at DESC
`, pincode)
}

func (r *MissingPersonRepository) Update(ctx context.Context, id int64, patch missingperson.Patch) (missingperson.MissingPerson, error) {
	if patch.Empty() {
		return missingperson.MissingPerson{}, missingperson.ErrEmptyPatch
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return missingperson.MissingPerson{}, err
	}

	builder := &updateBuilder{}
	if patch.ProbableLocation != nil {
		builder.Set("probable_location", *patch.ProbableLocation)
	}
	if patch.Pincode != nil {
		builder.Set("pincode", *patch.Pincode)
	}
	if patch.LastSeenLocation != nil {
		builder.Set("last_seen_location", *patch.LastSeenLocation)
	}
	if patch.LastSeenTime != nil {
		builder.Set("last_seen_time", *patch.LastSeenTime)
	}
	if patch.Description != nil {
		builder.Set("description", *patch.Description)
	}
	if patch.RewardOnInformation != nil {
		builder.Set("reward_on_information", *patch.RewardOnInformation)
	}
	if patch.Status != nil {
		builder.Set("status", string(*patch.Status))
	}

	query, args := builder.Build("missing_persons", "missing_id", id)
	p, err := scanMissingPerson(tx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return missingperson.MissingPerson{}, missingperson.ErrNotFound
		}
		return missingperson.MissingPerson{}, err
	}
	return p, nil
}

func (r *MissingPersonRepository) Delete(ctx context.Context, id int64) (missingperson.MissingPerson, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return missingperson.MissingPerson{}, err
	}
	row := tx.QueryRow(ctx, `
DELETE FROM missing_persons WHERE missing_id = $1
RETURNING `+missingPersonColumns, id)
	p, err := scanMissingPerson(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return missingperson.MissingPerson{}, missingperson.ErrNotFound
		}
		return missingperson.MissingPerson{}, err
	}
	return p, nil
}

func (r *MissingPersonRepository) list(ctx context.Context, query string, args ...any) ([]missingperson.MissingPerson, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]missingperson.MissingPerson, 0)
	for rows.Next() {
		p, err := scanMissingPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanMissingPerson(row pgx.Row) (missingperson.MissingPerson, error) {
	var (
		p         missingperson.MissingPerson
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
		&p.ID, &p.Name, &age, &gender, &desc, &picture,
		&lastLoc, &p.LastSeenTime, &probable, &address, &district,
		&p.Pincode, &p.RegisteredPincode, &p.AddedBy, &p.RewardOnInformation, &rawStatus,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return missingperson.MissingPerson{}, err
	}
	status, err := missingperson.ParseStatus(rawStatus)
	if err != nil {
		return missingperson.MissingPerson{}, err
	}
	p.Age = int(age.Int32)
	p.Gender = gender.String
	p.Description = desc.String
	p.ProfilePictureURL = picture.String
	p.LastSeenLocation = lastLoc.String
	p.ProbableLocation = probable.String
	p.Address = address.String
	p.District = district.String
	p.Status = status
	return p, nil
}
