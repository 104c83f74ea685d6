package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/civisafe/civisafe/modules/registry/domain/entities/lead"
	"github.com/civisafe/civisafe/pkg/composables"
)

const leadColumns = `
	lead_id, user_id, title, media_urls, description, incident_datetime,
	location_address, town, district, state, pincode, country, anonymous,
	created_at`

const sightingColumns = `
	update_id, type, ref_id, updated_by, updated_by_role, update_text,
	proof_url, address, pincode, district, time_of_sighting, created_at`

type LeadRepository struct{}

func NewLeadRepository() lead.Repository {
	return &LeadRepository{}
}

func (r *LeadRepository) CreateLead(ctx context.Context, l lead.Lead) (lead.Lead, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return lead.Lead{}, err
	}

	// Anonymous leads persist a NULL user id.
	var userID any
	if !l.Anonymous && l.UserID != 0 {
		userID = l.UserID
	}

	row := tx.QueryRow(ctx, `
INSERT INTO leads (
	user_id, title, media_urls, description, incident_datetime,
	location_address, town, district, state, pincode, country, anonymous
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
RETURNING `+leadColumns,
		userID, l.Title, l.MediaURLs, l.Description, l.IncidentDatetime,
		l.LocationAddress, l.Town, l.District, l.State, l.Pincode, l.Country, l.Anonymous,
	)
	return scanLead(row)
}

func (r *LeadRepository) Search(ctx context.Context, f lead.Filter) ([]lead.Lead, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	builder := &predicateBuilder{}
	if f.Title != "" {
		builder.Where("title = $%d", f.Title)
	}
	if !f.StartDate.IsZero() {
		builder.Where("incident_datetime >= $%d", f.StartDate)
	}
	if !f.EndDate.IsZero() {
		builder.Where("incident_datetime <= $%d", f.EndDate)
	}
	if f.Town != "" {
		builder.Where("town ILIKE $%d", f.Town)
	}
	if f.District != "" {
		builder.Where("district ILIKE $%d", f.District)
	}
	if f.State != "" {
		builder.Where("state ILIKE $%d", f.State)
	}
	if f.Pincode != "" {
		builder.Where("pincode = $%d", f.Pincode)
	}
	if f.Country != "" {
		builder.Where("country ILIKE $%d", f.Country)
	}

	query, args := builder.Build(
		`SELECT `+leadColumns+` FROM leads WHERE 1=1`,
		"ORDER BY incident_datetime DESC",
	)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]lead.Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LeadRepository) CreateSighting(ctx context.Context, s lead.Sighting) (lead.Sighting, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return lead.Sighting{}, err
	}
	row := tx.QueryRow(ctx, `
INSERT INTO sighting_updates (
	type, ref_id, updated_by, updated_by_role, update_text,
	proof_url, address, pincode, district, time_of_sighting
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING `+sightingColumns,
		string(s.Type), s.RefID, s.UpdatedBy, s.UpdatedByRole, s.UpdateText,
		s.ProofURL, s.Address, s.Pincode, s.District, s.TimeOfSighting,
	)
	return scanSighting(row)
}

func (r *LeadRepository) SightingsByRef(ctx context.Context, refType lead.RefType, refID int64) ([]lead.Sighting, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, `
SELECT `+sightingColumns+`
FROM sighting_updates
WHERE ref_id = $1 AND type = $2
ORDER BY time_of_sighting DESC
`, refID, string(refType))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]lead.Sighting, 0)
	for rows.Next() {
		s, err := scanSighting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanLead(row pgx.Row) (lead.Lead, error) {
	var (
		l        lead.Lead
		userID   pgtype.Int8
		desc     pgtype.Text
		location pgtype.Text
		town     pgtype.Text
		district pgtype.Text
		state    pgtype.Text
		pincode  pgtype.Text
	)
	if err := row.Scan(
		&l.ID, &userID, &l.Title, &l.MediaURLs, &desc, &l.IncidentDatetime,
		&location, &town, &district, &state, &pincode, &l.Country, &l.Anonymous,
		&l.CreatedAt,
	); err != nil {
		return lead.Lead{}, err
	}
	l.UserID = userID.Int64
	l.Description = desc.String
	l.LocationAddress = location.String
	l.Town = town.String
	l.District = district.String
	l.State = state.String
	l.Pincode = pincode.String
	return l, nil
}

func scanSighting(row pgx.Row) (lead.Sighting, error) {
	var (
		s       lead.Sighting
		rawType string
	)
	if err := row.Scan(
		&s.ID, &rawType, &s.RefID, &s.UpdatedBy, &s.UpdatedByRole, &s.UpdateText,
		&s.ProofURL, &s.Address, &s.Pincode, &s.District, &s.TimeOfSighting, &s.CreatedAt,
	); err != nil {
		return lead.Sighting{}, err
	}
	refType, err := lead.ParseRefType(rawType)
	if err != nil {
		return lead.Sighting{}, err
	}
	s.Type = refType
	return s, nil
}
