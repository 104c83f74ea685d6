package lead

import "context"

type Repository interface {
	CreateLead(ctx context.Context, l Lead) (Lead, error)
	// Search applies only the filter fields that are set; results come
	// back newest incident first.
	Search(ctx context.Context, f Filter) ([]Lead, error)
	CreateSighting(ctx context.Context, s Sighting) (Sighting, error)
	// SightingsByRef lists sightings for one registry record, newest
	// sighting first.
	SightingsByRef(ctx context.Context, refType RefType, refID int64) ([]Sighting, error)
}
