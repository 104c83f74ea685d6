package missingperson

import "context"

type Repository interface {
	Create(ctx context.Context, p MissingPerson) (MissingPerson, error)
	// ListByRegisteredPincode is the station view: records filed by
	// officers of that station, newest first.
	ListByRegisteredPincode(ctx context.Context, pincode string) ([]MissingPerson, error)
	// ListByPincode is the citizen view: records whose last-seen pincode
	// matches, newest first.
	ListByPincode(ctx context.Context, pincode string) ([]MissingPerson, error)
	Update(ctx context.Context, id int64, patch Patch) (MissingPerson, error)
	Delete(ctx context.Context, id int64) (MissingPerson, error)
}
