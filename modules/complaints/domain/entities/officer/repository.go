package officer

import "context"

type Repository interface {
	// GetByUserID resolves the police record of an authenticated account.
	GetByUserID(ctx context.Context, userID int64) (Officer, error)
	// GetSubInspectorByPoliceID resolves an officer restricted to the
	// Sub-Inspector rank, joined to the profile for name and email.
	GetSubInspectorByPoliceID(ctx context.Context, policeID int64) (Officer, error)
	ListSubInspectorsByStation(ctx context.Context, stationPincode string) ([]SubInspector, error)
	// ProfilePincode returns the pincode from the officer's user profile,
	// empty when the profile has none.
	ProfilePincode(ctx context.Context, userID int64) (string, error)
}
