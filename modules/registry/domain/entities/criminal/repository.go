package criminal

import "context"

type Repository interface {
	Create(ctx context.Context, c Criminal) (Criminal, error)
	ListByRegisteredPincode(ctx context.Context, pincode string) ([]Criminal, error)
	ListByPincode(ctx context.Context, pincode string) ([]Criminal, error)
	Update(ctx context.Context, id int64, patch Patch) (Criminal, error)
	Delete(ctx context.Context, id int64) (Criminal, error)
}
