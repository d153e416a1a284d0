package profile

import "context"

// Repository persists birth profiles.
type Repository interface {
	Create(ctx context.Context, p Profile) error
	Get(ctx context.Context, id string) (Profile, bool, error)
}
