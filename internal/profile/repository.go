package profile

import "context"

// Repository defines storage operations for profiles. The seam exists so a
// durable backing store can replace the in-memory one without touching the
// service or the HTTP facade.
type Repository interface {
	// Save inserts or overwrites the profile keyed by its user ID.
	Save(ctx context.Context, p *Profile) error

	// Get retrieves a profile by user ID, returning ErrProfileNotFound on a
	// miss.
	Get(ctx context.Context, userID string) (*Profile, error)
}
