package doctors

import (
	"context"

	"MedBoard/internal/core/identity"
)

// Service defines the business logic interface for the doctors directory
type Service interface {
	// List retrieves doctors newest-first (id descending)
	List(ctx context.Context) ([]*Doctor, error)

	// Add creates a directory entry; admin/doctor only.
	// Name and specialty are required, bio is optional.
	Add(ctx context.Context, id identity.Identity, name, specialty, bio string) (*Doctor, error)

	// Remove deletes a directory entry; admin/doctor only.
	// Returns ErrNotFound when the id is unknown.
	Remove(ctx context.Context, id identity.Identity, doctorID int64) error
}

// Repository defines the data access interface for doctors
type Repository interface {
	Create(ctx context.Context, doctor *Doctor) error
	List(ctx context.Context) ([]*Doctor, error)
	Delete(ctx context.Context, id int64) error
}
