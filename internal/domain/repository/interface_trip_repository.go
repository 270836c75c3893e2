package repository

import (
	"context"

	"TripPlanner-App/internal/domain/model"
)

// TripRepository persists trip records. All reads and deletes are scoped to
// the owning user.
type TripRepository interface {
	// Create normalizes, re-validates and stores a new trip, assigning its ID
	// and server timestamps.
	Create(ctx context.Context, trip *model.Trip) (*model.Trip, error)

	// List returns the owner's trips, newest first, as summaries without the
	// detailed route coordinates.
	List(ctx context.Context, ownerID string) ([]*model.Trip, error)

	// Get returns the full trip record, or a not-found error when the trip
	// does not exist or belongs to another user.
	Get(ctx context.Context, id, ownerID string) (*model.Trip, error)

	// Update rewrites an existing trip after an ownership check, preserving
	// the created timestamp.
	Update(ctx context.Context, trip *model.Trip) (*model.Trip, error)

	// Delete removes the trip after an ownership check.
	Delete(ctx context.Context, id, ownerID string) error
}
