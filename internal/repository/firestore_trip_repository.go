package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"

	"TripPlanner-App/internal/domain/model"
	domrepo "TripPlanner-App/internal/domain/repository"
)

const tripsCollection = "trips"

// FirestoreTripRepository persists trips in a Firestore collection. It runs
// its own validation and normalization on write, independent of the
// client-side checks done before submission.
type FirestoreTripRepository struct {
	client *firestore.Client
}

func NewFirestoreTripRepository(client *firestore.Client) *FirestoreTripRepository {
	return &FirestoreTripRepository{client: client}
}

var _ domrepo.TripRepository = (*FirestoreTripRepository)(nil)

// Create normalizes and validates the trip, assigns its document ID and
// server timestamps, and writes it.
func (r *FirestoreTripRepository) Create(ctx context.Context, trip *model.Trip) (*model.Trip, error) {
	normalizeTrip(trip)
	if err := validateStoredTrip(trip); err != nil {
		return nil, err
	}

	trip.ID = fmt.Sprintf("trip_%s", uuid.New().String())
	now := time.Now().UTC()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	_, err := r.client.Collection(tripsCollection).Doc(trip.ID).Set(ctx, trip)
	if err != nil {
		logrus.Errorf("❌ Failed to save trip %s: %v", trip.ID, err)
		return nil, fmt.Errorf("failed to save trip: %w", err)
	}

	logrus.Infof("✅ Trip saved: %s (%s, %.1f km)", trip.ID, trip.Type, trip.TotalDistance)
	return trip, nil
}

// List returns the owner's trips newest first. Route coordinates are stripped
// from the summaries to keep the payload small.
func (r *FirestoreTripRepository) List(ctx context.Context, ownerID string) ([]*model.Trip, error) {
	iter := r.client.Collection(tripsCollection).
		Where("owner_id", "==", ownerID).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	trips := []*model.Trip{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list trips: %w", err)
		}

		var trip model.Trip
		if err := doc.DataTo(&trip); err != nil {
			return nil, fmt.Errorf("failed to decode trip %s: %w", doc.Ref.ID, err)
		}
		trip.ID = doc.Ref.ID
		trip.Route.Coordinates = nil
		trips = append(trips, &trip)
	}

	logrus.Infof("📋 Listed %d trips for owner %s", len(trips), ownerID)
	return trips, nil
}

// Get returns the full trip record. Trips belonging to another owner read
// as not found.
func (r *FirestoreTripRepository) Get(ctx context.Context, id, ownerID string) (*model.Trip, error) {
	doc, err := r.client.Collection(tripsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("trip not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	var trip model.Trip
	if err := doc.DataTo(&trip); err != nil {
		return nil, fmt.Errorf("failed to decode trip %s: %w", id, err)
	}
	trip.ID = doc.Ref.ID

	if trip.OwnerID != ownerID {
		return nil, fmt.Errorf("trip not found: %s", id)
	}
	return &trip, nil
}

// Update rewrites the full document and bumps updated_at. The created
// timestamp of the existing record is preserved.
func (r *FirestoreTripRepository) Update(ctx context.Context, trip *model.Trip) (*model.Trip, error) {
	existing, err := r.Get(ctx, trip.ID, trip.OwnerID)
	if err != nil {
		return nil, err
	}

	normalizeTrip(trip)
	if err := validateStoredTrip(trip); err != nil {
		return nil, err
	}

	trip.CreatedAt = existing.CreatedAt
	trip.UpdatedAt = time.Now().UTC()

	if _, err := r.client.Collection(tripsCollection).Doc(trip.ID).Set(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	logrus.Infof("✅ Trip updated: %s", trip.ID)
	return trip, nil
}

// Delete removes the trip after confirming ownership.
func (r *FirestoreTripRepository) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := r.Get(ctx, id, ownerID); err != nil {
		return err
	}

	if _, err := r.client.Collection(tripsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	logrus.Infof("🗑️ Trip deleted: %s", id)
	return nil
}

// normalizeTrip coerces the POI entries into the stored shape: description
// defaults to empty and only the known fields survive.
func normalizeTrip(trip *model.Trip) {
	normalized := make([]model.PointOfInterest, len(trip.PointsOfInterest))
	for i, poi := range trip.PointsOfInterest {
		normalized[i] = model.PointOfInterest{
			ID:            poi.ID,
			Name:          poi.Name,
			Type:          poi.Type,
			Location:      poi.Location,
			Description:   poi.Description,
			IsDestination: poi.IsDestination,
		}
	}
	trip.PointsOfInterest = normalized

	if trip.DailyDistances == nil {
		trip.DailyDistances = []model.DailyDistance{}
	}
}

// validateStoredTrip is the store-side validation layer. Its rules overlap
// with but do not match the client-side checks.
func validateStoredTrip(trip *model.Trip) error {
	if trip.OwnerID == "" {
		return &model.ValidationError{Field: "owner_id", Message: "owner is required"}
	}
	if strings.TrimSpace(trip.Name) == "" {
		return &model.ValidationError{Field: "name", Message: "name is required"}
	}
	if !model.IsValidTripType(trip.Type) {
		return &model.ValidationError{Field: "type", Message: "unknown trip type"}
	}
	if len(trip.StartLocation.Coordinates) != 2 {
		return &model.ValidationError{Field: "start_location.coordinates", Message: "coordinates must be a [lat, lng] pair"}
	}
	if len(trip.EndLocation.Coordinates) != 2 {
		return &model.ValidationError{Field: "end_location.coordinates", Message: "coordinates must be a [lat, lng] pair"}
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return &model.ValidationError{Field: "dates", Message: "start and end dates are required"}
	}
	if trip.NumberOfDays < 1 {
		return &model.ValidationError{Field: "number_of_days", Message: "number of days must be at least 1"}
	}
	return nil
}
