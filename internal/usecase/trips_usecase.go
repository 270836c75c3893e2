package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"TripPlanner-App/internal/domain/helper"
	"TripPlanner-App/internal/domain/model"
	"TripPlanner-App/internal/domain/repository"
	"TripPlanner-App/internal/domain/service"
)

type TripsUseCase interface {
	// SaveTrip validates and persists a trip for the owner. The day/distance
	// reconciliation is re-applied here so the stored record is never
	// under-provisioned, whatever the client sent.
	SaveTrip(ctx context.Context, ownerID string, trip *model.Trip) (*model.Trip, error)

	// UpdateTrip rewrites the owner's existing trip. The same authoritative
	// reconciliation and validation as SaveTrip apply to the new record.
	UpdateTrip(ctx context.Context, id, ownerID string, trip *model.Trip) (*model.Trip, error)

	// ListTrips returns the owner's trip summaries, newest first.
	ListTrips(ctx context.Context, ownerID string) ([]*model.Trip, error)

	// GetTrip returns the full trip plus a fresh forecast for its start
	// location. A weather failure leaves the forecast nil.
	GetTrip(ctx context.Context, id, ownerID string) (*model.TripWithWeather, error)

	// DeleteTrip removes the owner's trip.
	DeleteTrip(ctx context.Context, id, ownerID string) error
}

type tripsUseCaseImpl struct {
	repo    repository.TripRepository
	weather repository.WeatherProvider
}

func NewTripsUseCase(repo repository.TripRepository, weather repository.WeatherProvider) TripsUseCase {
	return &tripsUseCaseImpl{repo: repo, weather: weather}
}

func (u *tripsUseCaseImpl) SaveTrip(ctx context.Context, ownerID string, trip *model.Trip) (*model.Trip, error) {
	trip.OwnerID = ownerID
	if err := prepareForStore(trip); err != nil {
		return nil, err
	}

	saved, err := u.repo.Create(ctx, trip)
	if err != nil {
		return nil, fmt.Errorf("failed to save trip: %w", err)
	}
	return saved, nil
}

func (u *tripsUseCaseImpl) UpdateTrip(ctx context.Context, id, ownerID string, trip *model.Trip) (*model.Trip, error) {
	// Ownership check first so a foreign trip reads as not found, never as a
	// validation failure on the submitted record.
	if _, err := u.repo.Get(ctx, id, ownerID); err != nil {
		return nil, err
	}

	trip.ID = id
	trip.OwnerID = ownerID
	if err := prepareForStore(trip); err != nil {
		return nil, err
	}

	updated, err := u.repo.Update(ctx, trip)
	if err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	return updated, nil
}

// prepareForStore recomputes the distance from the submitted geometry rather
// than trusting the client's figure, re-applies the day/distance
// reconciliation authoritatively and validates the record that will actually
// be written.
func prepareForStore(trip *model.Trip) error {
	totalKm := helper.TotalDistanceKm(trip.Route.ToLatLngs())
	trip.TotalDistance = helper.Round1(totalKm)

	// Only cycling trips can span multiple days by request.
	if trip.Type != model.TripTypeCycling {
		trip.IsMultiDay = false
	}

	rec := service.Reconcile(totalKm, trip.Type, trip.MaxDistancePerDay, trip.NumberOfDays, trip.IsMultiDay)
	if rec.Adjustment != nil {
		logrus.Warnf("📅 Stored day count raised from %d to %d", rec.Adjustment.RequestedDays, rec.Adjustment.AdjustedDays)
	}
	trip.NumberOfDays = rec.EffectiveDays
	trip.DailyDistances = rec.DailyDistances
	if rec.EffectiveDays > 1 {
		trip.IsMultiDay = true
	}
	if !trip.StartDate.IsZero() {
		trip.EndDate = trip.StartDate.AddDate(0, 0, rec.EffectiveDays)
	}

	return trip.ValidateForSave()
}

func (u *tripsUseCaseImpl) ListTrips(ctx context.Context, ownerID string) ([]*model.Trip, error) {
	return u.repo.List(ctx, ownerID)
}

func (u *tripsUseCaseImpl) GetTrip(ctx context.Context, id, ownerID string) (*model.TripWithWeather, error) {
	trip, err := u.repo.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	result := &model.TripWithWeather{Trip: trip}
	if len(trip.StartLocation.Coordinates) == 2 {
		forecast, err := u.weather.GetForecast(ctx, trip.StartLocation.Coordinates[0], trip.StartLocation.Coordinates[1])
		if err != nil {
			logrus.Warnf("⚠️ Weather lookup failed for trip %s: %v", trip.ID, err)
		} else {
			// One forecast entry per calendar day, at least 3 days.
			days := trip.NumberOfDays
			if days < 3 {
				days = 3
			}
			forecast.List = model.DailyForecasts(forecast.List, days)
			result.Weather = forecast
		}
	}
	return result, nil
}

func (u *tripsUseCaseImpl) DeleteTrip(ctx context.Context, id, ownerID string) error {
	return u.repo.Delete(ctx, id, ownerID)
}
