package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripPlanner-App/internal/domain/model"
)

func storedTrip() *model.Trip {
	return &model.Trip{
		OwnerID: "user-1",
		Name:    "Loire valley ride",
		Type:    model.TripTypeCycling,
		StartLocation: model.TripLocation{
			Type:        "Point",
			Coordinates: []float64{48.8566, 2.3522},
			City:        "Paris",
			Country:     "France",
		},
		EndLocation: model.TripLocation{
			Type:        "Point",
			Coordinates: []float64{47.9029, 1.9093},
			City:        "Orleans",
			Country:     "France",
		},
		NumberOfDays: 2,
		StartDate:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestNormalizeTrip_DefaultsPOIFields(t *testing.T) {
	trip := storedTrip()
	trip.PointsOfInterest = []model.PointOfInterest{
		{ID: "r_1_2_0", Name: "Cafe du Pont", Type: "Cafe", Location: []float64{48.0, 2.0}},
	}

	normalizeTrip(trip)

	require.Len(t, trip.PointsOfInterest, 1)
	assert.Equal(t, "", trip.PointsOfInterest[0].Description)
	assert.False(t, trip.PointsOfInterest[0].IsDestination)
	assert.NotNil(t, trip.DailyDistances)
}

func TestNormalizeTrip_EmptyDailyDistances(t *testing.T) {
	trip := storedTrip()
	trip.DailyDistances = nil
	normalizeTrip(trip)
	assert.Equal(t, []model.DailyDistance{}, trip.DailyDistances)
}

func TestValidateStoredTrip(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateStoredTrip(storedTrip()))
	})

	t.Run("missing owner", func(t *testing.T) {
		trip := storedTrip()
		trip.OwnerID = ""
		var vErr *model.ValidationError
		require.ErrorAs(t, validateStoredTrip(trip), &vErr)
		assert.Equal(t, "owner_id", vErr.Field)
	})

	t.Run("unknown trip type", func(t *testing.T) {
		trip := storedTrip()
		trip.Type = "sailing"
		var vErr *model.ValidationError
		require.ErrorAs(t, validateStoredTrip(trip), &vErr)
		assert.Equal(t, "type", vErr.Field)
	})

	t.Run("malformed coordinates", func(t *testing.T) {
		trip := storedTrip()
		trip.EndLocation.Coordinates = []float64{47.9029}
		var vErr *model.ValidationError
		require.ErrorAs(t, validateStoredTrip(trip), &vErr)
		assert.Equal(t, "end_location.coordinates", vErr.Field)
	})

	t.Run("missing dates", func(t *testing.T) {
		trip := storedTrip()
		trip.EndDate = time.Time{}
		var vErr *model.ValidationError
		require.ErrorAs(t, validateStoredTrip(trip), &vErr)
		assert.Equal(t, "dates", vErr.Field)
	})

	t.Run("zero days", func(t *testing.T) {
		trip := storedTrip()
		trip.NumberOfDays = 0
		var vErr *model.ValidationError
		require.ErrorAs(t, validateStoredTrip(trip), &vErr)
		assert.Equal(t, "number_of_days", vErr.Field)
	})
}
