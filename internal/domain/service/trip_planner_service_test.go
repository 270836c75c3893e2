package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripPlanner-App/internal/domain/model"
)

type fakeGeocoder struct {
	queries []string
	results map[string]*model.ResolvedLocation
}

func (f *fakeGeocoder) Geocode(_ context.Context, query string) (*model.ResolvedLocation, error) {
	f.queries = append(f.queries, query)
	if loc, ok := f.results[query]; ok {
		return loc, nil
	}
	return nil, errors.New("no results for query")
}

type fakeDirections struct {
	lastReq *model.DirectionsRequest
	result  *model.DirectionsResult
	err     error
}

func (f *fakeDirections) PlanRoute(_ context.Context, req *model.DirectionsRequest) (*model.DirectionsResult, error) {
	f.lastReq = req
	return f.result, f.err
}

type fakeWeather struct {
	forecast *model.Forecast
	err      error
}

func (f *fakeWeather) GetForecast(context.Context, float64, float64) (*model.Forecast, error) {
	return f.forecast, f.err
}

type fakePhotos struct{ url string }

func (f *fakePhotos) FindTripImage(_ context.Context, query model.ImageQuery) string {
	if f.url != "" {
		return f.url
	}
	return model.DefaultTripImage(query.TripType)
}

func resolved(query, name, country string, lat, lng float64) *model.ResolvedLocation {
	return &model.ResolvedLocation{
		Name:        name,
		Query:       query,
		City:        model.CityFromQuery(query),
		Country:     country,
		Coordinates: []float64{lat, lng},
	}
}

func newPlannerFixture() (*fakeGeocoder, *fakeDirections, *fakeWeather, *fakePhotos, TripPlannerService) {
	geocoder := &fakeGeocoder{results: map[string]*model.ResolvedLocation{
		"Paris, France": resolved("Paris, France", "Paris, Ile-de-France, France", "France", 48.8566, 2.3522),
		"Orleans":       resolved("Orleans", "Orleans, Centre-Val de Loire, France", "France", 47.9029, 1.9093),
	}}
	directions := &fakeDirections{result: &model.DirectionsResult{
		Points: []model.LatLng{
			{Lat: 48.8566, Lng: 2.3522},
			{Lat: 48.5, Lng: 2.2},
			{Lat: 47.9029, Lng: 1.9093},
		},
		AlternativeCount: 1,
	}}
	weather := &fakeWeather{forecast: &model.Forecast{List: []model.ForecastEntry{{Dt: 1700000000}}}}
	photos := &fakePhotos{}
	planner := NewTripPlannerService(geocoder, directions, weather, NewPOIDiscoveryService(&fakePOIProvider{}), photos)
	return geocoder, directions, weather, photos, planner
}

func TestPlanTrip_HappyPath(t *testing.T) {
	_, _, _, _, planner := newPlannerFixture()

	plan, err := planner.PlanTrip(context.Background(), &model.TripPlanRequest{
		TripType:      model.TripTypeCycling,
		StartLocation: "Paris, France",
		EndLocation:   "Orleans",

		MaxDistancePerDay: 50,
		NumberOfDays:      1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Paris", plan.StartLocation.City)
	assert.Equal(t, "Orleans", plan.EndLocation.City)
	assert.Equal(t, "LineString", plan.Route.Type)
	assert.Len(t, plan.Route.Coordinates, 3)
	assert.Greater(t, plan.TotalDistanceKm, 0.0)
	require.Len(t, plan.Bounds, 2)
	assert.LessOrEqual(t, plan.Bounds[0][0], plan.Bounds[1][0])
	assert.NotNil(t, plan.Weather)
	assert.NotEmpty(t, plan.ImageURL)
	assert.NotNil(t, plan.PointsOfInterest)
}

func TestPlanTrip_CircularHikingReplacesEndQueryBeforeGeocoding(t *testing.T) {
	geocoder, directions, _, _, planner := newPlannerFixture()

	_, err := planner.PlanTrip(context.Background(), &model.TripPlanRequest{
		TripType:          model.TripTypeHiking,
		IsCircular:        true,
		StartLocation:     "Paris, France",
		EndLocation:       "Somewhere Else Entirely",
		MaxDistancePerDay: 15,
		NumberOfDays:      1,
	})
	require.NoError(t, err)

	// The end query was silently replaced by the start query before any
	// geocoding call was made.
	require.Len(t, geocoder.queries, 2)
	assert.Equal(t, "Paris, France", geocoder.queries[0])
	assert.Equal(t, "Paris, France", geocoder.queries[1])

	// The directions request carries loop options instead of two endpoints.
	require.NotNil(t, directions.lastReq)
	assert.True(t, directions.lastReq.Circular)
	assert.InDelta(t, 15000, directions.lastReq.LoopLengthMeters, 0.001)
}

func TestPlanTrip_LocationFailureMessages(t *testing.T) {
	t.Run("start not found", func(t *testing.T) {
		_, _, _, _, planner := newPlannerFixture()
		_, err := planner.PlanTrip(context.Background(), &model.TripPlanRequest{
			TripType:      model.TripTypeDriving,
			StartLocation: "Xyzzy Nowhere",
			EndLocation:   "Orleans",
		})
		assert.ErrorIs(t, err, ErrStartLocationNotFound)
	})

	t.Run("end not found", func(t *testing.T) {
		_, _, _, _, planner := newPlannerFixture()
		_, err := planner.PlanTrip(context.Background(), &model.TripPlanRequest{
			TripType:      model.TripTypeDriving,
			StartLocation: "Paris, France",
			EndLocation:   "Xyzzy Nowhere",
		})
		assert.ErrorIs(t, err, ErrEndLocationNotFound)
	})

	t.Run("both not found", func(t *testing.T) {
		_, _, _, _, planner := newPlannerFixture()
		_, err := planner.PlanTrip(context.Background(), &model.TripPlanRequest{
			TripType:      model.TripTypeDriving,
			StartLocation: "Xyzzy Nowhere",
			EndLocation:   "Plugh Nowhere",
		})
		assert.ErrorIs(t, err, ErrBothLocationsNotFound)
	})
}

func TestPlanTrip_NoRouteAborts(t *testing.T) {
	_, directions, _, _, planner := newPlannerFixture()
	directions.result = nil
	directions.err = ErrNoRouteFound

	_, err := planner.PlanTrip(context.Background(), &model.TripPlanRequest{
		TripType:      model.TripTypeDriving,
		StartLocation: "Paris, France",
		EndLocation:   "Orleans",
	})
	assert.ErrorIs(t, err, ErrNoRouteFound)
}

func TestPlanTrip_OptionalStepsDegrade(t *testing.T) {
	_, _, weather, _, _ := newPlannerFixture()
	weather.forecast = nil
	weather.err = errors.New("weather provider down")

	geocoder := &fakeGeocoder{results: map[string]*model.ResolvedLocation{
		"Paris, France": resolved("Paris, France", "Paris, France", "France", 48.8566, 2.3522),
		"Orleans":       resolved("Orleans", "Orleans, France", "France", 47.9029, 1.9093),
	}}
	directions := &fakeDirections{result: &model.DirectionsResult{
		Points:           []model.LatLng{{Lat: 48.8566, Lng: 2.3522}, {Lat: 47.9029, Lng: 1.9093}},
		AlternativeCount: 1,
	}}
	failingPOIs := &fakePOIProvider{
		nearby:      func(model.LatLng) ([]model.PointOfInterest, error) { return nil, errors.New("overpass down") },
		destination: func(model.LatLng) ([]model.PointOfInterest, error) { return nil, errors.New("overpass down") },
	}
	planner := NewTripPlannerService(geocoder, directions, weather, NewPOIDiscoveryService(failingPOIs), &fakePhotos{})

	plan, err := planner.PlanTrip(context.Background(), &model.TripPlanRequest{
		TripType:      model.TripTypeDriving,
		StartLocation: "Paris, France",
		EndLocation:   "Orleans",
	})
	require.NoError(t, err)

	// Weather is withheld, POIs default to empty, the image falls back to the
	// static per-trip-type default.
	assert.Nil(t, plan.Weather)
	assert.Empty(t, plan.PointsOfInterest)
	assert.Equal(t, model.DefaultTripImage(model.TripTypeDriving), plan.ImageURL)
}

func TestPlanTrip_RequestValidation(t *testing.T) {
	_, _, _, _, planner := newPlannerFixture()

	t.Run("missing end location for non-circular trips", func(t *testing.T) {
		_, err := planner.PlanTrip(context.Background(), &model.TripPlanRequest{
			TripType:      model.TripTypeDriving,
			StartLocation: "Paris, France",
		})
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "end_location", vErr.Field)
	})

	t.Run("cycling requires a distance cap", func(t *testing.T) {
		_, err := planner.PlanTrip(context.Background(), &model.TripPlanRequest{
			TripType:      model.TripTypeCycling,
			StartLocation: "Paris, France",
			EndLocation:   "Orleans",
		})
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "max_distance_per_day", vErr.Field)
	})

	t.Run("unknown trip type", func(t *testing.T) {
		_, err := planner.PlanTrip(context.Background(), &model.TripPlanRequest{
			TripType:      "rowing-boat",
			StartLocation: "Paris, France",
			EndLocation:   "Orleans",
		})
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "trip_type", vErr.Field)
	})
}
