package repository

import (
	"context"

	"TripPlanner-App/internal/domain/model"
)

// GeocodingProvider resolves a free-text place name to its single best-match
// location. Only the first provider match is used; no retries.
type GeocodingProvider interface {
	Geocode(ctx context.Context, query string) (*model.ResolvedLocation, error)
}

// DirectionsProvider plans a route between two coordinates, or a loop from a
// single coordinate for circular trips.
type DirectionsProvider interface {
	PlanRoute(ctx context.Context, req *model.DirectionsRequest) (*model.DirectionsResult, error)
}

// WeatherProvider fetches a multi-day forecast for a coordinate.
type WeatherProvider interface {
	GetForecast(ctx context.Context, lat, lng float64) (*model.Forecast, error)
}

// POIProvider issues category-filtered spatial queries around a point. The
// category set depends on the trip type and differs between checkpoint and
// destination queries.
type POIProvider interface {
	SearchNearby(ctx context.Context, point model.LatLng, tripType string) ([]model.PointOfInterest, error)
	SearchDestination(ctx context.Context, point model.LatLng, tripType string) ([]model.PointOfInterest, error)
}

// PhotoProvider finds a representative image for a trip. It never fails: on
// any provider trouble it falls back to a static default for the trip type.
type PhotoProvider interface {
	FindTripImage(ctx context.Context, query model.ImageQuery) string
}
