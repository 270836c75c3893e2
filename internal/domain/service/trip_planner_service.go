package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"TripPlanner-App/internal/domain/helper"
	"TripPlanner-App/internal/domain/model"
	"TripPlanner-App/internal/domain/repository"
)

// Location resolution and routing failures abort the whole planning chain;
// the messages distinguish which endpoint could not be resolved.
var (
	ErrBothLocationsNotFound = errors.New("neither start nor end location could be found. Try using city names or addresses")
	ErrStartLocationNotFound = errors.New("start location could not be found. Try a more specific location name")
	ErrEndLocationNotFound   = errors.New("end location could not be found. Try a more specific location name")
	ErrNoRouteFound          = errors.New("no route found between these locations. Please try different locations or a different transport mode")
)

// TripPlannerService drives the end-to-end planning workflow: location
// resolution, routing, and the optional weather/POI/image enrichment.
type TripPlannerService interface {
	PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.TripPlan, error)
}

type tripPlannerService struct {
	geocoder     repository.GeocodingProvider
	directions   repository.DirectionsProvider
	weather      repository.WeatherProvider
	poiDiscovery POIDiscoveryService
	photos       repository.PhotoProvider
}

// NewTripPlannerService wires the planning workflow from its providers.
func NewTripPlannerService(
	geocoder repository.GeocodingProvider,
	directions repository.DirectionsProvider,
	weather repository.WeatherProvider,
	poiDiscovery POIDiscoveryService,
	photos repository.PhotoProvider,
) TripPlannerService {
	return &tripPlannerService{
		geocoder:     geocoder,
		directions:   directions,
		weather:      weather,
		poiDiscovery: poiDiscovery,
		photos:       photos,
	}
}

// PlanTrip runs the planning chain in order: geocode start, geocode end,
// request directions, then points of interest, weather and an image. The
// mandatory steps (geocoding, directions) abort the chain on failure and are
// never retried; the later steps degrade to safe defaults.
func (s *tripPlannerService) PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.TripPlan, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logrus.Infof("🚀 Trip planning started (type: %s, from: %q, to: %q)", req.TripType, req.StartLocation, req.EndLocation)

	// Circular hiking routes return to the start: the end query is replaced
	// before any geocoding happens.
	endQuery := req.EndLocation
	if req.TripType == model.TripTypeHiking && req.IsCircular {
		endQuery = req.StartLocation
	}

	start, err := s.geocoder.Geocode(ctx, req.StartLocation)
	if err != nil {
		logrus.Warnf("⚠️ Start location lookup failed for %q: %v", req.StartLocation, err)
		start = nil
	}
	end, err := s.geocoder.Geocode(ctx, endQuery)
	if err != nil {
		logrus.Warnf("⚠️ End location lookup failed for %q: %v", endQuery, err)
		end = nil
	}

	switch {
	case start == nil && end == nil:
		return nil, ErrBothLocationsNotFound
	case start == nil:
		return nil, ErrStartLocationNotFound
	case end == nil:
		return nil, ErrEndLocationNotFound
	}

	route, err := s.requestRoute(ctx, req, start, end)
	if err != nil {
		return nil, err
	}

	totalKm := helper.TotalDistanceKm(route)
	logrus.Infof("🗺️ Route planned: %d points, %.1f km", len(route), totalKm)

	plan := &model.TripPlan{
		TripType:        req.TripType,
		RoutePreference: req.RoutePreference,
		IsCircular:      req.TripType == model.TripTypeHiking && req.IsCircular,
		StartLocation:   *start,
		EndLocation:     *end,
		Route:           model.NewRouteGeometry(route),
		TotalDistanceKm: totalKm,
	}
	if len(route) > 0 {
		bound := helper.RouteBound(route)
		plan.Bounds = [][]float64{
			{bound.Min[1], bound.Min[0]},
			{bound.Max[1], bound.Max[0]},
		}
	}

	// The remaining steps are best-effort: the plan stays usable without them.
	plan.PointsOfInterest = s.poiDiscovery.Discover(ctx, route, req.TripType)
	if plan.PointsOfInterest == nil {
		plan.PointsOfInterest = []model.PointOfInterest{}
	}

	startPoint := start.ToLatLng()
	forecast, err := s.weather.GetForecast(ctx, startPoint.Lat, startPoint.Lng)
	if err != nil {
		logrus.Warnf("⚠️ Weather lookup failed, continuing without forecast: %v", err)
	} else {
		plan.Weather = forecast
	}

	plan.ImageURL = s.photos.FindTripImage(ctx, model.ImageQuery{
		Location: end.Name,
		City:     end.City,
		Country:  end.Country,
		TripType: req.TripType,
	})

	logrus.Infof("🎉 Trip planning completed (%.1f km, %d POIs)", plan.TotalDistanceKm, len(plan.PointsOfInterest))
	return plan, nil
}

func (s *tripPlannerService) requestRoute(ctx context.Context, req *model.TripPlanRequest, start, end *model.ResolvedLocation) ([]model.LatLng, error) {
	dirReq := &model.DirectionsRequest{
		Profile:    req.TripType,
		Preference: req.RoutePreference,
		Start:      start.ToLatLng(),
		End:        end.ToLatLng(),
	}
	if req.TripType == model.TripTypeHiking && req.IsCircular {
		dirReq.Circular = true
		dirReq.LoopLengthMeters = req.MaxDistancePerDay * 1000
	}

	result, err := s.directions.PlanRoute(ctx, dirReq)
	if err != nil {
		return nil, err
	}
	if len(result.Points) == 0 {
		return nil, ErrNoRouteFound
	}
	if result.AlternativeCount > 1 {
		logrus.Infof("🎲 Selected one of %d candidate routes", result.AlternativeCount)
	}
	return result.Points, nil
}
