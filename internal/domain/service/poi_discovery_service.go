package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"TripPlanner-App/internal/domain/helper"
	"TripPlanner-App/internal/domain/model"
	"TripPlanner-App/internal/domain/repository"
)

const (
	// defaultCheckpoints is how many evenly spaced points along the route get
	// their own spatial query, in addition to the destination.
	defaultCheckpoints = 3
	// maxPOIsPerCheckpoint caps each checkpoint's results before deduplication.
	maxPOIsPerCheckpoint = 4
	// maxPOIsAtDestination caps the destination query's results before deduplication.
	maxPOIsAtDestination = 5
)

// POIDiscoveryService finds points of interest along a planned route.
type POIDiscoveryService interface {
	// Discover samples checkpoints along the route, queries each plus the
	// destination, and returns the deduplicated results. Individual query
	// failures are logged and swallowed; the result may be empty but Discover
	// itself never fails.
	Discover(ctx context.Context, route []model.LatLng, tripType string) []model.PointOfInterest
}

type poiDiscoveryService struct {
	provider repository.POIProvider
}

// NewPOIDiscoveryService creates a POIDiscoveryService on top of a spatial
// query provider.
func NewPOIDiscoveryService(provider repository.POIProvider) POIDiscoveryService {
	return &poiDiscoveryService{provider: provider}
}

func (s *poiDiscoveryService) Discover(ctx context.Context, route []model.LatLng, tripType string) []model.PointOfInterest {
	if !model.IsValidTripType(tripType) || len(route) == 0 {
		return nil
	}

	checkpoints := helper.RouteCheckpoints(route, defaultCheckpoints)
	logrus.Infof("🔎 POI discovery: %d checkpoints + destination (type: %s)", len(checkpoints), tripType)

	seen := make(map[string]struct{})
	var all []model.PointOfInterest

	for i, checkpoint := range checkpoints {
		results, err := s.provider.SearchNearby(ctx, checkpoint, tripType)
		if err != nil {
			logrus.Warnf("⚠️ POI query failed for checkpoint %d, skipping: %v", i+1, err)
			continue
		}
		all = appendDeduplicated(all, capPOIs(results, maxPOIsPerCheckpoint), seen)
	}

	destination := route[len(route)-1]
	destResults, err := s.provider.SearchDestination(ctx, destination, tripType)
	if err != nil {
		logrus.Warnf("⚠️ POI query failed for destination, skipping: %v", err)
	} else {
		all = appendDeduplicated(all, capPOIs(destResults, maxPOIsAtDestination), seen)
	}

	logrus.Infof("✅ POI discovery done: %d unique spots", len(all))
	return all
}

func capPOIs(pois []model.PointOfInterest, limit int) []model.PointOfInterest {
	if len(pois) > limit {
		return pois[:limit]
	}
	return pois
}

// appendDeduplicated adds POIs whose name+rounded-location key has not been
// seen yet. First occurrence wins.
func appendDeduplicated(all []model.PointOfInterest, candidates []model.PointOfInterest, seen map[string]struct{}) []model.PointOfInterest {
	for _, poi := range candidates {
		key := poi.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		all = append(all, poi)
	}
	return all
}
