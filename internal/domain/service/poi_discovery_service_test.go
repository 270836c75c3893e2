package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripPlanner-App/internal/domain/model"
)

type fakePOIProvider struct {
	nearby      func(point model.LatLng) ([]model.PointOfInterest, error)
	destination func(point model.LatLng) ([]model.PointOfInterest, error)
}

func (f *fakePOIProvider) SearchNearby(_ context.Context, point model.LatLng, _ string) ([]model.PointOfInterest, error) {
	if f.nearby == nil {
		return nil, nil
	}
	return f.nearby(point)
}

func (f *fakePOIProvider) SearchDestination(_ context.Context, point model.LatLng, _ string) ([]model.PointOfInterest, error) {
	if f.destination == nil {
		return nil, nil
	}
	return f.destination(point)
}

func testRoute(n int) []model.LatLng {
	route := make([]model.LatLng, n)
	for i := range route {
		route[i] = model.LatLng{Lat: 48.0 + float64(i)*0.01, Lng: 2.0 + float64(i)*0.01}
	}
	return route
}

func poiAt(name string, lat, lng float64) model.PointOfInterest {
	return model.PointOfInterest{
		ID:       fmt.Sprintf("r_%s", name),
		Name:     name,
		Type:     "Attraction",
		Location: []float64{lat, lng},
	}
}

func TestDiscover_DeduplicatesByNameAndRoundedLocation(t *testing.T) {
	// Two candidates with the same name whose locations differ by less than
	// 0.001 degrees: only the first occurrence survives.
	provider := &fakePOIProvider{
		nearby: func(model.LatLng) ([]model.PointOfInterest, error) {
			return []model.PointOfInterest{
				poiAt("Old Mill", 48.10002, 2.20001),
				poiAt("Old Mill", 48.10041, 2.20038),
			}, nil
		},
	}

	discovered := NewPOIDiscoveryService(provider).Discover(context.Background(), testRoute(50), model.TripTypeHiking)

	require.Len(t, discovered, 1)
	assert.Equal(t, "Old Mill", discovered[0].Name)
	assert.InDelta(t, 48.10002, discovered[0].Location[0], 1e-9)
}

func TestDiscover_KeepsDistinctLocationsWithSameName(t *testing.T) {
	provider := &fakePOIProvider{
		nearby: func(point model.LatLng) ([]model.PointOfInterest, error) {
			// Anchor both POIs to the checkpoint so the three checkpoints
			// produce three distinct rounded locations.
			return []model.PointOfInterest{poiAt("Village Church", point.Lat, point.Lng)}, nil
		},
	}

	discovered := NewPOIDiscoveryService(provider).Discover(context.Background(), testRoute(100), model.TripTypeDriving)

	assert.Len(t, discovered, 3)
}

func TestDiscover_CapsResultsPerSource(t *testing.T) {
	var destCalls int
	provider := &fakePOIProvider{
		nearby: func(point model.LatLng) ([]model.PointOfInterest, error) {
			pois := make([]model.PointOfInterest, 10)
			for i := range pois {
				pois[i] = poiAt(fmt.Sprintf("near-%f-%d", point.Lat, i), point.Lat+float64(i)*0.01, point.Lng)
			}
			return pois, nil
		},
		destination: func(point model.LatLng) ([]model.PointOfInterest, error) {
			destCalls++
			pois := make([]model.PointOfInterest, 10)
			for i := range pois {
				pois[i] = poiAt(fmt.Sprintf("dest-%d", i), point.Lat+float64(i)*0.01, point.Lng+1)
				pois[i].IsDestination = true
			}
			return pois, nil
		},
	}

	discovered := NewPOIDiscoveryService(provider).Discover(context.Background(), testRoute(100), model.TripTypeCycling)

	// 3 checkpoints capped at 4 each, plus the destination capped at 5.
	assert.Equal(t, 1, destCalls)
	assert.Len(t, discovered, 3*4+5)

	var destCount int
	for _, poi := range discovered {
		if poi.IsDestination {
			destCount++
		}
	}
	assert.Equal(t, 5, destCount)
}

func TestDiscover_SwallowsIndividualQueryFailures(t *testing.T) {
	var call int
	provider := &fakePOIProvider{
		nearby: func(point model.LatLng) ([]model.PointOfInterest, error) {
			call++
			if call == 2 {
				return nil, errors.New("overpass timeout")
			}
			return []model.PointOfInterest{poiAt(fmt.Sprintf("cp-%d", call), point.Lat, point.Lng)}, nil
		},
		destination: func(model.LatLng) ([]model.PointOfInterest, error) {
			return nil, errors.New("overpass timeout")
		},
	}

	discovered := NewPOIDiscoveryService(provider).Discover(context.Background(), testRoute(100), model.TripTypeHiking)

	// Checkpoints 1 and 3 still contribute despite checkpoint 2 and the
	// destination failing.
	assert.Len(t, discovered, 2)
}

func TestDiscover_EmptyRouteAndUnknownType(t *testing.T) {
	provider := &fakePOIProvider{}
	svc := NewPOIDiscoveryService(provider)

	assert.Nil(t, svc.Discover(context.Background(), nil, model.TripTypeHiking))
	assert.Nil(t, svc.Discover(context.Background(), testRoute(10), "rowing-boat"))
}
