package helper

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"TripPlanner-App/internal/domain/model"
)

// ToOrbPoint converts a route point into an orb.Point ([lng, lat] order).
func ToOrbPoint(p model.LatLng) orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// TotalDistanceKm sums the great-circle distance between consecutive route
// points, in kilometers. Routes of fewer than 2 points have zero distance.
// Full precision is kept; rounding happens at presentation and persistence
// boundaries only.
func TotalDistanceKm(route []model.LatLng) float64 {
	if len(route) < 2 {
		return 0
	}
	var total float64
	for i := 1; i < len(route); i++ {
		total += geo.Distance(ToOrbPoint(route[i-1]), ToOrbPoint(route[i])) / 1000
	}
	return total
}

// RouteCheckpoints samples numPoints evenly spaced points along the route,
// used as centers for POI spatial queries. A degenerate route yields its only
// point.
func RouteCheckpoints(route []model.LatLng, numPoints int) []model.LatLng {
	if len(route) == 0 {
		return nil
	}
	if len(route) < 2 {
		return []model.LatLng{route[0]}
	}

	checkpoints := make([]model.LatLng, 0, numPoints)
	step := float64(len(route)) / float64(numPoints+1)
	for i := 1; i <= numPoints; i++ {
		index := int(step * float64(i))
		if index < len(route) {
			checkpoints = append(checkpoints, route[index])
		}
	}
	return checkpoints
}

// RouteBound returns the bounding box of a route, padded by roughly 100m.
// Used to center and frame the rendered map.
func RouteBound(route []model.LatLng) orb.Bound {
	if len(route) == 0 {
		return orb.Bound{}
	}
	bound := orb.Bound{Min: ToOrbPoint(route[0]), Max: ToOrbPoint(route[0])}
	for _, p := range route[1:] {
		bound = bound.Extend(ToOrbPoint(p))
	}
	return bound.Pad(0.001)
}

// Round1 rounds to 1 decimal place, the precision used for persisted and
// displayed distances.
func Round1(km float64) float64 {
	return math.Round(km*10) / 10
}
