package model

import "fmt"

// PointOfInterest is a spot discovered along a route or at the destination.
// IDs are synthetic (timestamp + provider id + index) and only meaningful
// within a single planning session.
type PointOfInterest struct {
	ID            string    `json:"id" firestore:"id"`
	Name          string    `json:"name" firestore:"name"`
	Type          string    `json:"type" firestore:"type"`         // trip-type-dependent category
	Location      []float64 `json:"location" firestore:"location"` // [lat, lng]
	Description   string    `json:"description" firestore:"description"`
	IsDestination bool      `json:"isDestination" firestore:"is_destination"`
}

// ToLatLng returns the POI coordinate pair.
func (p *PointOfInterest) ToLatLng() LatLng {
	if len(p.Location) >= 2 {
		return LatLng{Lat: p.Location[0], Lng: p.Location[1]}
	}
	return LatLng{}
}

// DedupKey is the composite identity used to deduplicate POIs within one
// planning run: name plus location rounded to 3 decimal places.
func (p *PointOfInterest) DedupKey() string {
	lat, lng := 0.0, 0.0
	if len(p.Location) >= 2 {
		lat, lng = p.Location[0], p.Location[1]
	}
	return fmt.Sprintf("%s-%.3f-%.3f", p.Name, lat, lng)
}
