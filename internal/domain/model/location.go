package model

import "strings"

// LatLng is the basic coordinate pair used throughout route planning.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ResolvedLocation is a free-text place query resolved by the geocoder.
// Immutable once produced; only the first provider match is ever used.
type ResolvedLocation struct {
	Name        string    `json:"name"`        // provider display name
	Query       string    `json:"query"`       // the raw user query
	City        string    `json:"city"`        // derived from the query text
	Country     string    `json:"country"`     // derived from the display name
	Coordinates []float64 `json:"coordinates"` // [lat, lng]
}

// ToLatLng returns the resolved coordinate pair.
func (l *ResolvedLocation) ToLatLng() LatLng {
	if len(l.Coordinates) >= 2 {
		return LatLng{Lat: l.Coordinates[0], Lng: l.Coordinates[1]}
	}
	return LatLng{}
}

// ToTripLocation converts a resolved location into the shape persisted on a trip.
func (l *ResolvedLocation) ToTripLocation() TripLocation {
	return TripLocation{
		Type:        "Point",
		Coordinates: l.Coordinates,
		City:        l.City,
		Country:     l.Country,
	}
}

// TripLocation is a named endpoint of a persisted trip.
type TripLocation struct {
	Type        string    `json:"type" firestore:"type"`
	Coordinates []float64 `json:"coordinates" firestore:"coordinates"` // [lat, lng]
	City        string    `json:"city" firestore:"city"`
	Country     string    `json:"country" firestore:"country"`
}

// RouteGeometry is the ordered point sequence of a planned route.
// First point is the start, last is the end (approximately the start again
// for circular trips; closure is not guaranteed by the provider).
type RouteGeometry struct {
	Type        string      `json:"type" firestore:"type"`
	Coordinates [][]float64 `json:"coordinates" firestore:"coordinates"` // [lat, lng] pairs
}

// NewRouteGeometry builds a LineString geometry from route points.
func NewRouteGeometry(points []LatLng) RouteGeometry {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lat, p.Lng}
	}
	return RouteGeometry{Type: "LineString", Coordinates: coords}
}

// ToLatLngs converts the stored coordinate pairs back into route points.
// Malformed pairs are skipped.
func (g *RouteGeometry) ToLatLngs() []LatLng {
	points := make([]LatLng, 0, len(g.Coordinates))
	for _, c := range g.Coordinates {
		if len(c) < 2 {
			continue
		}
		points = append(points, LatLng{Lat: c[0], Lng: c[1]})
	}
	return points
}

// CityFromQuery derives a city name from a free-text location query,
// taking everything before the first comma ("Paris, France" -> "Paris").
func CityFromQuery(query string) string {
	city := query
	if idx := strings.Index(query, ","); idx >= 0 {
		city = query[:idx]
	}
	return strings.TrimSpace(city)
}

// CountryFromDisplayName derives a country from a geocoder display name,
// taking the last comma-separated component.
func CountryFromDisplayName(displayName string) string {
	parts := strings.Split(displayName, ",")
	country := strings.TrimSpace(parts[len(parts)-1])
	if country == "" {
		return "Unknown"
	}
	return country
}
