package model

// DirectionsRequest describes one route request against the directions
// provider. For circular trips only Start is used, together with the desired
// loop length.
type DirectionsRequest struct {
	Profile          string // trip type, doubles as the provider profile
	Preference       string
	Start            LatLng
	End              LatLng
	Circular         bool
	LoopLengthMeters float64 // circular trips only
}

// DirectionsResult is a decoded route. When the provider returned several
// candidates, Points holds one of them selected uniformly at random and
// AlternativeCount reports how many there were.
type DirectionsResult struct {
	Points           []LatLng
	AlternativeCount int
}

// ImageQuery is the input to the trip image search cascade.
type ImageQuery struct {
	Location string // resolved display name
	City     string
	Country  string
	TripType string
}
