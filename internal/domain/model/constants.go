package model

// TripTypeConstants are the routing profiles supported by the planner.
// The values double as OpenRouteService profile names.
const (
	TripTypeHiking  = "foot-hiking"
	TripTypeCycling = "cycling-regular"
	TripTypeDriving = "driving-car"
)

// RoutePreferenceConstants are the route preferences accepted by the
// directions provider.
const (
	PreferenceRecommended = "recommended"
	PreferenceShortest    = "shortest"
	PreferenceFastest     = "fastest"
)

// TripTypeNameMap maps a routing profile to its display name.
var TripTypeNameMap = map[string]string{
	TripTypeHiking:  "Hiking",
	TripTypeCycling: "Cycling",
	TripTypeDriving: "Driving",
}

// IsValidTripType reports whether tripType is one of the supported profiles.
func IsValidTripType(tripType string) bool {
	switch tripType {
	case TripTypeHiking, TripTypeCycling, TripTypeDriving:
		return true
	}
	return false
}

// IsValidPreference reports whether preference is accepted by the directions provider.
func IsValidPreference(preference string) bool {
	switch preference {
	case PreferenceRecommended, PreferenceShortest, PreferenceFastest:
		return true
	}
	return false
}

// GetTripTypeDisplayName returns the display name for a routing profile.
func GetTripTypeDisplayName(tripType string) string {
	if name, ok := TripTypeNameMap[tripType]; ok {
		return name
	}
	return tripType
}

// ActivityTermsMap maps a trip type to the photo search terms describing the
// activity, ordered from most to least specific.
var ActivityTermsMap = map[string][]string{
	TripTypeHiking:  {"hiking", "hiking trail"},
	TripTypeCycling: {"cycling", "bicycle touring"},
	TripTypeDriving: {"road trip", "scenic drive"},
}

// ScenicTerms are appended to the location when activity-based photo queries
// come up empty.
var ScenicTerms = []string{"landscape", "scenery", "mountains", "nature"}

// ActivityTerms returns the photo search terms for a trip type.
func ActivityTerms(tripType string) []string {
	if terms, ok := ActivityTermsMap[tripType]; ok {
		return terms
	}
	return []string{"travel"}
}

// defaultTripImages are the static fallbacks used when no photo provider key
// is configured or the whole query cascade comes up empty.
var defaultTripImages = map[string]string{
	TripTypeHiking:  "https://images.unsplash.com/photo-1551632811-561732d1e306?w=1080&q=80",
	TripTypeCycling: "https://images.unsplash.com/photo-1541625602330-2277a4c46182?w=1080&q=80",
	TripTypeDriving: "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=1080&q=80",
}

const defaultTripImage = "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?w=1080&q=80"

// DefaultTripImage returns the static fallback image for a trip type.
func DefaultTripImage(tripType string) string {
	if url, ok := defaultTripImages[tripType]; ok {
		return url
	}
	return defaultTripImage
}
