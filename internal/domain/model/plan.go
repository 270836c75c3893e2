package model

import (
	"fmt"
	"time"
)

// TripPlanRequest is the user-authored input to the planning workflow.
type TripPlanRequest struct {
	TripType          string  `json:"trip_type"`
	RoutePreference   string  `json:"route_preference"`
	IsCircular        bool    `json:"is_circular"`  // hiking only
	IsMultiDay        bool    `json:"is_multi_day"` // cycling only
	MaxDistancePerDay float64 `json:"max_distance_per_day"` // km
	MinDistancePerDay float64 `json:"min_distance_per_day"` // km, hiking only, advisory
	StartLocation     string  `json:"start_location"`
	EndLocation       string  `json:"end_location"` // ignored when circular
	NumberOfDays      int     `json:"number_of_days"`
}

// ApplyDefaults fills the fields the client may omit and clears the ones
// that do not apply to the requested trip type.
func (r *TripPlanRequest) ApplyDefaults() {
	if r.RoutePreference == "" {
		r.RoutePreference = PreferenceRecommended
	}
	if r.NumberOfDays < 1 {
		r.NumberOfDays = 1
	}
	// Only cycling trips can span multiple days.
	if r.TripType != TripTypeCycling {
		r.IsMultiDay = false
	}
}

// Validate checks the request before any provider is contacted.
func (r *TripPlanRequest) Validate() error {
	if !IsValidTripType(r.TripType) {
		return &ValidationError{Field: "trip_type", Message: "trip type must be one of foot-hiking, cycling-regular, driving-car"}
	}
	if !IsValidPreference(r.RoutePreference) {
		return &ValidationError{Field: "route_preference", Message: "route preference must be recommended, shortest or fastest"}
	}
	if r.StartLocation == "" {
		return &ValidationError{Field: "start_location", Message: "start location is required"}
	}
	if r.EndLocation == "" && !(r.TripType == TripTypeHiking && r.IsCircular) {
		return &ValidationError{Field: "end_location", Message: "end location is required for non-circular trips"}
	}
	if r.MaxDistancePerDay < 0 {
		return &ValidationError{Field: "max_distance_per_day", Message: "max distance per day must be positive"}
	}
	if r.TripType == TripTypeCycling && r.MaxDistancePerDay <= 0 {
		return &ValidationError{Field: "max_distance_per_day", Message: "max distance per day is required for cycling trips"}
	}
	if r.TripType == TripTypeHiking && r.IsCircular && r.MaxDistancePerDay <= 0 {
		return &ValidationError{Field: "max_distance_per_day", Message: "max distance per day is required for circular hiking trips"}
	}
	if r.MinDistancePerDay < 0 {
		return &ValidationError{Field: "min_distance_per_day", Message: "min distance per day must be positive"}
	}
	if r.NumberOfDays < 1 {
		return &ValidationError{Field: "number_of_days", Message: "number of days must be at least 1"}
	}
	return nil
}

// TripPlan is the assembled result of one planning run. Weather, POIs and the
// image are best-effort: the plan is usable without them.
type TripPlan struct {
	TripType         string            `json:"trip_type"`
	RoutePreference  string            `json:"route_preference"`
	IsCircular       bool              `json:"is_circular"`
	StartLocation    ResolvedLocation  `json:"start_location"`
	EndLocation      ResolvedLocation  `json:"end_location"`
	Route            RouteGeometry     `json:"route"`
	Bounds           [][]float64       `json:"bounds,omitempty"` // [[minLat,minLng],[maxLat,maxLng]], for map framing
	TotalDistanceKm  float64           `json:"total_distance_km"` // full precision until the response is built
	Weather          *Forecast         `json:"weather,omitempty"`
	PointsOfInterest []PointOfInterest `json:"points_of_interest"`
	ImageURL         string            `json:"image_url"`
}

// DayAdjustment is the informational notice emitted when the requested day
// count had to be raised to respect the distance-per-day cap. It never blocks
// saving.
type DayAdjustment struct {
	RequestedDays   int     `json:"requested_days"`
	AdjustedDays    int     `json:"adjusted_days"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	BecomesMultiDay bool    `json:"becomes_multi_day"`
}

// DailyDistance is one day's share of the total distance.
type DailyDistance struct {
	Day        int     `json:"day" firestore:"day"`
	DistanceKm float64 `json:"distance" firestore:"distance"`
}

// PlanTripResponse is what the planning endpoint returns: the plan itself,
// the advisory reconciliation of the requested day count, and a prefilled
// trip record the client can edit and submit for saving.
type PlanTripResponse struct {
	Plan           *TripPlan       `json:"plan"`
	EffectiveDays  int             `json:"effective_days"`
	DailyDistances []DailyDistance `json:"daily_distances"`
	Adjustment     *DayAdjustment  `json:"adjustment,omitempty"`
	TripDraft      *Trip           `json:"trip_draft,omitempty"`
}

// ToTripDraft assembles a persistable trip record from the plan. The name and
// description are generated, dates start today, and the day fields carry the
// advisory reconciliation; everything is client-editable before saving.
func (p *TripPlan) ToTripDraft(req *TripPlanRequest, effectiveDays int, dailyDistances []DailyDistance) *Trip {
	displayName := GetTripTypeDisplayName(p.TripType)
	name := fmt.Sprintf("%s Trip from %s to %s", displayName, p.StartLocation.City, p.EndLocation.City)
	description := fmt.Sprintf("A planned %s route covering %.1f km", displayName, p.TotalDistanceKm)
	if p.IsCircular {
		name = fmt.Sprintf("%s Trip around %s", displayName, p.StartLocation.City)
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	return &Trip{
		Name:              name,
		Description:       description,
		Type:              p.TripType,
		IsCircular:        p.IsCircular,
		IsMultiDay:        effectiveDays > 1,
		MaxDistancePerDay: req.MaxDistancePerDay,
		NumberOfDays:      effectiveDays,
		StartLocation:     p.StartLocation.ToTripLocation(),
		EndLocation:       p.EndLocation.ToTripLocation(),
		Route:             p.Route,
		DailyDistances:    dailyDistances,
		TotalDistance:     p.TotalDistanceKm,
		PointsOfInterest:  p.PointsOfInterest,
		ImageURL:          p.ImageURL,
		StartDate:         startDate,
		EndDate:           startDate.AddDate(0, 0, effectiveDays),
	}
}

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
