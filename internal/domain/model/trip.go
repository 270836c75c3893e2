package model

import (
	"fmt"
	"strings"
	"time"
)

// Trip is the persisted trip record. Created once on save, owned by the
// persistence layer afterwards; the planning flow never updates it.
type Trip struct {
	ID                string            `json:"id" firestore:"-"`
	OwnerID           string            `json:"owner_id" firestore:"owner_id"`
	Name              string            `json:"name" firestore:"name"`
	Description       string            `json:"description" firestore:"description"`
	Type              string            `json:"type" firestore:"type"`
	IsCircular        bool              `json:"is_circular" firestore:"is_circular"`
	IsMultiDay        bool              `json:"is_multi_day" firestore:"is_multi_day"`
	MaxDistancePerDay float64           `json:"max_distance_per_day" firestore:"max_distance_per_day"`
	NumberOfDays      int               `json:"number_of_days" firestore:"number_of_days"`
	StartLocation     TripLocation      `json:"start_location" firestore:"start_location"`
	EndLocation       TripLocation      `json:"end_location" firestore:"end_location"`
	Route             RouteGeometry     `json:"route" firestore:"route"`
	DailyDistances    []DailyDistance   `json:"daily_distances" firestore:"daily_distances"`
	TotalDistance     float64           `json:"total_distance" firestore:"total_distance"` // km, 1 decimal
	PointsOfInterest  []PointOfInterest `json:"points_of_interest" firestore:"points_of_interest"`
	ImageURL          string            `json:"image_url" firestore:"image_url"`
	StartDate         time.Time         `json:"start_date" firestore:"start_date"`
	EndDate           time.Time         `json:"end_date" firestore:"end_date"`
	CreatedAt         time.Time         `json:"created_at" firestore:"created_at"` // server-assigned
	UpdatedAt         time.Time         `json:"updated_at" firestore:"updated_at"` // server-assigned
}

// TripWithWeather is the detail view: the full record plus a freshly fetched
// forecast for the start location (nil when the weather provider failed).
type TripWithWeather struct {
	Trip    *Trip     `json:"trip"`
	Weather *Forecast `json:"weather"`
}

// ValidateForSave is the client-side validation layer run before the trip is
// submitted to the store. It raises a descriptive, field-naming error without
// contacting the server. The store independently re-validates with its own,
// intentionally different rules.
func (t *Trip) ValidateForSave() error {
	if strings.TrimSpace(t.Name) == "" {
		return &ValidationError{Field: "name", Message: "trip name is required"}
	}
	if strings.TrimSpace(t.Type) == "" {
		return &ValidationError{Field: "type", Message: "trip type is required"}
	}
	if strings.TrimSpace(t.Description) == "" {
		return &ValidationError{Field: "description", Message: "trip description is required"}
	}
	if err := validateTripLocation("startLocation", &t.StartLocation); err != nil {
		return err
	}
	if err := validateTripLocation("endLocation", &t.EndLocation); err != nil {
		return err
	}
	if t.Route.Coordinates == nil {
		return &ValidationError{Field: "route.coordinates", Message: "route coordinates are required"}
	}
	if t.StartDate.IsZero() {
		return &ValidationError{Field: "startDate", Message: "start date is required"}
	}
	if t.EndDate.IsZero() {
		return &ValidationError{Field: "endDate", Message: "end date is required"}
	}
	for i := range t.PointsOfInterest {
		poi := &t.PointsOfInterest[i]
		if poi.ID == "" {
			return &ValidationError{Field: fmt.Sprintf("pointsOfInterest[%d].id", i), Message: "each POI must have a valid string ID"}
		}
		if poi.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("pointsOfInterest[%d].name", i), Message: "each POI must have a valid name"}
		}
		if poi.Type == "" {
			return &ValidationError{Field: fmt.Sprintf("pointsOfInterest[%d].type", i), Message: "each POI must have a valid type"}
		}
		if len(poi.Location) != 2 {
			return &ValidationError{Field: fmt.Sprintf("pointsOfInterest[%d].location", i), Message: "each POI must have a valid location [lat, lng]"}
		}
	}
	return nil
}

func validateTripLocation(field string, loc *TripLocation) error {
	if len(loc.Coordinates) != 2 {
		return &ValidationError{Field: field + ".coordinates", Message: "coordinates must be a [lat, lng] pair"}
	}
	if strings.TrimSpace(loc.City) == "" {
		return &ValidationError{Field: field + ".city", Message: "city is required"}
	}
	if strings.TrimSpace(loc.Country) == "" {
		return &ValidationError{Field: field + ".country", Message: "country is required"}
	}
	return nil
}
