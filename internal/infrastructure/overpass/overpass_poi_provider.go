package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"TripPlanner-App/internal/domain/model"
	"TripPlanner-App/internal/domain/repository"
)

const defaultOverpassBaseURL = "https://overpass-api.de"

// OverpassPOIProvider queries the Overpass API for OpenStreetMap nodes around
// a point. The node categories searched depend on the trip type, and the
// destination query uses a different category mix than the checkpoint one.
type OverpassPOIProvider struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

func NewOverpassPOIProvider() *OverpassPOIProvider {
	return &OverpassPOIProvider{
		baseURL:    defaultOverpassBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
}

// NewOverpassPOIProviderWithBaseURL is used by tests to point at a local server.
func NewOverpassPOIProviderWithBaseURL(baseURL string) *OverpassPOIProvider {
	p := NewOverpassPOIProvider()
	p.baseURL = baseURL
	return p
}

var _ repository.POIProvider = (*OverpassPOIProvider)(nil)

type overpassElement struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// SearchNearby queries the checkpoint category set for the trip type. Results
// keep nodes that have a name or a tourism, natural or historic tag.
func (p *OverpassPOIProvider) SearchNearby(ctx context.Context, point model.LatLng, tripType string) ([]model.PointOfInterest, error) {
	elements, err := p.query(ctx, checkpointQuery(point, tripType))
	if err != nil {
		return nil, err
	}

	var pois []model.PointOfInterest
	for _, elem := range elements {
		if elem.Tags == nil {
			continue
		}
		if elem.Tags["name"] == "" && elem.Tags["tourism"] == "" && elem.Tags["natural"] == "" && elem.Tags["historic"] == "" {
			continue
		}
		name := elem.Tags["name"]
		if name == "" {
			name = "Unnamed Attraction"
		}
		pois = append(pois, model.PointOfInterest{
			ID:          fmt.Sprintf("r_%d_%d_%d", p.now().UnixMilli(), elem.ID, len(pois)),
			Name:        name,
			Type:        checkpointCategory(elem.Tags, tripType),
			Location:    []float64{elem.Lat, elem.Lon},
			Description: elem.Tags["description"],
		})
	}
	return pois, nil
}

// SearchDestination queries the destination category set. Unlike checkpoint
// results, destination nodes must be named.
func (p *OverpassPOIProvider) SearchDestination(ctx context.Context, point model.LatLng, tripType string) ([]model.PointOfInterest, error) {
	elements, err := p.query(ctx, destinationQuery(point, tripType))
	if err != nil {
		return nil, err
	}

	var pois []model.PointOfInterest
	for _, elem := range elements {
		if elem.Tags == nil || elem.Tags["name"] == "" {
			continue
		}
		pois = append(pois, model.PointOfInterest{
			ID:            fmt.Sprintf("d_%d_%d_%d", p.now().UnixMilli(), elem.ID, len(pois)),
			Name:          elem.Tags["name"],
			Type:          destinationCategory(elem.Tags, tripType),
			Location:      []float64{elem.Lat, elem.Lon},
			Description:   elem.Tags["description"],
			IsDestination: true,
		})
	}
	return pois, nil
}

func (p *OverpassPOIProvider) query(ctx context.Context, body string) ([]overpassElement, error) {
	params := url.Values{}
	params.Set("data", fmt.Sprintf("[out:json];(%s);out body;", body))
	reqURL := fmt.Sprintf("%s/api/interpreter?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build POI request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POI request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("POI API returned status: %s", resp.Status)
	}

	var apiResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse POI response: %w", err)
	}
	return apiResp.Elements, nil
}

// node emits a single Overpass node clause around the given point.
func node(filter string, radius int, pt model.LatLng) string {
	return fmt.Sprintf("node[%s](around:%d,%f,%f);", filter, radius, pt.Lat, pt.Lng)
}

func commonClauses(pt model.LatLng) []string {
	return []string{
		node(`"tourism"`, 10000, pt),
		node(`"historic"`, 10000, pt),
	}
}

func checkpointQuery(pt model.LatLng, tripType string) string {
	clauses := commonClauses(pt)
	switch tripType {
	case model.TripTypeHiking:
		clauses = append(clauses,
			node(`"natural"="peak"`, 15000, pt),
			node(`"natural"="spring"`, 10000, pt),
			node(`"natural"="water"`, 10000, pt),
			node(`"tourism"="viewpoint"`, 15000, pt),
			node(`"tourism"="wilderness_hut"`, 15000, pt),
			node(`"amenity"="shelter"`, 10000, pt),
			node(`"leisure"="nature_reserve"`, 15000, pt),
		)
	case model.TripTypeCycling:
		clauses = append(clauses,
			node(`"shop"="bicycle"`, 10000, pt),
			node(`"amenity"="bicycle_rental"`, 10000, pt),
			node(`"amenity"="bicycle_repair_station"`, 10000, pt),
			node(`"amenity"="cafe"`, 10000, pt),
			node(`"amenity"="drinking_water"`, 10000, pt),
			node(`"amenity"="shelter"`, 10000, pt),
			node(`"tourism"="picnic_site"`, 10000, pt),
		)
	default:
		clauses = append(clauses,
			node(`"amenity"="restaurant"`, 10000, pt),
			node(`"amenity"="cafe"`, 10000, pt),
			node(`"amenity"="hotel"`, 10000, pt),
			node(`"amenity"="fuel"`, 10000, pt),
			node(`"leisure"="park"`, 10000, pt),
		)
	}
	return strings.Join(clauses, "")
}

func destinationQuery(pt model.LatLng, tripType string) string {
	clauses := commonClauses(pt)
	switch tripType {
	case model.TripTypeHiking:
		clauses = append(clauses,
			node(`"natural"="peak"`, 15000, pt),
			node(`"tourism"="viewpoint"`, 15000, pt),
			node(`"amenity"="restaurant"`, 10000, pt),
			node(`"amenity"="cafe"`, 10000, pt),
		)
	case model.TripTypeCycling:
		clauses = append(clauses,
			node(`"amenity"="restaurant"`, 10000, pt),
			node(`"amenity"="cafe"`, 10000, pt),
			node(`"amenity"="hotel"`, 10000, pt),
			node(`"shop"="bicycle"`, 10000, pt),
		)
	default:
		clauses = append(clauses,
			node(`"amenity"="restaurant"`, 15000, pt),
			node(`"amenity"="cafe"`, 15000, pt),
			node(`"amenity"="hotel"`, 15000, pt),
		)
	}
	return strings.Join(clauses, "")
}

func checkpointCategory(tags map[string]string, tripType string) string {
	switch tripType {
	case model.TripTypeHiking:
		switch {
		case tags["natural"] == "peak":
			return "Mountain Peak"
		case tags["natural"] == "water":
			return "Water Source"
		case tags["natural"] == "spring":
			return "Spring"
		case tags["tourism"] == "viewpoint":
			return "Viewpoint"
		case tags["tourism"] == "wilderness_hut":
			return "Hut"
		case tags["amenity"] == "shelter":
			return "Shelter"
		case tags["leisure"] == "nature_reserve":
			return "Nature Reserve"
		case tags["tourism"] != "":
			return tags["tourism"]
		case tags["historic"] != "":
			return "Historic Site"
		}
	case model.TripTypeCycling:
		switch {
		case tags["shop"] == "bicycle":
			return "Bike Shop"
		case tags["amenity"] == "bicycle_rental":
			return "Bike Rental"
		case tags["amenity"] == "bicycle_repair_station":
			return "Bike Repair"
		case tags["amenity"] == "cafe":
			return "Cafe"
		case tags["amenity"] == "drinking_water":
			return "Water Source"
		case tags["amenity"] == "shelter":
			return "Rest Area"
		case tags["tourism"] == "picnic_site":
			return "Picnic Area"
		case tags["tourism"] != "":
			return tags["tourism"]
		case tags["historic"] != "":
			return "Historic Site"
		}
	default:
		switch {
		case tags["tourism"] != "":
			return tags["tourism"]
		case tags["historic"] != "":
			return "Historic Site"
		case tags["amenity"] == "restaurant":
			return "Restaurant"
		case tags["amenity"] == "cafe":
			return "Cafe"
		case tags["amenity"] == "hotel":
			return "Hotel"
		case tags["amenity"] == "fuel":
			return "Gas Station"
		case tags["leisure"] == "park":
			return "Park"
		}
	}
	return "Attraction"
}

func destinationCategory(tags map[string]string, tripType string) string {
	switch tripType {
	case model.TripTypeHiking:
		switch {
		case tags["natural"] == "peak":
			return "Mountain Peak"
		case tags["tourism"] == "viewpoint":
			return "Viewpoint"
		case tags["tourism"] != "":
			return tags["tourism"]
		case tags["historic"] != "":
			return "Historic Site"
		case tags["amenity"] == "restaurant":
			return "Restaurant"
		case tags["amenity"] == "cafe":
			return "Cafe"
		}
	case model.TripTypeCycling:
		switch {
		case tags["shop"] == "bicycle":
			return "Bike Shop"
		case tags["amenity"] == "restaurant":
			return "Restaurant"
		case tags["amenity"] == "cafe":
			return "Cafe"
		case tags["amenity"] == "hotel":
			return "Hotel"
		case tags["tourism"] != "":
			return tags["tourism"]
		case tags["historic"] != "":
			return "Historic Site"
		}
	default:
		switch {
		case tags["tourism"] != "":
			return tags["tourism"]
		case tags["historic"] != "":
			return "Historic Site"
		case tags["amenity"] == "restaurant":
			return "Restaurant"
		case tags["amenity"] == "cafe":
			return "Cafe"
		case tags["amenity"] == "hotel":
			return "Hotel"
		}
	}
	return "Attraction"
}
