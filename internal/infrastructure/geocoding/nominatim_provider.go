package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"TripPlanner-App/internal/domain/model"
	"TripPlanner-App/internal/domain/repository"
)

const defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

// NominatimProvider resolves place names through the OpenStreetMap Nominatim
// search API. Only the first match is used.
type NominatimProvider struct {
	baseURL    string
	httpClient *http.Client
}

func NewNominatimProvider() *NominatimProvider {
	return &NominatimProvider{
		baseURL:    defaultNominatimBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewNominatimProviderWithBaseURL is used by tests to point at a local server.
func NewNominatimProviderWithBaseURL(baseURL string) *NominatimProvider {
	p := NewNominatimProvider()
	p.baseURL = baseURL
	return p
}

var _ repository.GeocodingProvider = (*NominatimProvider)(nil)

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves the query to its single best-match coordinates. City and
// country are derived from the query text and the display name rather than
// the provider's structured address fields.
func (p *NominatimProvider) Geocode(ctx context.Context, query string) (*model.ResolvedLocation, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	reqURL := fmt.Sprintf("%s/search?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", "TripPlanner-App/1.0")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status: %s", resp.Status)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to parse geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no results found for %q", query)
	}

	first := results[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocoding response: %w", err)
	}
	lng, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocoding response: %w", err)
	}

	return &model.ResolvedLocation{
		Name:        first.DisplayName,
		Query:       query,
		City:        model.CityFromQuery(query),
		Country:     model.CountryFromDisplayName(first.DisplayName),
		Coordinates: []float64{lat, lng},
	}, nil
}
