package directions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-polyline"

	"TripPlanner-App/internal/domain/model"
	"TripPlanner-App/internal/domain/repository"
)

const defaultORSBaseURL = "https://api.openrouteservice.org"

// ORSDirectionsProvider plans routes through the OpenRouteService directions
// API. When the API offers several candidates, one is picked uniformly at
// random so repeated requests for the same trip vary.
type ORSDirectionsProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	rng        *rand.Rand
}

func NewORSDirectionsProvider(apiKey string, rng *rand.Rand) *ORSDirectionsProvider {
	return &ORSDirectionsProvider{
		apiKey:     apiKey,
		baseURL:    defaultORSBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		rng:        rng,
	}
}

// NewORSDirectionsProviderWithBaseURL is used by tests to point at a local server.
func NewORSDirectionsProviderWithBaseURL(apiKey, baseURL string, rng *rand.Rand) *ORSDirectionsProvider {
	p := NewORSDirectionsProvider(apiKey, rng)
	p.baseURL = baseURL
	return p
}

var _ repository.DirectionsProvider = (*ORSDirectionsProvider)(nil)

type orsRoundTripOptions struct {
	Length float64 `json:"length"` // meters
	Points int     `json:"points"`
	Seed   int     `json:"seed"`
}

type orsOptions struct {
	RoundTrip *orsRoundTripOptions `json:"round_trip,omitempty"`
}

type orsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"` // [lng, lat]
	Preference   string      `json:"preference"`
	Instructions bool        `json:"instructions"`
	Options      *orsOptions `json:"options,omitempty"`
}

type orsResponse struct {
	Routes []struct {
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// PlanRoute requests directions for the given profile. Circular requests send
// a single coordinate plus round-trip options; point-to-point requests send
// both endpoints. The encoded geometry of the chosen candidate is decoded
// into route points.
func (p *ORSDirectionsProvider) PlanRoute(ctx context.Context, req *model.DirectionsRequest) (*model.DirectionsResult, error) {
	body := orsRequest{
		Preference:   req.Preference,
		Instructions: false,
	}
	if req.Circular {
		body.Coordinates = [][]float64{{req.Start.Lng, req.Start.Lat}}
		body.Options = &orsOptions{RoundTrip: &orsRoundTripOptions{
			Length: req.LoopLengthMeters,
			Points: 3,
			Seed:   p.rng.Intn(100),
		}}
	} else {
		body.Coordinates = [][]float64{
			{req.Start.Lng, req.Start.Lat},
			{req.End.Lng, req.End.Lat},
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode directions request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v2/directions/%s", p.baseURL, req.Profile)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build directions request: %w", err)
	}
	httpReq.Header.Set("Authorization", p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directions API returned status: %s", resp.Status)
	}

	var apiResp orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse directions response: %w", err)
	}
	if len(apiResp.Routes) == 0 {
		return nil, fmt.Errorf("no route found between the given locations")
	}

	idx := p.rng.Intn(len(apiResp.Routes))
	if len(apiResp.Routes) > 1 {
		logrus.Infof("🎲 %d route candidates returned, using #%d", len(apiResp.Routes), idx+1)
	}

	coords, _, err := polyline.DecodeCoords([]byte(apiResp.Routes[idx].Geometry))
	if err != nil {
		return nil, fmt.Errorf("failed to decode route geometry: %w", err)
	}

	points := make([]model.LatLng, len(coords))
	for i, c := range coords {
		points[i] = model.LatLng{Lat: c[0], Lng: c[1]}
	}

	return &model.DirectionsResult{
		Points:           points,
		AlternativeCount: len(apiResp.Routes),
	}, nil
}
