package photo

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"TripPlanner-App/internal/domain/model"
	"TripPlanner-App/internal/domain/repository"
)

const defaultUnsplashBaseURL = "https://api.unsplash.com"

// UnsplashProvider finds a representative trip image through the Unsplash
// search API. It walks an ordered cascade of queries from most to least
// specific and picks one of the top results at random. Without an access key
// it deterministically serves the static default for the trip type and never
// goes on the network.
type UnsplashProvider struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
	rng        *rand.Rand
}

func NewUnsplashProvider(accessKey string, rng *rand.Rand) *UnsplashProvider {
	return &UnsplashProvider{
		accessKey:  accessKey,
		baseURL:    defaultUnsplashBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		rng:        rng,
	}
}

// NewUnsplashProviderWithBaseURL is used by tests to point at a local server.
func NewUnsplashProviderWithBaseURL(accessKey, baseURL string, rng *rand.Rand) *UnsplashProvider {
	p := NewUnsplashProvider(accessKey, rng)
	p.baseURL = baseURL
	return p
}

var _ repository.PhotoProvider = (*UnsplashProvider)(nil)

type unsplashResult struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}

type unsplashSearchResponse struct {
	Results []unsplashResult `json:"results"`
}

// FindTripImage tries each candidate query in order and returns the first
// hit. Errors on individual queries are logged and skipped; a fully exhausted
// cascade falls back to the static default for the trip type.
func (p *UnsplashProvider) FindTripImage(ctx context.Context, query model.ImageQuery) string {
	if p.accessKey == "" {
		return model.DefaultTripImage(query.TripType)
	}

	for _, q := range buildQueries(query) {
		imageURL, err := p.search(ctx, q)
		if err != nil {
			logrus.Warnf("⚠️ Photo search failed for %q, trying next query: %v", q, err)
			continue
		}
		if imageURL != "" {
			logrus.Infof("📷 Trip image found for query %q", q)
			return imageURL
		}
	}

	logrus.Info("📷 No photo results, using the default trip image")
	return model.DefaultTripImage(query.TripType)
}

func (p *UnsplashProvider) search(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "5")
	params.Set("orientation", "landscape")
	params.Set("content_filter", "high")
	params.Set("order_by", "relevant")
	reqURL := fmt.Sprintf("%s/search/photos?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build photo request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+p.accessKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("photo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("photo API returned status: %s", resp.Status)
	}

	var apiResp unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to parse photo response: %w", err)
	}
	if len(apiResp.Results) == 0 {
		return "", nil
	}

	limit := len(apiResp.Results)
	if limit > 5 {
		limit = 5
	}
	return apiResp.Results[p.rng.Intn(limit)].URLs.Regular, nil
}

// buildQueries orders the candidate searches from most to least specific:
// place plus activity first, then place plus scenic terms, then bare places,
// then bare activity terms. Empty components and duplicates are skipped.
func buildQueries(query model.ImageQuery) []string {
	activities := model.ActivityTerms(query.TripType)

	var queries []string
	seen := make(map[string]struct{})
	add := func(q string) {
		if q == "" {
			return
		}
		if _, ok := seen[q]; ok {
			return
		}
		seen[q] = struct{}{}
		queries = append(queries, q)
	}
	combine := func(place, term string) {
		if place != "" && term != "" {
			add(place + " " + term)
		}
	}

	for _, activity := range activities {
		combine(query.Location, activity)
	}
	for _, activity := range activities {
		combine(query.City, activity)
	}
	for _, activity := range activities {
		combine(query.Country, activity)
	}
	for _, scenic := range model.ScenicTerms {
		combine(query.Location, scenic)
	}
	add(query.Location)
	add(query.City)
	add(query.Country)
	for _, activity := range activities {
		add(activity)
	}
	return queries
}
