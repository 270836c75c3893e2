package weather

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

const defaultOpenWeatherBaseURL = "https://api.openweathermap.org"

// OpenWeatherProvider fetches the 5-day/3-hour forecast from OpenWeatherMap.
type OpenWeatherProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenWeatherProvider(apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		apiKey:     apiKey,
		baseURL:    defaultOpenWeatherBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewOpenWeatherProviderWithBaseURL is used by tests to point at a local server.
func NewOpenWeatherProviderWithBaseURL(apiKey, baseURL string) *OpenWeatherProvider {
	p := NewOpenWeatherProvider(apiKey)
	p.baseURL = baseURL
	return p
}

var _ repository.WeatherProvider = (*OpenWeatherProvider)(nil)

// GetForecast requests the forecast for a coordinate in metric units.
func (p *OpenWeatherProvider) GetForecast(ctx context.Context, lat, lng float64) (*model.Forecast, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("appid", p.apiKey)
	params.Set("units", "metric")
	reqURL := fmt.Sprintf("%s/data/2.5/forecast?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status: %s", resp.Status)
	}

	var forecast model.Forecast
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}
	return &forecast, nil
}
