package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/forecast", r.URL.Path)
		assert.Equal(t, "48.8566", r.URL.Query().Get("lat"))
		assert.Equal(t, "2.3522", r.URL.Query().Get("lon"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		fmt.Fprint(w, `{
			"list": [
				{"dt": 1767225600, "main": {"temp": 4.2, "humidity": 81}, "weather": [{"main": "Clouds", "description": "overcast clouds", "icon": "04d"}], "wind": {"speed": 3.1}}
			],
			"city": {"name": "Paris", "country": "FR"}
		}`)
	}))
	defer server.Close()

	provider := NewOpenWeatherProviderWithBaseURL("test-key", server.URL)
	forecast, err := provider.GetForecast(context.Background(), 48.8566, 2.3522)
	require.NoError(t, err)

	require.Len(t, forecast.List, 1)
	assert.Equal(t, int64(1767225600), forecast.List[0].Dt)
	assert.Equal(t, 4.2, forecast.List[0].Main.Temp)
	assert.Equal(t, "Clouds", forecast.List[0].Weather[0].Main)
	assert.Equal(t, "Paris", forecast.City.Name)
}

func TestGetForecast_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid key", http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := NewOpenWeatherProviderWithBaseURL("bad-key", server.URL)
	_, err := provider.GetForecast(context.Background(), 48.8566, 2.3522)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}
