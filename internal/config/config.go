package config

import (
	"fmt"
	"os"
)

// Config holds everything resolved from the environment at process start.
// Provider keys are read once here; nothing else reads the environment.
type Config struct {
	Port                 string
	ORSAPIKey            string
	OpenWeatherAPIKey    string
	UnsplashAccessKey    string // optional: absence selects the static default images
	FirestoreProjectID   string
	FirestoreCredentials string // service account key file for local runs
	CloudRun             bool   // Cloud Run sets K_SERVICE; default credentials apply there
	JWTSecret            string
}

// Load resolves the configuration. ORS, OpenWeather, Firestore and the JWT
// secret are required; the Unsplash key is optional.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 os.Getenv("PORT"),
		ORSAPIKey:            os.Getenv("ORS_API_KEY"),
		OpenWeatherAPIKey:    os.Getenv("OPENWEATHER_API_KEY"),
		UnsplashAccessKey:    os.Getenv("UNSPLASH_ACCESS_KEY"),
		FirestoreProjectID:   os.Getenv("FIRESTORE_PROJECT_ID"),
		FirestoreCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		CloudRun:             os.Getenv("K_SERVICE") != "",
		JWTSecret:            os.Getenv("JWT_SECRET"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.FirestoreCredentials == "" {
		cfg.FirestoreCredentials = "tripplanner-firestore-key.json"
	}

	var missing []string
	if cfg.ORSAPIKey == "" {
		missing = append(missing, "ORS_API_KEY")
	}
	if cfg.OpenWeatherAPIKey == "" {
		missing = append(missing, "OPENWEATHER_API_KEY")
	}
	if cfg.FirestoreProjectID == "" {
		missing = append(missing, "FIRESTORE_PROJECT_ID")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %v", missing)
	}
	return cfg, nil
}
