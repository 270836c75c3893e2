package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"TripPlanner-App/internal/config"
	"TripPlanner-App/internal/domain/service"
	"TripPlanner-App/internal/handler"
	"TripPlanner-App/internal/infrastructure/directions"
	"TripPlanner-App/internal/infrastructure/firestore"
	"TripPlanner-App/internal/infrastructure/geocoding"
	"TripPlanner-App/internal/infrastructure/overpass"
	"TripPlanner-App/internal/infrastructure/photo"
	"TripPlanner-App/internal/infrastructure/weather"
	"TripPlanner-App/internal/middleware"
	"TripPlanner-App/internal/repository"
	"TripPlanner-App/internal/usecase"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		logrus.Warn("⚠️ .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("❌ Configuration error: %v", err)
	}
	if cfg.UnsplashAccessKey == "" {
		logrus.Warn("⚠️ UNSPLASH_ACCESS_KEY not set, trip images will use static defaults")
	}

	ctx := context.Background()
	fsClient, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentials, cfg.CloudRun)
	if err != nil {
		logrus.Fatalf("❌ Failed to initialize Firestore: %v", err)
	}
	defer fsClient.Close()

	// One seeded source shared by the route and image pickers.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	geocoder := geocoding.NewNominatimProvider()
	directionsProvider := directions.NewORSDirectionsProvider(cfg.ORSAPIKey, rng)
	weatherProvider := weather.NewOpenWeatherProvider(cfg.OpenWeatherAPIKey)
	poiProvider := overpass.NewOverpassPOIProvider()
	photoProvider := photo.NewUnsplashProvider(cfg.UnsplashAccessKey, rng)

	poiDiscovery := service.NewPOIDiscoveryService(poiProvider)
	planner := service.NewTripPlannerService(geocoder, directionsProvider, weatherProvider, poiDiscovery, photoProvider)

	tripRepo := repository.NewFirestoreTripRepository(fsClient.GetClient())
	planningUseCase := usecase.NewTripPlanningUseCase(planner)
	tripsUseCase := usecase.NewTripsUseCase(tripRepo, weatherProvider)

	planHandler := handler.NewPlanHandler(planningUseCase)
	tripsHandler := handler.NewTripsHandler(tripsUseCase)
	healthHandler := handler.NewHealthHandler()

	router := gin.Default()
	router.GET("/api/health", healthHandler.GetHealth)

	api := router.Group("/api", middleware.AuthRequired(cfg.JWTSecret))
	{
		api.POST("/trips/plan", planHandler.PostPlanTrip)
		api.POST("/trips", tripsHandler.PostTrip)
		api.GET("/trips", tripsHandler.GetTrips)
		api.GET("/trips/:id", tripsHandler.GetTrip)
		api.PATCH("/trips/:id", tripsHandler.PatchTrip)
		api.DELETE("/trips/:id", tripsHandler.DeleteTrip)
	}

	logrus.Infof("🚀 TripPlanner-App server starting on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("❌ Server exited: %v", err)
	}
}
