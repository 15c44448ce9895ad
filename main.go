package main

import (
	"log"

	"github.com/joho/godotenv"

	"restro-api/config"
	httpapi "restro-api/internal/api/http"
	"restro-api/internal/events"
	"restro-api/internal/service"
	"restro-api/internal/storage"
	"restro-api/internal/weather"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	store := storage.NewStore(storage.Client(cfg.RedisAddr))

	var publisher service.ReviewPublisher
	if cfg.KafkaBroker != "" {
		kafkaPublisher := events.NewPublisher(cfg.KafkaBroker)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	handler := httpapi.NewHandler(
		service.NewRestaurantService(store),
		service.NewReviewService(store, publisher),
		service.NewCuisineService(store),
		service.NewWeatherService(store, weather.NewClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey)),
		service.DefaultQRGenerator{BaseURL: cfg.BaseURL},
	)

	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}
