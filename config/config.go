package config

import "os"

type Config struct {
	Port          string
	RedisAddr     string
	WeatherAPIURL string
	WeatherAPIKey string
	KafkaBroker   string
	BaseURL       string
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		RedisAddr:     getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
		WeatherAPIURL: getenv("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5/weather"),
		WeatherAPIKey: os.Getenv("WEATHER_API_KEY"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		BaseURL:       getenv("BASE_URL", "http://localhost:8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
