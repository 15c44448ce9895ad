package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"restro-api/internal/keys"
)

var (
	ErrNoCoordinates = errors.New("restaurant has no stored coordinates")
	ErrWeatherFetch  = errors.New("weather upstream fetch failed")
)

const weatherCacheTTL = time.Hour

type WeatherService struct {
	store   Store
	fetcher WeatherFetcher
}

func NewWeatherService(store Store, fetcher WeatherFetcher) *WeatherService {
	return &WeatherService{store: store, fetcher: fetcher}
}

// Get serves the cached payload when present; on a miss it resolves the
// restaurant's coordinates, calls the upstream, and caches the raw body for
// an hour. A cache hit never reaches the upstream.
func (s *WeatherService) Get(ctx context.Context, restaurantID string) (json.RawMessage, error) {
	cached, err := s.store.Get(ctx, keys.Weather(restaurantID))
	if err != nil {
		return nil, err
	}
	if cached != "" {
		return json.RawMessage(cached), nil
	}

	location, err := s.store.HGet(ctx, keys.Restaurant(restaurantID), "location")
	if err != nil {
		return nil, err
	}

	// location is stored as "longitude,latitude"
	lon, lat, ok := strings.Cut(location, ",")
	if !ok || lon == "" || lat == "" {
		return nil, ErrNoCoordinates
	}

	body, err := s.fetcher.Fetch(ctx, lat, lon)
	if err != nil {
		return nil, ErrWeatherFetch
	}

	if err := s.store.SetEx(ctx, keys.Weather(restaurantID), string(body), weatherCacheTTL); err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}
