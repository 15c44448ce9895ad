package service

import (
	"context"
	"encoding/json"
	"time"

	"restro-api/internal/domain"
)

// Store is the slice of the key-value store the services are built on.
// Implemented by storage.Store; narrowed here so tests can substitute pieces.
type Store interface {
	HSet(ctx context.Context, key string, fields map[string]any) error
	HGet(ctx context.Context, key, field string) (string, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error)
	HIncrByFloat(ctx context.Context, key, field string, incr float64) (float64, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
	ZAdd(ctx context.Context, key, member string, score float64) error
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LPush(ctx context.Context, key, value string) (int64, error)
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LRem(ctx context.Context, key, value string) (int64, error)
	Del(ctx context.Context, key string) (int64, error)
	Get(ctx context.Context, key string) (string, error)
	SetEx(ctx context.Context, key, value string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	SetDocument(ctx context.Context, key string, doc any) error
	GetDocument(ctx context.Context, key string) (json.RawMessage, error)
}

// ReviewPublisher emits review events to an external broker. Optional.
type ReviewPublisher interface {
	PublishReviewCreated(ctx context.Context, event domain.ReviewCreatedEvent) error
}

// WeatherFetcher is the external weather collaborator.
type WeatherFetcher interface {
	Fetch(ctx context.Context, lat, lon string) ([]byte, error)
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, input domain.CreateRestaurantInput) (domain.Restaurant, error)
	List(ctx context.Context, page, limit int) ([]map[string]string, error)
	Get(ctx context.Context, id string) (map[string]any, error)
	Exists(ctx context.Context, id string) (bool, error)
	SetDetails(ctx context.Context, id string, details map[string]any) error
	GetDetails(ctx context.Context, id string) (json.RawMessage, error)
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, restaurantID string, input domain.CreateReviewInput) (domain.Review, error)
	List(ctx context.Context, restaurantID string, page, limit int) ([]map[string]string, error)
	Delete(ctx context.Context, restaurantID, reviewID string) error
}

type CuisineServiceInterface interface {
	ListCuisines(ctx context.Context) ([]string, error)
	ListRestaurantNames(ctx context.Context, cuisine string) ([]string, error)
}

type WeatherServiceInterface interface {
	Get(ctx context.Context, restaurantID string) (json.RawMessage, error)
}
