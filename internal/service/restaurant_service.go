package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"restro-api/internal/domain"
	"restro-api/internal/keys"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// window converts 1-based page/limit into the inclusive index range used by
// LRANGE and ZREVRANGE. Out-of-range inputs fall back to the defaults.
func window(page, limit int) (start, stop int64) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	start = int64(page-1) * int64(limit)
	stop = start + int64(limit) - 1
	return start, stop
}

type RestaurantService struct {
	store Store
}

func NewRestaurantService(store Store) *RestaurantService {
	return &RestaurantService{store: store}
}

// Create writes the restaurant hash, the cuisine associations and the rating
// index entry as one concurrent batch. There is no rollback: a failed
// sub-operation surfaces as an error and leaves the completed siblings behind.
func (s *RestaurantService) Create(ctx context.Context, input domain.CreateRestaurantInput) (domain.Restaurant, error) {
	restaurant := domain.Restaurant{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Location: input.Location,
	}

	g, ctx := errgroup.WithContext(ctx)

	for _, cuisine := range input.Cuisines {
		cuisine := cuisine
		g.Go(func() error {
			return s.store.SAdd(ctx, keys.Cuisines(), cuisine)
		})
		g.Go(func() error {
			return s.store.SAdd(ctx, keys.Cuisine(cuisine), restaurant.ID)
		})
		g.Go(func() error {
			return s.store.SAdd(ctx, keys.RestaurantCuisines(restaurant.ID), cuisine)
		})
	}

	g.Go(func() error {
		return s.store.HSet(ctx, keys.Restaurant(restaurant.ID), map[string]any{
			"id":       restaurant.ID,
			"name":     restaurant.Name,
			"location": restaurant.Location,
		})
	})
	g.Go(func() error {
		return s.store.ZAdd(ctx, keys.RatingIndex(), restaurant.ID, 0)
	})

	if err := g.Wait(); err != nil {
		return domain.Restaurant{}, fmt.Errorf("create restaurant: %w", err)
	}

	return restaurant, nil
}

// List pages through the rating index in descending score order and expands
// each id into its full hash. Order follows the index.
func (s *RestaurantService) List(ctx context.Context, page, limit int) ([]map[string]string, error) {
	start, stop := window(page, limit)

	ids, err := s.store.ZRevRange(ctx, keys.RatingIndex(), start, stop)
	if err != nil {
		return nil, err
	}

	restaurants := make([]map[string]string, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			hash, err := s.store.HGetAll(ctx, keys.Restaurant(id))
			if err != nil {
				return err
			}
			restaurants[i] = hash
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return restaurants, nil
}

// Get returns the restaurant hash merged with its cuisine set. Every call
// bumps viewCount, repeated reads inflate the counter.
func (s *RestaurantService) Get(ctx context.Context, id string) (map[string]any, error) {
	var (
		hash     map[string]string
		cuisines []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.store.HIncrBy(ctx, keys.Restaurant(id), "viewCount", 1)
		return err
	})
	g.Go(func() error {
		var err error
		hash, err = s.store.HGetAll(ctx, keys.Restaurant(id))
		return err
	})
	g.Go(func() error {
		var err error
		cuisines, err = s.store.SMembers(ctx, keys.RestaurantCuisines(id))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(map[string]any, len(hash)+1)
	for field, value := range hash {
		result[field] = value
	}
	result["cuisines"] = cuisines
	return result, nil
}

func (s *RestaurantService) Exists(ctx context.Context, id string) (bool, error) {
	return s.store.Exists(ctx, keys.Restaurant(id))
}

// SetDetails overwrites the whole details document. No partial merge.
func (s *RestaurantService) SetDetails(ctx context.Context, id string, details map[string]any) error {
	return s.store.SetDocument(ctx, keys.RestaurantDetails(id), details)
}

func (s *RestaurantService) GetDetails(ctx context.Context, id string) (json.RawMessage, error) {
	return s.store.GetDocument(ctx, keys.RestaurantDetails(id))
}
