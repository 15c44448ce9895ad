package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"restro-api/internal/keys"
)

type CuisineService struct {
	store Store
}

func NewCuisineService(store Store) *CuisineService {
	return &CuisineService{store: store}
}

// ListCuisines returns every cuisine name ever used, unordered.
func (s *CuisineService) ListCuisines(ctx context.Context) ([]string, error) {
	return s.store.SMembers(ctx, keys.Cuisines())
}

// ListRestaurantNames expands the per-cuisine id set into restaurant names.
// Order follows the set iteration and is not stable.
func (s *CuisineService) ListRestaurantNames(ctx context.Context, cuisine string) ([]string, error) {
	ids, err := s.store.SMembers(ctx, keys.Cuisine(cuisine))
	if err != nil {
		return nil, err
	}

	names := make([]string, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			name, err := s.store.HGet(ctx, keys.Restaurant(id), "name")
			if err != nil {
				return err
			}
			names[i] = name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return names, nil
}
