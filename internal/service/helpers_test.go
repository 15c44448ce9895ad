package service_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"restro-api/internal/domain"
	"restro-api/internal/service"
	"restro-api/internal/storage"
)

func newTestStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewStore(client), mr
}

func createRestaurant(t *testing.T, store *storage.Store, name string, cuisines ...string) domain.Restaurant {
	t.Helper()
	svc := service.NewRestaurantService(store)
	restaurant, err := svc.Create(context.Background(), domain.CreateRestaurantInput{
		Name:     name,
		Location: "10.75,59.91",
		Cuisines: cuisines,
	})
	require.NoError(t, err)
	return restaurant
}
