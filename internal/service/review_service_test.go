package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restro-api/internal/domain"
	"restro-api/internal/keys"
	"restro-api/internal/service"
)

type capturingPublisher struct {
	events []domain.ReviewCreatedEvent
}

func (p *capturingPublisher) PublishReviewCreated(_ context.Context, event domain.ReviewCreatedEvent) error {
	p.events = append(p.events, event)
	return nil
}

func TestReviewService_CreateUpdatesAverage(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	svc := service.NewReviewService(store, nil)

	restaurant := createRestaurant(t, store, "Rated", "thai")

	for _, rating := range []float64{5, 4, 4} {
		review, err := svc.Create(ctx, restaurant.ID, domain.CreateReviewInput{
			Rating: rating,
			Review: "solid meal",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, review.ID)
		assert.Equal(t, restaurant.ID, review.RestaurantID)
		assert.NotZero(t, review.Timestamp)
	}

	// (5+4+4)/3 = 4.333..., kept at one decimal
	avg, err := store.HGet(ctx, keys.Restaurant(restaurant.ID), "avgStars")
	require.NoError(t, err)
	assert.Equal(t, "4.3", avg)

	score, err := store.Client.ZScore(ctx, keys.RatingIndex(), restaurant.ID).Result()
	require.NoError(t, err)
	assert.Equal(t, 4.3, score)

	total, err := store.HGet(ctx, keys.Restaurant(restaurant.ID), "totalStars")
	require.NoError(t, err)
	assert.Equal(t, "13", total)
}

func TestReviewService_CreatePublishesEvent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	publisher := &capturingPublisher{}
	svc := service.NewReviewService(store, publisher)

	restaurant := createRestaurant(t, store, "Published", "thai")

	review, err := svc.Create(ctx, restaurant.ID, domain.CreateReviewInput{Rating: 5, Review: "great"})
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "review_created", publisher.events[0].Type)
	assert.Equal(t, review.ID, publisher.events[0].ReviewID)
	assert.Equal(t, restaurant.ID, publisher.events[0].RestaurantID)
}

func TestReviewService_ListNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	svc := service.NewReviewService(store, nil)

	restaurant := createRestaurant(t, store, "Listed", "thai")

	var ids []string
	for _, text := range []string{"first", "second", "third"} {
		review, err := svc.Create(ctx, restaurant.ID, domain.CreateReviewInput{Rating: 4, Review: text})
		require.NoError(t, err)
		ids = append(ids, review.ID)
	}

	reviews, err := svc.List(ctx, restaurant.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, ids[2], reviews[0]["id"])
	assert.Equal(t, "third", reviews[0]["review"])
	assert.Equal(t, ids[0], reviews[2]["id"])

	page2, err := svc.List(ctx, restaurant.ID, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, page2)
}

func TestReviewService_ListPaginationWindow(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	svc := service.NewReviewService(store, nil)

	restaurant := createRestaurant(t, store, "Pages", "thai")

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, restaurant.ID, domain.CreateReviewInput{Rating: 3, Review: "meh"})
		require.NoError(t, err)
	}

	page1, err := svc.List(ctx, restaurant.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := svc.List(ctx, restaurant.ID, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

func TestReviewService_DeleteRemovesListAndHash(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	svc := service.NewReviewService(store, nil)

	restaurant := createRestaurant(t, store, "Deletable", "thai")

	review, err := svc.Create(ctx, restaurant.ID, domain.CreateReviewInput{Rating: 2, Review: "bad"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, restaurant.ID, review.ID))

	remaining, err := svc.List(ctx, restaurant.ID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	exists, err := store.Exists(ctx, keys.ReviewDetails(review.ID))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReviewService_DeleteMissingReview(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	svc := service.NewReviewService(store, nil)

	restaurant := createRestaurant(t, store, "Empty", "thai")

	err := svc.Delete(ctx, restaurant.ID, "no-such-review")
	assert.ErrorIs(t, err, service.ErrReviewNotFound)
}

func TestReviewService_DeleteDoesNotRecomputeAggregates(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	svc := service.NewReviewService(store, nil)

	restaurant := createRestaurant(t, store, "Stale", "thai")

	review, err := svc.Create(ctx, restaurant.ID, domain.CreateReviewInput{Rating: 5, Review: "top"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, restaurant.ID, review.ID))

	avg, err := store.HGet(ctx, keys.Restaurant(restaurant.ID), "avgStars")
	require.NoError(t, err)
	assert.Equal(t, "5", avg, "aggregates are intentionally left stale after delete")
}
