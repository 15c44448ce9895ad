package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"restro-api/internal/domain"
	"restro-api/internal/keys"
)

var ErrReviewNotFound = errors.New("review not found for this restaurant")

type ReviewService struct {
	store     Store
	publisher ReviewPublisher
	now       func() time.Time
}

func NewReviewService(store Store, publisher ReviewPublisher) *ReviewService {
	return &ReviewService{
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

// round1 rounds to one decimal place, the precision avgStars is kept at.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Create persists the review and recomputes the restaurant's average rating.
// The list push reports the new list length, which is the post-push review
// count. The totalStars increment and the average recompute are separate
// round trips, so concurrent reviews on the same restaurant can leave a
// stale avgStars behind.
func (s *ReviewService) Create(ctx context.Context, restaurantID string, input domain.CreateReviewInput) (domain.Review, error) {
	review := domain.Review{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Rating:       input.Rating,
		Review:       input.Review,
		Timestamp:    s.now().UnixMilli(),
	}

	var (
		reviewCount int64
		totalStars  float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reviewCount, err = s.store.LPush(gctx, keys.Reviews(restaurantID), review.ID)
		return err
	})
	g.Go(func() error {
		return s.store.HSet(gctx, keys.ReviewDetails(review.ID), map[string]any{
			"id":           review.ID,
			"restaurantId": review.RestaurantID,
			"rating":       strconv.FormatFloat(review.Rating, 'f', -1, 64),
			"review":       review.Review,
			"timestamp":    strconv.FormatInt(review.Timestamp, 10),
		})
	})
	g.Go(func() error {
		var err error
		totalStars, err = s.store.HIncrByFloat(gctx, keys.Restaurant(restaurantID), "totalStars", review.Rating)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Review{}, fmt.Errorf("create review: %w", err)
	}

	average := round1(totalStars / float64(reviewCount))

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.store.ZAdd(gctx, keys.RatingIndex(), restaurantID, average)
	})
	g.Go(func() error {
		return s.store.HSet(gctx, keys.Restaurant(restaurantID), map[string]any{
			"avgStars": strconv.FormatFloat(average, 'f', -1, 64),
		})
	})
	if err := g.Wait(); err != nil {
		return domain.Review{}, fmt.Errorf("update rating: %w", err)
	}

	if s.publisher != nil {
		event := domain.ReviewCreatedEvent{
			Type:         "review_created",
			ReviewID:     review.ID,
			RestaurantID: restaurantID,
			Rating:       review.Rating,
			Timestamp:    review.Timestamp,
		}
		if err := s.publisher.PublishReviewCreated(ctx, event); err != nil {
			log.Printf("Warning: failed to publish review event: %v", err)
		}
	}

	return review, nil
}

// List pages through the review id list, which is newest-first by
// construction, and expands each id into its full hash.
func (s *ReviewService) List(ctx context.Context, restaurantID string, page, limit int) ([]map[string]string, error) {
	start, stop := window(page, limit)

	ids, err := s.store.LRange(ctx, keys.Reviews(restaurantID), start, stop)
	if err != nil {
		return nil, err
	}

	reviews := make([]map[string]string, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			hash, err := s.store.HGetAll(ctx, keys.ReviewDetails(id))
			if err != nil {
				return err
			}
			reviews[i] = hash
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reviews, nil
}

// Delete removes the review from both the list and the hash store. Aggregate
// rating fields are left as-is; deletion does not recompute them.
func (s *ReviewService) Delete(ctx context.Context, restaurantID, reviewID string) error {
	var (
		removedFromList int64
		removedHash     int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		removedFromList, err = s.store.LRem(ctx, keys.Reviews(restaurantID), reviewID)
		return err
	})
	g.Go(func() error {
		var err error
		removedHash, err = s.store.Del(ctx, keys.ReviewDetails(reviewID))
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	if removedFromList == 0 && removedHash == 0 {
		return ErrReviewNotFound
	}
	return nil
}
