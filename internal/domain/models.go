package domain

// Restaurant is the base record stored in the restaurant hash. ViewCount,
// TotalStars and AvgStars appear on the hash once reads and reviews touch it.
type Restaurant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// CreateRestaurantInput is the create-restaurant request body.
type CreateRestaurantInput struct {
	Name     string   `json:"name" validate:"required"`
	Location string   `json:"location" validate:"required"`
	Cuisines []string `json:"cuisines" validate:"required,min=1,dive,required"`
}

// Review is a single review record as stored in its hash.
type Review struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurantId"`
	Rating       float64 `json:"rating"`
	Review       string  `json:"review"`
	Timestamp    int64   `json:"timestamp"`
}

// CreateReviewInput is the create-review request body.
type CreateReviewInput struct {
	Rating float64 `json:"rating" validate:"required,min=1,max=5"`
	Review string  `json:"review" validate:"required"`
}

// ReviewCreatedEvent is emitted after a review is persisted.
type ReviewCreatedEvent struct {
	Type         string  `json:"type"`
	ReviewID     string  `json:"review_id"`
	RestaurantID string  `json:"restaurant_id"`
	Rating       float64 `json:"rating"`
	Timestamp    int64   `json:"timestamp"`
}
