package keys

import "strings"

const prefix = "restro"

// Key joins the given segments under the application namespace.
func Key(segments ...string) string {
	return prefix + ":" + strings.Join(segments, ":")
}

// Restaurant is the hash holding a restaurant's base fields.
func Restaurant(id string) string { return Key("restaurants", id) }

// RatingIndex is the sorted set of restaurant ids scored by average rating.
func RatingIndex() string { return Key("restaurants_by_rating") }

// Cuisines is the global set of all cuisine names ever used.
func Cuisines() string { return Key("cuisines") }

// Cuisine is the set of restaurant ids serving the named cuisine.
func Cuisine(name string) string { return Key("cuisines", name) }

// RestaurantCuisines is the set of cuisine names served by a restaurant.
func RestaurantCuisines(id string) string { return Key("restaurant_cuisines", id) }

// Reviews is the list of review ids for a restaurant, newest first.
func Reviews(restaurantID string) string { return Key("reviews", restaurantID) }

// ReviewDetails is the hash holding one review record.
func ReviewDetails(reviewID string) string { return Key("review_details", reviewID) }

// RestaurantDetails is the JSON document of free-form restaurant details.
func RestaurantDetails(id string) string { return Key("restaurant_details", id) }

// Weather is the string key caching the upstream weather payload.
func Weather(restaurantID string) string { return Key("weather", restaurantID) }
