package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func (h *Handler) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/restaurants", h.listRestaurants).Methods("GET")
	api.HandleFunc("/restaurants", h.createRestaurant).Methods("POST")
	api.HandleFunc("/restaurants/{id}", h.requireRestaurant(h.getRestaurant)).Methods("GET")
	api.HandleFunc("/restaurants/{id}/details", h.setRestaurantDetails).Methods("POST")
	api.HandleFunc("/restaurants/{id}/details", h.requireRestaurant(h.getRestaurantDetails)).Methods("GET")
	api.HandleFunc("/restaurants/{id}/weather", h.requireRestaurant(h.getWeather)).Methods("GET")
	api.HandleFunc("/restaurants/{id}/qr", h.requireRestaurant(h.getRestaurantQR)).Methods("GET")
	api.HandleFunc("/restaurants/{id}/reviews", h.createReview).Methods("POST")
	api.HandleFunc("/restaurants/{id}/reviews", h.requireRestaurant(h.listReviews)).Methods("GET")
	api.HandleFunc("/restaurants/{id}/reviews/{reviewId}", h.requireRestaurant(h.deleteReview)).Methods("DELETE")
	api.HandleFunc("/cuisines", h.listCuisines).Methods("GET")
	api.HandleFunc("/cuisines/{cuisine}", h.listRestaurantsByCuisine).Methods("GET")
}

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Restro API starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
