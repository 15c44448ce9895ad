package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// checkRestaurant confirms the restaurant hash exists, writing the 404
// response itself when it does not. Returns whether the request may proceed.
func (h *Handler) checkRestaurant(w http.ResponseWriter, r *http.Request) bool {
	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, http.StatusNotFound, "Restaurant Id not found")
		return false
	}

	exists, err := h.Restaurants.Exists(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return false
	}
	if !exists {
		respondError(w, http.StatusNotFound, "Restaurant not found")
		return false
	}

	return true
}

// requireRestaurant guards bodyless routes nested under a restaurant id.
// Body-bearing handlers validate first and call checkRestaurant themselves.
func (h *Handler) requireRestaurant(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.checkRestaurant(w, r) {
			return
		}
		next(w, r)
	}
}
