package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) listCuisines(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.Cuisines.ListCuisines(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, cuisines, "")
}

func (h *Handler) listRestaurantsByCuisine(w http.ResponseWriter, r *http.Request) {
	cuisine := mux.Vars(r)["cuisine"]

	names, err := h.Cuisines.ListRestaurantNames(r.Context(), cuisine)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, names, "")
}
