package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"restro-api/internal/domain"
)

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateReviewInput
	if msg := decodeAndValidate(r, &input); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if !h.checkRestaurant(w, r) {
		return
	}
	id := mux.Vars(r)["id"]

	review, err := h.Reviews.Create(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, review, "Added new review")
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	page, limit := parsePagination(r)

	reviews, err := h.Reviews.List(r.Context(), id, page, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, reviews, "")
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	reviewID := vars["reviewId"]

	if err := h.Reviews.Delete(r.Context(), id, reviewID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, reviewID, "Review deleted")
}
