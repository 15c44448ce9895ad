package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"restro-api/internal/service"
)

type successEnvelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func respondSuccess(w http.ResponseWriter, code int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(successEnvelope{Status: "success", Data: data, Message: message})
}

func respondError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorEnvelope{Status: "error", Message: message})
}

// respondServiceError translates known service conditions to their status
// codes and client-facing messages; everything else is a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrReviewNotFound):
		respondError(w, http.StatusNotFound, "Review not found")
	case errors.Is(err, service.ErrNoCoordinates):
		respondError(w, http.StatusNotFound, "Coordinates not found")
	case errors.Is(err, service.ErrWeatherFetch):
		respondError(w, http.StatusInternalServerError, "Couldn't fetch weather info")
	default:
		log.Printf("request failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
