package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"restro-api/internal/domain"
	"restro-api/internal/service"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Reviews     service.ReviewServiceInterface
	Cuisines    service.CuisineServiceInterface
	Weather     service.WeatherServiceInterface
	QR          service.QRGenerator
}

func NewHandler(
	restaurants service.RestaurantServiceInterface,
	reviews service.ReviewServiceInterface,
	cuisines service.CuisineServiceInterface,
	weather service.WeatherServiceInterface,
	qr service.QRGenerator,
) *Handler {
	return &Handler{
		Restaurants: restaurants,
		Reviews:     reviews,
		Cuisines:    cuisines,
		Weather:     weather,
		QR:          qr,
	}
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateRestaurantInput
	if msg := decodeAndValidate(r, &input); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	restaurant, err := h.Restaurants.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, restaurant, "Added new restaurant")
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	restaurants, err := h.Restaurants.List(r.Context(), page, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, restaurants, "")
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	restaurant, err := h.Restaurants.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, restaurant, "")
}

func (h *Handler) setRestaurantDetails(w http.ResponseWriter, r *http.Request) {
	details, msg := decodeDetails(r)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if !h.checkRestaurant(w, r) {
		return
	}
	id := mux.Vars(r)["id"]

	if err := h.Restaurants.SetDetails(r.Context(), id, details); err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, nil, "Restaurant details added")
}

func (h *Handler) getRestaurantDetails(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	details, err := h.Restaurants.GetDetails(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if details == nil {
		details = json.RawMessage("{}")
	}

	respondSuccess(w, http.StatusOK, details, "")
}

func (h *Handler) getWeather(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	payload, err := h.Weather.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, payload, "")
}

func (h *Handler) getRestaurantQR(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	png, err := h.QR.Generate(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
