package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeAndValidate decodes the request body into dst and validates it
// against dst's schema tags. It runs before any store access; a non-empty
// return means the handler must respond 400 and stop.
func decodeAndValidate(r *http.Request, dst any) string {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return "Invalid JSON body"
	}

	err := validate.Struct(dst)
	if err == nil {
		return ""
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request body"
	}

	diagnostics := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		diagnostics = append(diagnostics, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
	}
	return "Validation failed: " + strings.Join(diagnostics, "; ")
}

// decodeDetails validates the free-form details document: it must be a
// non-empty JSON object.
func decodeDetails(r *http.Request) (map[string]any, string) {
	var details map[string]any
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		return nil, "Invalid JSON body"
	}
	if len(details) == 0 {
		return nil, "Details must be a non-empty object"
	}
	return details, ""
}

// parsePagination reads page/limit query parameters with 1/10 defaults.
func parsePagination(r *http.Request) (page, limit int) {
	page, limit = 1, 10
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}
