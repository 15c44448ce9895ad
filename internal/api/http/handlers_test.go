package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "restro-api/internal/api/http"
	"restro-api/internal/domain"
	"restro-api/internal/mocks"
)

type testEnv struct {
	router      *mux.Router
	restaurants *mocks.RestaurantServiceInterface
	reviews     *mocks.ReviewServiceInterface
	cuisines    *mocks.CuisineServiceInterface
	weather     *mocks.WeatherServiceInterface
	qr          *mocks.QRGenerator
}

func setupTestRouter(t *testing.T) testEnv {
	t.Helper()
	env := testEnv{
		restaurants: mocks.NewRestaurantServiceInterface(t),
		reviews:     mocks.NewReviewServiceInterface(t),
		cuisines:    mocks.NewCuisineServiceInterface(t),
		weather:     mocks.NewWeatherServiceInterface(t),
		qr:          mocks.NewQRGenerator(t),
	}
	handler := httpapi.NewHandler(env.restaurants, env.reviews, env.cuisines, env.weather, env.qr)
	env.router = mux.NewRouter()
	handler.RegisterRoutes(env.router)
	return env
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func doRequest(t *testing.T, router *mux.Router, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var env envelope
	if rr.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	}
	return rr, env
}

func TestCreateRestaurant(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(env testEnv)
		expectedCode int
		expectedMsg  string
	}{
		{
			name:    "success",
			payload: `{"name":"Thai Corner","location":"10.75,59.91","cuisines":["thai"]}`,
			prepareMocks: func(env testEnv) {
				env.restaurants.On("Create", mock.Anything, domain.CreateRestaurantInput{
					Name: "Thai Corner", Location: "10.75,59.91", Cuisines: []string{"thai"},
				}).Return(domain.Restaurant{ID: "r1", Name: "Thai Corner", Location: "10.75,59.91"}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Added new restaurant",
		},
		{
			name:         "invalid_json_no_store_access",
			payload:      `not json`,
			prepareMocks: func(env testEnv) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing_cuisines",
			payload:      `{"name":"Thai Corner","location":"10.75,59.91"}`,
			prepareMocks: func(env testEnv) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "empty_cuisines",
			payload:      `{"name":"Thai Corner","location":"10.75,59.91","cuisines":[]}`,
			prepareMocks: func(env testEnv) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			env := setupTestRouter(t)
			testCase.prepareMocks(env)

			rr, body := doRequest(t, env.router, http.MethodPost, "/api/v1/restaurants", testCase.payload)

			assert.Equal(t, testCase.expectedCode, rr.Code)
			if testCase.expectedCode == http.StatusOK {
				assert.Equal(t, "success", body.Status)
				assert.Equal(t, testCase.expectedMsg, body.Message)
			} else {
				assert.Equal(t, "error", body.Status)
			}
		})
	}
}

func TestListRestaurants_PaginationDefaults(t *testing.T) {
	env := setupTestRouter(t)
	env.restaurants.On("List", mock.Anything, 1, 10).
		Return([]map[string]string{{"id": "r1"}}, nil).Once()

	rr, body := doRequest(t, env.router, http.MethodGet, "/api/v1/restaurants", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "success", body.Status)
}

func TestListRestaurants_PaginationFromQuery(t *testing.T) {
	env := setupTestRouter(t)
	env.restaurants.On("List", mock.Anything, 3, 5).
		Return([]map[string]string{}, nil).Once()

	rr, _ := doRequest(t, env.router, http.MethodGet, "/api/v1/restaurants?page=3&limit=5", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetRestaurant_GuardRejectsUnknownId(t *testing.T) {
	env := setupTestRouter(t)
	env.restaurants.On("Exists", mock.Anything, "ghost").Return(false, nil).Once()

	rr, body := doRequest(t, env.router, http.MethodGet, "/api/v1/restaurants/ghost", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Restaurant not found", body.Message)
}

func TestGetRestaurant_Success(t *testing.T) {
	env := setupTestRouter(t)
	env.restaurants.On("Exists", mock.Anything, "r1").Return(true, nil).Once()
	env.restaurants.On("Get", mock.Anything, "r1").
		Return(map[string]any{"id": "r1", "name": "Thai Corner", "cuisines": []string{"thai"}}, nil).Once()

	rr, body := doRequest(t, env.router, http.MethodGet, "/api/v1/restaurants/r1", "")

	assert.Equal(t, http.StatusOK, rr.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, "Thai Corner", data["name"])
	assert.Equal(t, []any{"thai"}, data["cuisines"])
}

func TestSetRestaurantDetails(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(env testEnv)
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"hours":"9-17"}`,
			prepareMocks: func(env testEnv) {
				env.restaurants.On("Exists", mock.Anything, "r1").Return(true, nil).Once()
				env.restaurants.On("SetDetails", mock.Anything, "r1", map[string]any{"hours": "9-17"}).
					Return(nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "empty_object_rejected_before_existence_check",
			payload:      `{}`,
			prepareMocks: func(env testEnv) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			env := setupTestRouter(t)
			testCase.prepareMocks(env)

			rr, _ := doRequest(t, env.router, http.MethodPost, "/api/v1/restaurants/r1/details", testCase.payload)

			assert.Equal(t, testCase.expectedCode, rr.Code)
			if testCase.expectedCode == http.StatusBadRequest {
				env.restaurants.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestGetRestaurantDetails_NeverSet(t *testing.T) {
	env := setupTestRouter(t)
	env.restaurants.On("Exists", mock.Anything, "r1").Return(true, nil).Once()
	env.restaurants.On("GetDetails", mock.Anything, "r1").Return(nil, nil).Once()

	rr, body := doRequest(t, env.router, http.MethodGet, "/api/v1/restaurants/r1/details", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, string(body.Data))
}
