// Package mocks holds testify-based doubles for the service interfaces.
package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"restro-api/internal/domain"
)

type constructorT interface {
	mock.TestingT
	Cleanup(func())
}

type RestaurantServiceInterface struct {
	mock.Mock
}

func NewRestaurantServiceInterface(t constructorT) *RestaurantServiceInterface {
	m := &RestaurantServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantServiceInterface) Create(ctx context.Context, input domain.CreateRestaurantInput) (domain.Restaurant, error) {
	ret := m.Called(ctx, input)
	return ret.Get(0).(domain.Restaurant), ret.Error(1)
}

func (m *RestaurantServiceInterface) List(ctx context.Context, page, limit int) ([]map[string]string, error) {
	ret := m.Called(ctx, page, limit)
	var restaurants []map[string]string
	if ret.Get(0) != nil {
		restaurants = ret.Get(0).([]map[string]string)
	}
	return restaurants, ret.Error(1)
}

func (m *RestaurantServiceInterface) Get(ctx context.Context, id string) (map[string]any, error) {
	ret := m.Called(ctx, id)
	var restaurant map[string]any
	if ret.Get(0) != nil {
		restaurant = ret.Get(0).(map[string]any)
	}
	return restaurant, ret.Error(1)
}

func (m *RestaurantServiceInterface) Exists(ctx context.Context, id string) (bool, error) {
	ret := m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (m *RestaurantServiceInterface) SetDetails(ctx context.Context, id string, details map[string]any) error {
	ret := m.Called(ctx, id, details)
	return ret.Error(0)
}

func (m *RestaurantServiceInterface) GetDetails(ctx context.Context, id string) (json.RawMessage, error) {
	ret := m.Called(ctx, id)
	var details json.RawMessage
	if ret.Get(0) != nil {
		details = ret.Get(0).(json.RawMessage)
	}
	return details, ret.Error(1)
}

type ReviewServiceInterface struct {
	mock.Mock
}

func NewReviewServiceInterface(t constructorT) *ReviewServiceInterface {
	m := &ReviewServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReviewServiceInterface) Create(ctx context.Context, restaurantID string, input domain.CreateReviewInput) (domain.Review, error) {
	ret := m.Called(ctx, restaurantID, input)
	return ret.Get(0).(domain.Review), ret.Error(1)
}

func (m *ReviewServiceInterface) List(ctx context.Context, restaurantID string, page, limit int) ([]map[string]string, error) {
	ret := m.Called(ctx, restaurantID, page, limit)
	var reviews []map[string]string
	if ret.Get(0) != nil {
		reviews = ret.Get(0).([]map[string]string)
	}
	return reviews, ret.Error(1)
}

func (m *ReviewServiceInterface) Delete(ctx context.Context, restaurantID, reviewID string) error {
	ret := m.Called(ctx, restaurantID, reviewID)
	return ret.Error(0)
}

type CuisineServiceInterface struct {
	mock.Mock
}

func NewCuisineServiceInterface(t constructorT) *CuisineServiceInterface {
	m := &CuisineServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CuisineServiceInterface) ListCuisines(ctx context.Context) ([]string, error) {
	ret := m.Called(ctx)
	var cuisines []string
	if ret.Get(0) != nil {
		cuisines = ret.Get(0).([]string)
	}
	return cuisines, ret.Error(1)
}

func (m *CuisineServiceInterface) ListRestaurantNames(ctx context.Context, cuisine string) ([]string, error) {
	ret := m.Called(ctx, cuisine)
	var names []string
	if ret.Get(0) != nil {
		names = ret.Get(0).([]string)
	}
	return names, ret.Error(1)
}

type WeatherServiceInterface struct {
	mock.Mock
}

func NewWeatherServiceInterface(t constructorT) *WeatherServiceInterface {
	m := &WeatherServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WeatherServiceInterface) Get(ctx context.Context, restaurantID string) (json.RawMessage, error) {
	ret := m.Called(ctx, restaurantID)
	var payload json.RawMessage
	if ret.Get(0) != nil {
		payload = ret.Get(0).(json.RawMessage)
	}
	return payload, ret.Error(1)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t constructorT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(restaurantID string) ([]byte, error) {
	ret := m.Called(restaurantID)
	var png []byte
	if ret.Get(0) != nil {
		png = ret.Get(0).([]byte)
	}
	return png, ret.Error(1)
}
