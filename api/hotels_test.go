package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/service/hotels"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockHotelUseCase is a mock implementation of hotels.HotelUseCase
type MockHotelUseCase struct {
	mock.Mock
}

func (m *MockHotelUseCase) Create(ctx context.Context, input hotels.HotelInput) (*domain.Hotel, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) Edit(ctx context.Context, id int64, input hotels.HotelInput) (*domain.Hotel, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) Get(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) List(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHotelUseCase) Availability(ctx context.Context, id int64) (*hotels.Availability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotels.Availability), args.Error(1)
}

func TestHotelHandler_list(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/hotels", nil)

	hotelList := []domain.Hotel{
		{ID: 1, HotelCode: "HTL-1", Name: "Gran Via", Place: "Madrid", DoubleRoomsQ: 5, SingleRoomsQ: 10, DoubleRoomPrice: 100, SingleRoomPrice: 60, Active: true},
	}

	mockService.On("List", c.Request.Context()).Return(hotelList, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHotelHandler_get(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/hotels/1", nil)

	hotel := &domain.Hotel{ID: 1, HotelCode: "HTL-1", Name: "Gran Via", Place: "Madrid", Active: true}

	mockService.On("Get", c.Request.Context(), int64(1)).Return(hotel, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHotelHandler_get_notFound(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "99"}}
	c.Request = httptest.NewRequest("GET", "/hotels/99", nil)

	mockService.On("Get", c.Request.Context(), int64(99)).Return(nil, domain.ErrHotelNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestHotelHandler_deactivate_conflictingBookings(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("DELETE", "/hotels/1", nil)

	mockService.On("Deactivate", c.Request.Context(), int64(1)).Return(domain.ErrHotelHasBookings)

	handler.deactivate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}
