package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sportbook/field-booking-backend/internal/availability"
)

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) ListForDate(ctx context.Context, date time.Time, filter availability.Filter) ([]*availability.Slot, error) {
	args := m.Called(ctx, date, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*availability.Slot), args.Error(1)
}

func newAvailabilityTestRouter(svc availability.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	RegisterRoutes(api, NewHandler(svc))
	return r
}

func TestListAvailableRequiresDate(t *testing.T) {
	svc := new(MockAvailabilityService)
	r := newAvailabilityTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/fields/list_available", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ListForDate")
}

func TestListAvailableRejectsBadDate(t *testing.T) {
	svc := new(MockAvailabilityService)
	r := newAvailabilityTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/fields/list_available?date=07-09-2026", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ListForDate")
}

func TestListAvailableEmptyIs404(t *testing.T) {
	svc := new(MockAvailabilityService)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	svc.On("ListForDate", mock.Anything, date, availability.Filter{}).
		Return([]*availability.Slot{}, nil)

	r := newAvailabilityTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/fields/list_available?date=2026-09-07", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAvailableReturnsSlots(t *testing.T) {
	svc := new(MockAvailabilityService)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	price := 150.0

	svc.On("ListForDate", mock.Anything, date, availability.Filter{ScheduleID: 3}).
		Return([]*availability.Slot{
			{
				SlotID: 1, FieldID: 5, FieldName: "North Pitch",
				TypeFieldID: 2, TypeFieldName: "5-a-side",
				ScheduleID: 3, TimeFrom: "08:00", TimeTo: "10:00",
				Capacity: 4, Booked: 1, Remaining: 3, PricePerHour: &price,
			},
		}, nil)

	r := newAvailabilityTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/fields/list_available?date=2026-09-07&id_schedule=3", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"field_name":"North Pitch"`)
	assert.Contains(t, w.Body.String(), `"remaining":3`)
	assert.Contains(t, w.Body.String(), `"price_per_hour":150`)
	svc.AssertExpectations(t)
}

func TestListAvailableNoPriceRuleIsNull(t *testing.T) {
	svc := new(MockAvailabilityService)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	svc.On("ListForDate", mock.Anything, date, availability.Filter{}).
		Return([]*availability.Slot{
			{SlotID: 1, FieldID: 5, FieldName: "North Pitch", ScheduleID: 3, TimeFrom: "08:00", TimeTo: "10:00", Capacity: 4, Remaining: 4},
		}, nil)

	r := newAvailabilityTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/fields/list_available?date=2026-09-07", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price_per_hour":null`)
}
