package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sportbook/field-booking-backend/internal/billing"
	"github.com/sportbook/field-booking-backend/internal/db"
	"github.com/sportbook/field-booking-backend/internal/field"
	"github.com/sportbook/field-booking-backend/internal/pricing"
	"github.com/sportbook/field-booking-backend/internal/schedule"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, b *Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) Amend(ctx context.Context, params AmendParams) (*Booking, *billing.Bill, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*Booking), args.Get(1).(*billing.Bill), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int64) ([]*Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Booking), args.Error(1)
}

type MockFieldDirectory struct {
	mock.Mock
}

func (m *MockFieldDirectory) GetByID(ctx context.Context, id int64) (*field.Field, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*field.Field), args.Error(1)
}

type MockScheduleDirectory struct {
	mock.Mock
}

func (m *MockScheduleDirectory) GetByID(ctx context.Context, id int64) (*schedule.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.Schedule), args.Error(1)
}

type MockPriceResolver struct {
	mock.Mock
}

func (m *MockPriceResolver) ResolvePrice(ctx context.Context, typeFieldID int64, date time.Time, timeFrom, timeTo string) (float64, error) {
	args := m.Called(ctx, typeFieldID, date, timeFrom, timeTo)
	return args.Get(0).(float64), args.Error(1)
}

type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) Issue(ctx context.Context, q db.Querier, bill *billing.Bill) error {
	args := m.Called(ctx, q, bill)
	return args.Error(0)
}

func (m *MockIssuer) CancelPending(ctx context.Context, q db.Querier, bookingID int64) (int64, error) {
	args := m.Called(ctx, q, bookingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIssuer) ListByBooking(ctx context.Context, bookingID int64) ([]*billing.Bill, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Bill), args.Error(1)
}

func newTestService() (Service, *MockRepository, *MockFieldDirectory, *MockScheduleDirectory, *MockPriceResolver, *MockIssuer) {
	repo := new(MockRepository)
	fields := new(MockFieldDirectory)
	schedules := new(MockScheduleDirectory)
	prices := new(MockPriceResolver)
	bills := new(MockIssuer)
	return NewService(repo, fields, schedules, prices, bills), repo, fields, schedules, prices, bills
}

func TestCreateResolvesWindowAndPrice(t *testing.T) {
	svc, repo, fields, schedules, prices, _ := newTestService()
	ctx := context.Background()
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // a Monday

	fields.On("GetByID", ctx, int64(5)).
		Return(&field.Field{ID: 5, Name: "North Pitch", TypeFieldID: 2}, nil)
	schedules.On("GetByID", ctx, int64(3)).
		Return(&schedule.Schedule{ID: 3, TimeFrom: "08:00", TimeTo: "10:00"}, nil)
	prices.On("ResolvePrice", ctx, int64(2), date, "08:00", "10:00").
		Return(150.0, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(b *Booking) bool {
		return b.FieldID == 5 && b.ScheduleID == 3 && b.UserID == 9 &&
			b.Time == "08:00 - 10:00" && b.Hour == 2 && b.Date.Equal(date)
	})).Return(nil)

	result, err := svc.Create(ctx, CreateRequest{
		UserID:     9,
		FieldID:    5,
		ScheduleID: 3,
		Date:       date,
		Hour:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, 150.0, result.PricePerHour)
	assert.Equal(t, 300.0, result.TotalAmount)
	assert.Equal(t, "08:00 - 10:00", result.Booking.Time)
	assert.Equal(t, "North Pitch", result.Booking.FieldName)
	repo.AssertExpectations(t)
}

func TestCreateRejectsNonPositiveHours(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateRequest{UserID: 1, FieldID: 1, ScheduleID: 1, Hour: 0})
	assert.ErrorIs(t, err, ErrInvalidHours)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateSurfacesFieldNotFound(t *testing.T) {
	svc, repo, fields, _, _, _ := newTestService()
	ctx := context.Background()

	fields.On("GetByID", ctx, int64(42)).Return(nil, field.ErrNotFound)

	_, err := svc.Create(ctx, CreateRequest{UserID: 1, FieldID: 42, ScheduleID: 1, Hour: 1})
	assert.ErrorIs(t, err, field.ErrNotFound)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateSurfacesMissingPriceRule(t *testing.T) {
	svc, repo, fields, schedules, prices, _ := newTestService()
	ctx := context.Background()
	date := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC) // a Sunday

	fields.On("GetByID", ctx, int64(5)).
		Return(&field.Field{ID: 5, TypeFieldID: 2}, nil)
	schedules.On("GetByID", ctx, int64(3)).
		Return(&schedule.Schedule{ID: 3, TimeFrom: "08:00", TimeTo: "10:00"}, nil)
	prices.On("ResolvePrice", ctx, int64(2), date, "08:00", "10:00").
		Return(0.0, &pricing.NotFoundError{TypeFieldID: 2, DayOfWeek: 0, TimeFrom: "08:00", TimeTo: "10:00"})

	_, err := svc.Create(ctx, CreateRequest{UserID: 1, FieldID: 5, ScheduleID: 3, Date: date, Hour: 1})

	var priceErr *pricing.NotFoundError
	require.ErrorAs(t, err, &priceErr)
	assert.Equal(t, int64(2), priceErr.TypeFieldID)
	repo.AssertNotCalled(t, "Create")
}

func TestAmendParsesWindowAndMintsToken(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()
	ctx := context.Background()

	updated := &Booking{ID: 7, Time: "10:00 - 12:00", Hour: 2}
	bill := &billing.Bill{ID: 1, BookingID: 7, Status: billing.StatusPending}

	repo.On("Amend", ctx, mock.MatchedBy(func(p AmendParams) bool {
		return p.BookingID == 7 &&
			p.Time == "10:00 - 12:00" &&
			p.TimeFrom == "10:00" && p.TimeTo == "12:00" &&
			p.Hour == 2 &&
			strings.HasPrefix(p.TransactionID, "PAY_")
	})).Return(updated, bill, nil)

	gotBooking, gotBill, err := svc.Amend(ctx, 7, "10:00 - 12:00", 2)
	require.NoError(t, err)
	assert.Equal(t, updated, gotBooking)
	assert.Equal(t, bill, gotBill)
	repo.AssertExpectations(t)
}

func TestAmendRejectsMalformedWindow(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	_, _, err := svc.Amend(context.Background(), 7, "10:00 to 12:00", 2)
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)
	repo.AssertNotCalled(t, "Amend")
}

func TestAmendRejectsNonPositiveHours(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	_, _, err := svc.Amend(context.Background(), 7, "10:00 - 12:00", -1)
	assert.ErrorIs(t, err, ErrInvalidHours)
	repo.AssertNotCalled(t, "Amend")
}

func TestListBillsChecksBookingExists(t *testing.T) {
	svc, repo, _, _, _, bills := newTestService()
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(99)).Return(nil, ErrNotFound)

	_, err := svc.ListBills(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	bills.AssertNotCalled(t, "ListByBooking")
}

func TestListBillsReturnsAuditTrail(t *testing.T) {
	svc, repo, _, _, _, bills := newTestService()
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(7)).Return(&Booking{ID: 7}, nil)
	bills.On("ListByBooking", ctx, int64(7)).Return([]*billing.Bill{
		{ID: 2, Status: billing.StatusPending},
		{ID: 1, Status: billing.StatusCancelled},
	}, nil)

	got, err := svc.ListBills(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, billing.StatusPending, got[0].Status)
}
