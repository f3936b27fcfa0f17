package booking

import (
	"context"
	"time"

	"github.com/sportbook/field-booking-backend/internal/billing"
	"github.com/sportbook/field-booking-backend/internal/field"
	"github.com/sportbook/field-booking-backend/internal/schedule"
)

// FieldDirectory is the slice of the field service bookings need.
type FieldDirectory interface {
	GetByID(ctx context.Context, id int64) (*field.Field, error)
}

// ScheduleDirectory resolves schedule windows.
type ScheduleDirectory interface {
	GetByID(ctx context.Context, id int64) (*schedule.Schedule, error)
}

// PriceResolver prices a window for a field type on a date.
type PriceResolver interface {
	ResolvePrice(ctx context.Context, typeFieldID int64, date time.Time, timeFrom, timeTo string) (float64, error)
}

type CreateRequest struct {
	UserID     int64
	FieldID    int64
	ScheduleID int64
	Date       time.Time
	Hour       float64
}

// CreateResult reports the created booking together with the pricing the
// engine resolved for it.
type CreateResult struct {
	Booking      *Booking
	PricePerHour float64
	TotalAmount  float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	Amend(ctx context.Context, bookingID int64, timeWindow string, hour float64) (*Booking, *billing.Bill, error)
	ListMine(ctx context.Context, userID int64) ([]*Booking, error)
	ListBills(ctx context.Context, bookingID int64) ([]*billing.Bill, error)
}

type service struct {
	repo      Repository
	fields    FieldDirectory
	schedules ScheduleDirectory
	prices    PriceResolver
	bills     billing.Issuer
}

func NewService(repo Repository, fields FieldDirectory, schedules ScheduleDirectory, prices PriceResolver, bills billing.Issuer) Service {
	return &service{
		repo:      repo,
		fields:    fields,
		schedules: schedules,
		prices:    prices,
		bills:     bills,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	if req.Hour <= 0 {
		return nil, ErrInvalidHours
	}

	f, err := s.fields.GetByID(ctx, req.FieldID)
	if err != nil {
		return nil, err
	}
	sched, err := s.schedules.GetByID(ctx, req.ScheduleID)
	if err != nil {
		return nil, err
	}

	price, err := s.prices.ResolvePrice(ctx, f.TypeFieldID, req.Date, sched.TimeFrom, sched.TimeTo)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		FieldID:    req.FieldID,
		ScheduleID: req.ScheduleID,
		UserID:     req.UserID,
		Time:       FormatWindow(sched.TimeFrom, sched.TimeTo),
		Hour:       req.Hour,
		Date:       req.Date,
		FieldName:  f.Name,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return &CreateResult{
		Booking:      b,
		PricePerHour: price,
		TotalAmount:  price * req.Hour,
	}, nil
}

func (s *service) Amend(ctx context.Context, bookingID int64, timeWindow string, hour float64) (*Booking, *billing.Bill, error) {
	if hour <= 0 {
		return nil, nil, ErrInvalidHours
	}

	timeFrom, timeTo, err := ParseWindow(timeWindow)
	if err != nil {
		return nil, nil, err
	}

	return s.repo.Amend(ctx, AmendParams{
		BookingID:     bookingID,
		Time:          FormatWindow(timeFrom, timeTo),
		Hour:          hour,
		TimeFrom:      timeFrom,
		TimeTo:        timeTo,
		TransactionID: billing.NewTransactionID(),
	})
}

func (s *service) ListMine(ctx context.Context, userID int64) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListBills(ctx context.Context, bookingID int64) ([]*billing.Bill, error) {
	if _, err := s.repo.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.bills.ListByBooking(ctx, bookingID)
}
