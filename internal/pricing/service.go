package pricing

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportbook/field-booking-backend/internal/fieldtype"
)

type CreateRequest struct {
	TypeFieldID int64
	DayOfWeek   int
	StartTime   string
	EndTime     string
	Price       float64
}

type UpdateRequest struct {
	TypeFieldID *int64
	DayOfWeek   *int
	StartTime   *string
	EndTime     *string
	Price       *float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Rule, error)
	GetByID(ctx context.Context, id int64) (*Rule, error)
	List(ctx context.Context, filter Filter) ([]*Rule, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Rule, error)
	Delete(ctx context.Context, id int64) error

	// ResolvePrice returns the hourly price for a field type on a date,
	// for a booking window given as "HH:MM" endpoints.
	ResolvePrice(ctx context.Context, typeFieldID int64, date time.Time, timeFrom, timeTo string) (float64, error)
}

type service struct {
	catalog   Catalog
	pool      *pgxpool.Pool
	ftService fieldtype.Service
}

func NewService(catalog Catalog, pool *pgxpool.Pool, ftService fieldtype.Service) Service {
	return &service{
		catalog:   catalog,
		pool:      pool,
		ftService: ftService,
	}
}

func validateWindow(dayOfWeek int, startTime, endTime string) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ErrInvalidDay
	}
	if startTime >= endTime {
		return ErrInvalidWindow
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Rule, error) {
	if err := validateWindow(req.DayOfWeek, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if _, err := s.ftService.GetByID(ctx, req.TypeFieldID); err != nil {
		return nil, err
	}

	overlap, err := s.catalog.HasOverlap(ctx, req.TypeFieldID, req.DayOfWeek, req.StartTime, req.EndTime, 0)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrRuleOverlap
	}

	rule := &Rule{
		TypeFieldID: req.TypeFieldID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Price:       req.Price,
	}
	if err := s.catalog.Create(ctx, rule); err != nil {
		return nil, err
	}
	return s.catalog.GetByID(ctx, rule.ID)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Rule, error) {
	return s.catalog.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Rule, error) {
	return s.catalog.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Rule, error) {
	rule, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TypeFieldID != nil {
		rule.TypeFieldID = *req.TypeFieldID
	}
	if req.DayOfWeek != nil {
		rule.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		rule.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		rule.EndTime = *req.EndTime
	}
	if req.Price != nil {
		rule.Price = *req.Price
	}

	if err := validateWindow(rule.DayOfWeek, rule.StartTime, rule.EndTime); err != nil {
		return nil, err
	}
	if _, err := s.ftService.GetByID(ctx, rule.TypeFieldID); err != nil {
		return nil, err
	}

	overlap, err := s.catalog.HasOverlap(ctx, rule.TypeFieldID, rule.DayOfWeek, rule.StartTime, rule.EndTime, rule.ID)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrRuleOverlap
	}

	if err := s.catalog.Update(ctx, rule); err != nil {
		return nil, err
	}
	return s.catalog.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.catalog.Delete(ctx, id)
}

func (s *service) ResolvePrice(ctx context.Context, typeFieldID int64, date time.Time, timeFrom, timeTo string) (float64, error) {
	rule, err := s.catalog.Resolve(ctx, s.pool, typeFieldID, Weekday(date), timeFrom, timeTo)
	if err != nil {
		return 0, err
	}
	return rule.Price, nil
}
