package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sportbook/field-booking-backend/internal/db"
	"github.com/sportbook/field-booking-backend/internal/fieldtype"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Create(ctx context.Context, r *Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCatalog) GetByID(ctx context.Context, id int64) (*Rule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Rule), args.Error(1)
}

func (m *MockCatalog) List(ctx context.Context, filter Filter) ([]*Rule, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Rule), args.Error(1)
}

func (m *MockCatalog) Update(ctx context.Context, r *Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCatalog) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalog) HasOverlap(ctx context.Context, typeFieldID int64, dayOfWeek int, startTime, endTime string, excludeID int64) (bool, error) {
	args := m.Called(ctx, typeFieldID, dayOfWeek, startTime, endTime, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalog) Resolve(ctx context.Context, q db.Querier, typeFieldID int64, dayOfWeek int, timeFrom, timeTo string) (*Rule, error) {
	args := m.Called(ctx, q, typeFieldID, dayOfWeek, timeFrom, timeTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Rule), args.Error(1)
}

type MockFieldTypeService struct {
	mock.Mock
}

func (m *MockFieldTypeService) Create(ctx context.Context, req fieldtype.CreateRequest) (*fieldtype.FieldType, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fieldtype.FieldType), args.Error(1)
}

func (m *MockFieldTypeService) GetByID(ctx context.Context, id int64) (*fieldtype.FieldType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fieldtype.FieldType), args.Error(1)
}

func (m *MockFieldTypeService) List(ctx context.Context) ([]*fieldtype.FieldType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fieldtype.FieldType), args.Error(1)
}

func (m *MockFieldTypeService) Update(ctx context.Context, id int64, req fieldtype.UpdateRequest) (*fieldtype.FieldType, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fieldtype.FieldType), args.Error(1)
}

func (m *MockFieldTypeService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService() (Service, *MockCatalog, *MockFieldTypeService) {
	catalog := new(MockCatalog)
	fts := new(MockFieldTypeService)
	return NewService(catalog, nil, fts), catalog, fts
}

func TestCreateRejectsInvalidDay(t *testing.T) {
	svc, catalog, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateRequest{
		TypeFieldID: 1, DayOfWeek: 7, StartTime: "08:00", EndTime: "10:00", Price: 100,
	})
	assert.ErrorIs(t, err, ErrInvalidDay)
	catalog.AssertNotCalled(t, "Create")
}

func TestCreateRejectsInvertedWindow(t *testing.T) {
	svc, catalog, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateRequest{
		TypeFieldID: 1, DayOfWeek: 1, StartTime: "10:00", EndTime: "08:00", Price: 100,
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)
	catalog.AssertNotCalled(t, "Create")
}

func TestCreateRejectsOverlap(t *testing.T) {
	svc, catalog, fts := newTestService()
	ctx := context.Background()

	fts.On("GetByID", ctx, int64(1)).Return(&fieldtype.FieldType{ID: 1}, nil)
	catalog.On("HasOverlap", ctx, int64(1), 1, "09:00", "11:00", int64(0)).Return(true, nil)

	_, err := svc.Create(ctx, CreateRequest{
		TypeFieldID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", Price: 100,
	})
	assert.ErrorIs(t, err, ErrRuleOverlap)
	catalog.AssertNotCalled(t, "Create")
}

func TestCreateAcceptsAdjacentWindows(t *testing.T) {
	svc, catalog, fts := newTestService()
	ctx := context.Background()

	fts.On("GetByID", ctx, int64(1)).Return(&fieldtype.FieldType{ID: 1}, nil)
	catalog.On("HasOverlap", ctx, int64(1), 1, "10:00", "12:00", int64(0)).Return(false, nil)
	catalog.On("Create", ctx, mock.AnythingOfType("*pricing.Rule")).Run(func(args mock.Arguments) {
		args.Get(1).(*Rule).ID = 5
	}).Return(nil)
	catalog.On("GetByID", ctx, int64(5)).Return(&Rule{
		ID: 5, TypeFieldID: 1, DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00", Price: 100,
	}, nil)

	rule, err := svc.Create(ctx, CreateRequest{
		TypeFieldID: 1, DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00", Price: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), rule.ID)
}

func TestUpdateExcludesOwnRuleFromOverlapCheck(t *testing.T) {
	svc, catalog, fts := newTestService()
	ctx := context.Background()

	existing := &Rule{ID: 5, TypeFieldID: 1, DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00", Price: 100}
	catalog.On("GetByID", ctx, int64(5)).Return(existing, nil)
	fts.On("GetByID", ctx, int64(1)).Return(&fieldtype.FieldType{ID: 1}, nil)
	catalog.On("HasOverlap", ctx, int64(1), 1, "10:00", "12:00", int64(5)).Return(false, nil)
	catalog.On("Update", ctx, mock.MatchedBy(func(r *Rule) bool {
		return r.ID == 5 && r.Price == 200
	})).Return(nil)

	newPrice := 200.0
	_, err := svc.Update(ctx, 5, UpdateRequest{Price: &newPrice})
	require.NoError(t, err)
	catalog.AssertExpectations(t)
}

func TestResolvePriceUsesRuleWeekday(t *testing.T) {
	svc, catalog, _ := newTestService()
	ctx := context.Background()
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	catalog.On("Resolve", ctx, mock.Anything, int64(2), 0, "08:00", "10:00").
		Return(&Rule{ID: 1, Price: 175}, nil)

	price, err := svc.ResolvePrice(ctx, 2, sunday, "08:00", "10:00")
	require.NoError(t, err)
	assert.Equal(t, 175.0, price)
}
