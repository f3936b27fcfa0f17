package schedule

import (
	"context"

	"github.com/sportbook/field-booking-backend/internal/field"
	"github.com/sportbook/field-booking-backend/internal/fieldtype"
)

type CreateSlotRequest struct {
	ScheduleID      int64
	TypeFieldID     int64
	FieldID         int64
	AmountAvailable int
	Status          string
}

type UpdateSlotRequest struct {
	ScheduleID      *int64
	TypeFieldID     *int64
	FieldID         *int64
	AmountAvailable *int
	Status          *string
}

type Service interface {
	Create(ctx context.Context, timeFrom, timeTo string) (*Schedule, error)
	GetByID(ctx context.Context, id int64) (*Schedule, error)
	List(ctx context.Context) ([]*Schedule, error)
	Update(ctx context.Context, id int64, timeFrom, timeTo string) (*Schedule, error)

	CreateSlot(ctx context.Context, req CreateSlotRequest) (*FieldSlot, error)
	ListSlots(ctx context.Context, filter SlotFilter) ([]*FieldSlot, error)
	UpdateSlot(ctx context.Context, id int64, req UpdateSlotRequest) (*FieldSlot, error)
}

type service struct {
	repo         Repository
	fieldService field.Service
	ftService    fieldtype.Service
}

func NewService(repo Repository, fieldService field.Service, ftService fieldtype.Service) Service {
	return &service{
		repo:         repo,
		fieldService: fieldService,
		ftService:    ftService,
	}
}

func (s *service) Create(ctx context.Context, timeFrom, timeTo string) (*Schedule, error) {
	if timeFrom >= timeTo {
		return nil, ErrInvalidWindow
	}

	sched := &Schedule{TimeFrom: timeFrom, TimeTo: timeTo}
	if err := s.repo.Create(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Schedule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Schedule, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id int64, timeFrom, timeTo string) (*Schedule, error) {
	if timeFrom >= timeTo {
		return nil, ErrInvalidWindow
	}

	sched, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sched.TimeFrom = timeFrom
	sched.TimeTo = timeTo
	if err := s.repo.Update(ctx, sched); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// checkSlotReferences surfaces the referenced rows' own not-found errors
// instead of a foreign key violation.
func (s *service) checkSlotReferences(ctx context.Context, scheduleID, typeFieldID, fieldID int64) error {
	if _, err := s.repo.GetByID(ctx, scheduleID); err != nil {
		return err
	}
	if _, err := s.ftService.GetByID(ctx, typeFieldID); err != nil {
		return err
	}
	if _, err := s.fieldService.GetByID(ctx, fieldID); err != nil {
		return err
	}
	return nil
}

func (s *service) CreateSlot(ctx context.Context, req CreateSlotRequest) (*FieldSlot, error) {
	if err := s.checkSlotReferences(ctx, req.ScheduleID, req.TypeFieldID, req.FieldID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = SlotStatusActive
	}

	slot := &FieldSlot{
		ScheduleID:      req.ScheduleID,
		TypeFieldID:     req.TypeFieldID,
		FieldID:         req.FieldID,
		AmountAvailable: req.AmountAvailable,
		Status:          status,
	}
	if err := s.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}
	return s.repo.GetSlotByID(ctx, slot.ID)
}

func (s *service) ListSlots(ctx context.Context, filter SlotFilter) ([]*FieldSlot, error) {
	return s.repo.ListSlots(ctx, filter)
}

func (s *service) UpdateSlot(ctx context.Context, id int64, req UpdateSlotRequest) (*FieldSlot, error) {
	slot, err := s.repo.GetSlotByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ScheduleID != nil {
		slot.ScheduleID = *req.ScheduleID
	}
	if req.TypeFieldID != nil {
		slot.TypeFieldID = *req.TypeFieldID
	}
	if req.FieldID != nil {
		slot.FieldID = *req.FieldID
	}
	if req.AmountAvailable != nil {
		slot.AmountAvailable = *req.AmountAvailable
	}
	if req.Status != nil {
		slot.Status = *req.Status
	}

	if err := s.checkSlotReferences(ctx, slot.ScheduleID, slot.TypeFieldID, slot.FieldID); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateSlot(ctx, slot); err != nil {
		return nil, err
	}
	return s.repo.GetSlotByID(ctx, id)
}
