package field

import (
	"context"

	"github.com/sportbook/field-booking-backend/internal/fieldtype"
	"github.com/sportbook/field-booking-backend/internal/location"
	"github.com/sportbook/field-booking-backend/internal/sporttype"
)

type CreateRequest struct {
	Name            string
	Address         string
	Contact         string
	Description     string
	Open            string
	Close           string
	TypeFieldID     int64
	TypeSportID     int64
	LocationID      int64
	AmountAvailable int
	Status          Status
}

type UpdateRequest struct {
	Name            *string
	Address         *string
	Contact         *string
	Description     *string
	Open            *string
	Close           *string
	TypeFieldID     *int64
	TypeSportID     *int64
	LocationID      *int64
	AmountAvailable *int
	Status          *Status
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Field, error)
	GetByID(ctx context.Context, id int64) (*Field, error)
	List(ctx context.Context, filter Filter) ([]*Field, int, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Field, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo       Repository
	ftService  fieldtype.Service
	stService  sporttype.Service
	locService location.Service
}

func NewService(repo Repository, ftService fieldtype.Service, stService sporttype.Service, locService location.Service) Service {
	return &service{
		repo:       repo,
		ftService:  ftService,
		stService:  stService,
		locService: locService,
	}
}

// checkReferences validates that the referenced type and location rows exist,
// surfacing their own not-found errors instead of a foreign key violation.
func (s *service) checkReferences(ctx context.Context, typeFieldID, typeSportID, locationID int64) error {
	if _, err := s.ftService.GetByID(ctx, typeFieldID); err != nil {
		return err
	}
	if _, err := s.stService.GetByID(ctx, typeSportID); err != nil {
		return err
	}
	if _, err := s.locService.GetByID(ctx, locationID); err != nil {
		return err
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Field, error) {
	if req.Open >= req.Close {
		return nil, ErrInvalidOpenHours
	}

	if err := s.checkReferences(ctx, req.TypeFieldID, req.TypeSportID, req.LocationID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusAvailable
	}

	f := &Field{
		Name:            req.Name,
		Address:         req.Address,
		Contact:         req.Contact,
		Description:     req.Description,
		Open:            req.Open,
		Close:           req.Close,
		TypeFieldID:     req.TypeFieldID,
		TypeSportID:     req.TypeSportID,
		LocationID:      req.LocationID,
		AmountAvailable: req.AmountAvailable,
		Status:          status,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	// Re-read to pick up joined reference names.
	created, err := s.repo.GetByID(ctx, f.ID)
	if err != nil {
		return f, nil
	}
	return created, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Field, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Field, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Field, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Address != nil {
		f.Address = *req.Address
	}
	if req.Contact != nil {
		f.Contact = *req.Contact
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.Open != nil {
		f.Open = *req.Open
	}
	if req.Close != nil {
		f.Close = *req.Close
	}
	if f.Open >= f.Close {
		return nil, ErrInvalidOpenHours
	}
	if req.TypeFieldID != nil {
		f.TypeFieldID = *req.TypeFieldID
	}
	if req.TypeSportID != nil {
		f.TypeSportID = *req.TypeSportID
	}
	if req.LocationID != nil {
		f.LocationID = *req.LocationID
	}
	if req.TypeFieldID != nil || req.TypeSportID != nil || req.LocationID != nil {
		if err := s.checkReferences(ctx, f.TypeFieldID, f.TypeSportID, f.LocationID); err != nil {
			return nil, err
		}
	}
	if req.AmountAvailable != nil {
		f.AmountAvailable = *req.AmountAvailable
	}
	if req.Status != nil {
		f.Status = *req.Status
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
