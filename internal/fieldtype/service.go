package fieldtype

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Description string
}

type UpdateRequest struct {
	Name        *string
	Description *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*FieldType, error)
	GetByID(ctx context.Context, id int64) (*FieldType, error)
	List(ctx context.Context) ([]*FieldType, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*FieldType, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*FieldType, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	ft := &FieldType{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, ft); err != nil {
		return nil, err
	}
	return ft, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*FieldType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*FieldType, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*FieldType, error) {
	ft, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		ft.Name = *req.Name
	}
	if req.Description != nil {
		ft.Description = *req.Description
	}

	if err := s.repo.Update(ctx, ft); err != nil {
		return nil, err
	}
	return ft, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
