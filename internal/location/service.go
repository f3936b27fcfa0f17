package location

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
	Create(ctx context.Context, req CreateRequest) (*Location, error)
	GetByID(ctx context.Context, id int64) (*Location, error)
	List(ctx context.Context, search string) ([]*Location, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Location, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Location, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	l := &Location{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, search string) ([]*Location, error) {
	return s.repo.List(ctx, search)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Location, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		l.Name = *req.Name
	}
	if req.Description != nil {
		l.Description = *req.Description
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
