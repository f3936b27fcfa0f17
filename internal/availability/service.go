package availability

import (
	"context"
	"time"
)

type Service interface {
	// ListForDate returns slots with capacity left on the date. An empty
	// result is not an error here; the HTTP layer decides how to report it.
	ListForDate(ctx context.Context, date time.Time, filter Filter) ([]*Slot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListForDate(ctx context.Context, date time.Time, filter Filter) ([]*Slot, error) {
	slots, err := s.repo.ListForDate(ctx, date, filter)
	if err != nil {
		return nil, err
	}

	open := make([]*Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.Remaining > 0 {
			open = append(open, slot)
		}
	}
	return open, nil
}
