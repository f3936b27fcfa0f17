package location

import (
	"net/http"
	"time"

	"github.com/sportbook/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "location not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "name is required")
)

// Location is a geographic area fields belong to.
type Location struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
