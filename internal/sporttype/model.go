package sporttype

import (
	"net/http"
	"time"

	"github.com/sportbook/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "sport type not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "name is required")
)

// SportType is the sport a field hosts (football, badminton, ...).
// Serialized directly on the wire, hence the tags.
type SportType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
