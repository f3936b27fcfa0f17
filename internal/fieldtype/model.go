package fieldtype

import (
	"net/http"
	"time"

	"github.com/sportbook/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "field type not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "name is required")
)

// FieldType categorises fields for pricing (e.g. 5-a-side, 7-a-side).
// Price rules are keyed by field type.
type FieldType struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
