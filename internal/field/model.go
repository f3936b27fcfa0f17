package field

import (
	"net/http"
	"time"

	"github.com/sportbook/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "field not found")
	ErrInvalidOpenHours = apperror.New(http.StatusBadRequest, "open time must be before close time")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusMaintenance Status = "maintenance"
	StatusClosed      Status = "closed"
)

// Field is a bookable physical sports venue instance.
// Open and Close are times of day in "HH:MM" form.
type Field struct {
	ID              int64
	Name            string
	Address         string
	Contact         string
	Description     string
	Open            string
	Close           string
	TypeFieldID     int64
	TypeFieldName   string
	TypeSportID     int64
	TypeSportName   string
	LocationID      int64
	LocationName    string
	AmountAvailable int
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter defines parameters for listing fields.
type Filter struct {
	LocationID  int64
	TypeFieldID int64
	TypeSportID int64
	Status      string
	Page        int
	PageSize    int
}
