package schedule

import (
	"net/http"
	"time"

	"github.com/sportbook/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "schedule not found")
	ErrSlotNotFound  = apperror.New(http.StatusNotFound, "schedule slot not found")
	ErrInvalidWindow = apperror.New(http.StatusBadRequest, "time_from must be before time_to")
)

// Slot statuses.
const (
	SlotStatusActive   = "active"
	SlotStatusInactive = "inactive"
)

// Schedule is a bookable time window of the day, e.g. 08:00-10:00.
// Times are "HH:MM" strings on the Go side and time columns in SQL.
type Schedule struct {
	ID        int64
	TimeFrom  string
	TimeTo    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldSlot attaches a schedule window to a field with a capacity.
// Bookings consume capacity from the matching slot on a given date.
type FieldSlot struct {
	ID              int64
	ScheduleID      int64
	TypeFieldID     int64
	FieldID         int64
	AmountAvailable int
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for display.
	TimeFrom      string
	TimeTo        string
	FieldName     string
	TypeFieldName string
}

// SlotFilter narrows the slot listing.
type SlotFilter struct {
	ScheduleID  int64
	FieldID     int64
	TypeFieldID int64
	Status      string
}
