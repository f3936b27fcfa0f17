package booking

import (
	"net/http"
	"strings"
	"time"

	"github.com/sportbook/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrNoCapacity        = apperror.New(http.StatusConflict, "no capacity left for this field and schedule on that date")
	ErrInvalidTimeWindow = apperror.New(http.StatusBadRequest, `time must be formatted as "HH:MM - HH:MM" with start before end`)
	ErrInvalidHours      = apperror.New(http.StatusBadRequest, "hour must be greater than zero")
)

// Booking reserves a field for a schedule window on a date. The window is
// stored as the display string "HH:MM - HH:MM".
type Booking struct {
	ID         int64
	FieldID    int64
	ScheduleID int64
	UserID     int64
	Time       string
	Hour       float64
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	FieldName string
}

// windowSeparator joins the window endpoints in the stored display string.
const windowSeparator = " - "

// FormatWindow renders two "HH:MM" endpoints as the stored display string.
func FormatWindow(timeFrom, timeTo string) string {
	return timeFrom + windowSeparator + timeTo
}

// ParseWindow splits a "HH:MM - HH:MM" display string back into its
// endpoints, validating both and their order.
func ParseWindow(window string) (timeFrom, timeTo string, err error) {
	parts := strings.Split(window, windowSeparator)
	if len(parts) != 2 {
		return "", "", ErrInvalidTimeWindow
	}

	from, err := time.Parse("15:04", parts[0])
	if err != nil {
		return "", "", ErrInvalidTimeWindow
	}
	to, err := time.Parse("15:04", parts[1])
	if err != nil {
		return "", "", ErrInvalidTimeWindow
	}
	// Re-render so unpadded hours ("9:00") normalize before the order check.
	timeFrom, timeTo = from.Format("15:04"), to.Format("15:04")
	if timeFrom >= timeTo {
		return "", "", ErrInvalidTimeWindow
	}
	return timeFrom, timeTo, nil
}
