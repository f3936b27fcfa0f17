package pricing

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sportbook/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrRuleNotFound  = apperror.New(http.StatusNotFound, "price rule not found")
	ErrRuleOverlap   = apperror.New(http.StatusConflict, "price rule overlaps an existing rule for this field type and day")
	ErrInvalidWindow = apperror.New(http.StatusBadRequest, "start_time must be before end_time")
	ErrInvalidDay    = apperror.New(http.StatusBadRequest, "day_of_week must be between 0 (Sunday) and 6 (Saturday)")
)

// Rule prices one field type for a weekday time band. A booking window is
// priced by the rule that fully contains it.
type Rule struct {
	ID          int64
	TypeFieldID int64
	DayOfWeek   int
	StartTime   string
	EndTime     string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	TypeFieldName string
}

// NotFoundError reports a booking window no rule covers. It carries the
// lookup key so handlers can echo it back to the caller.
type NotFoundError struct {
	TypeFieldID int64
	DayOfWeek   int
	TimeFrom    string
	TimeTo      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no price rule for field type %d on day %d covering %s - %s",
		e.TypeFieldID, e.DayOfWeek, e.TimeFrom, e.TimeTo)
}

// Weekday returns the day-of-week index used by price rules, with
// Sunday as 0.
func Weekday(date time.Time) int {
	return int(date.Weekday())
}
