package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdaySundayIsZero(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), 0},  // Sunday
		{time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), 1},  // Monday
		{time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), 6}, // Saturday
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Weekday(tt.date), "date %s", tt.date.Format("2006-01-02"))
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{TypeFieldID: 2, DayOfWeek: 1, TimeFrom: "08:00", TimeTo: "10:00"}
	assert.Equal(t, "no price rule for field type 2 on day 1 covering 08:00 - 10:00", err.Error())
}
