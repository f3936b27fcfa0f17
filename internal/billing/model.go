package billing

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sportbook/field-booking-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "bill not found")

// Bill statuses. A booking has at most one pending bill; amending the
// booking cancels it and issues a fresh one.
const (
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
	StatusPaid      = "paid"
)

// Bill is a payment obligation for a booking.
type Bill struct {
	ID             int64
	TransactionID  string
	BookingID      int64
	UserReceivedID int64
	Amount         float64
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTransactionID mints a payment reference. Nanosecond resolution keeps
// references unique within a single instance.
func NewTransactionID() string {
	return "PAY_" + strconv.FormatInt(time.Now().UnixNano(), 10)
}
