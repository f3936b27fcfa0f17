package http

import (
	"time"

	"github.com/sportbook/field-booking-backend/internal/billing"
	"github.com/sportbook/field-booking-backend/internal/booking"
)

type CreateBookingRequest struct {
	FieldID    int64    `json:"id_field" binding:"required,gt=0"`
	ScheduleID int64    `json:"id_schedule" binding:"required,gt=0"`
	Date       string   `json:"date" binding:"required"`
	Hour       *float64 `json:"hour" binding:"required,gt=0"`
}

type AmendBookingRequest struct {
	Time string   `json:"time" binding:"required"`
	Hour *float64 `json:"hour" binding:"required,gt=0"`
}

type BookingResponse struct {
	ID         int64     `json:"id"`
	FieldID    int64     `json:"id_field"`
	ScheduleID int64     `json:"id_schedule"`
	FieldName  string    `json:"field_name"`
	Time       string    `json:"time"`
	Hour       float64   `json:"hour"`
	Date       string    `json:"date"`
	UserID     int64     `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		FieldID:    b.FieldID,
		ScheduleID: b.ScheduleID,
		FieldName:  b.FieldName,
		Time:       b.Time,
		Hour:       b.Hour,
		Date:       b.Date.Format("2006-01-02"),
		UserID:     b.UserID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

type BillResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"id_transaction"`
	BookingID     int64     `json:"id_booking"`
	UserReceived  int64     `json:"user_received"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewBillResponse(b *billing.Bill) BillResponse {
	return BillResponse{
		ID:            b.ID,
		TransactionID: b.TransactionID,
		BookingID:     b.BookingID,
		UserReceived:  b.UserReceivedID,
		Amount:        b.Amount,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
