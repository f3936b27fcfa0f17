package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sportbook/field-booking-backend/internal/auth"
	"github.com/sportbook/field-booking-backend/internal/booking"
	"github.com/sportbook/field-booking-backend/internal/pkg/request"
	"github.com/sportbook/field-booking-backend/internal/pkg/response"
	"github.com/sportbook/field-booking-backend/internal/pricing"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing required fields", "details": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": `date must be formatted as "YYYY-MM-DD"`})
		return
	}

	result, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:     auth.GetUserID(c),
		FieldID:    body.FieldID,
		ScheduleID: body.ScheduleID,
		Date:       date,
		Hour:       *body.Hour,
	})
	if err != nil {
		var priceErr *pricing.NotFoundError
		if errors.As(err, &priceErr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": priceErr.Error()})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "booking created",
		"price_per_hour": result.PricePerHour,
		"total_amount":   result.TotalAmount,
		"booking":        NewBookingResponse(result.Booking),
	})
}

func (h *Handler) Amend(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id", "details": err.Error()})
		return
	}

	var body AmendBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing required fields", "details": err.Error()})
		return
	}

	b, bill, err := h.service.Amend(c.Request.Context(), uri.ID, body.Time, *body.Hour)
	if err != nil {
		// A vanished price rule mid-amend is a server-side inconsistency,
		// but the message is still worth surfacing.
		var priceErr *pricing.NotFoundError
		if errors.As(err, &priceErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": priceErr.Error()})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "booking updated",
		"booking": NewBookingResponse(b),
		"bill":    NewBillResponse(bill),
	})
}

func (h *Handler) ListMine(c *gin.Context) {
	bookings, err := h.service.ListMine(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": items})
}

func (h *Handler) ListBills(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id", "details": err.Error()})
		return
	}

	bills, err := h.service.ListBills(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BillResponse, len(bills))
	for i, b := range bills {
		items[i] = NewBillResponse(b)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bills": items})
}
