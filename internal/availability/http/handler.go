package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sportbook/field-booking-backend/internal/availability"
	"github.com/sportbook/field-booking-backend/internal/pkg/response"
)

type ListAvailableRequest struct {
	Date       string `form:"date" binding:"required"`
	ScheduleID int64  `form:"id_schedule" binding:"omitempty,gt=0"`
}

type SlotResponse struct {
	SlotID        int64    `json:"id"`
	FieldID       int64    `json:"id_field"`
	FieldName     string   `json:"field_name"`
	TypeFieldID   int64    `json:"id_type_field"`
	TypeFieldName string   `json:"type_field_name"`
	ScheduleID    int64    `json:"id_schedule"`
	TimeFrom      string   `json:"time_from"`
	TimeTo        string   `json:"time_to"`
	Remaining     float64  `json:"remaining"`
	PricePerHour  *float64 `json:"price_per_hour"`
}

func NewSlotResponse(s *availability.Slot) SlotResponse {
	return SlotResponse{
		SlotID:        s.SlotID,
		FieldID:       s.FieldID,
		FieldName:     s.FieldName,
		TypeFieldID:   s.TypeFieldID,
		TypeFieldName: s.TypeFieldName,
		ScheduleID:    s.ScheduleID,
		TimeFrom:      s.TimeFrom,
		TimeTo:        s.TimeTo,
		Remaining:     s.Remaining,
		PricePerHour:  s.PricePerHour,
	}
}

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListAvailable(c *gin.Context) {
	var req ListAvailableRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date is required"})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": `date must be formatted as "YYYY-MM-DD"`})
		return
	}

	slots, err := h.service.ListForDate(c.Request.Context(), date, availability.Filter{ScheduleID: req.ScheduleID})
	if err != nil {
		response.Error(c, err)
		return
	}

	if len(slots) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "no fields available on that date"})
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}
