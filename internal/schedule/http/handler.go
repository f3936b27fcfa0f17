package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sportbook/field-booking-backend/internal/pkg/request"
	"github.com/sportbook/field-booking-backend/internal/pkg/response"
	"github.com/sportbook/field-booking-backend/internal/schedule"
)

type ScheduleResponse struct {
	ID        int64     `json:"id"`
	TimeFrom  string    `json:"time_from"`
	TimeTo    string    `json:"time_to"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewScheduleResponse(s *schedule.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:        s.ID,
		TimeFrom:  s.TimeFrom,
		TimeTo:    s.TimeTo,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type SlotResponse struct {
	ID              int64     `json:"id"`
	ScheduleID      int64     `json:"id_schedule"`
	TypeFieldID     int64     `json:"id_type"`
	FieldID         int64     `json:"id_field"`
	TimeFrom        string    `json:"time_from"`
	TimeTo          string    `json:"time_to"`
	FieldName       string    `json:"field_name"`
	TypeFieldName   string    `json:"type_field_name"`
	AmountAvailable int       `json:"amount_available"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewSlotResponse(s *schedule.FieldSlot) SlotResponse {
	return SlotResponse{
		ID:              s.ID,
		ScheduleID:      s.ScheduleID,
		TypeFieldID:     s.TypeFieldID,
		FieldID:         s.FieldID,
		TimeFrom:        s.TimeFrom,
		TimeTo:          s.TimeTo,
		FieldName:       s.FieldName,
		TypeFieldName:   s.TypeFieldName,
		AmountAvailable: s.AmountAvailable,
		Status:          s.Status,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

type ScheduleRequest struct {
	TimeFrom string `json:"time_from" binding:"required"`
	TimeTo   string `json:"time_to" binding:"required"`
}

type CreateSlotRequest struct {
	ScheduleID      int64  `json:"id_schedule" binding:"required,gt=0"`
	TypeFieldID     int64  `json:"id_type" binding:"required,gt=0"`
	FieldID         int64  `json:"id_field" binding:"required,gt=0"`
	AmountAvailable *int   `json:"amount_available" binding:"required,gte=0"`
	Status          string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateSlotRequest struct {
	ScheduleID      *int64  `json:"id_schedule" binding:"omitempty,gt=0"`
	TypeFieldID     *int64  `json:"id_type" binding:"omitempty,gt=0"`
	FieldID         *int64  `json:"id_field" binding:"omitempty,gt=0"`
	AmountAvailable *int    `json:"amount_available" binding:"omitempty,gte=0"`
	Status          *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ListSlotsRequest struct {
	ScheduleID  int64  `form:"id_schedule" binding:"omitempty,gt=0"`
	FieldID     int64  `form:"id_field" binding:"omitempty,gt=0"`
	TypeFieldID int64  `form:"id_type" binding:"omitempty,gt=0"`
	Status      string `form:"status" binding:"omitempty,oneof=active inactive"`
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

type Handler struct {
	service schedule.Service
}

func NewHandler(service schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body ScheduleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "details": err.Error()})
		return
	}
	if !validClock(body.TimeFrom) || !validClock(body.TimeTo) {
		c.JSON(http.StatusBadRequest, gin.H{"error": `time_from and time_to must be "HH:MM" times`})
		return
	}

	s, err := h.service.Create(c.Request.Context(), body.TimeFrom, body.TimeTo)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": NewScheduleResponse(s)})
}

func (h *Handler) List(c *gin.Context) {
	schedules, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ScheduleResponse, len(schedules))
	for i, s := range schedules {
		items[i] = NewScheduleResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id", "details": err.Error()})
		return
	}

	var body ScheduleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "details": err.Error()})
		return
	}
	if !validClock(body.TimeFrom) || !validClock(body.TimeTo) {
		c.JSON(http.StatusBadRequest, gin.H{"error": `time_from and time_to must be "HH:MM" times`})
		return
	}

	s, err := h.service.Update(c.Request.Context(), uri.ID, body.TimeFrom, body.TimeTo)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": NewScheduleResponse(s)})
}

func (h *Handler) CreateSlot(c *gin.Context) {
	var body CreateSlotRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "details": err.Error()})
		return
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), schedule.CreateSlotRequest{
		ScheduleID:      body.ScheduleID,
		TypeFieldID:     body.TypeFieldID,
		FieldID:         body.FieldID,
		AmountAvailable: *body.AmountAvailable,
		Status:          body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": NewSlotResponse(slot)})
}

func (h *Handler) ListSlots(c *gin.Context) {
	var req ListSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	slots, err := h.service.ListSlots(c.Request.Context(), schedule.SlotFilter{
		ScheduleID:  req.ScheduleID,
		FieldID:     req.FieldID,
		TypeFieldID: req.TypeFieldID,
		Status:      req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

func (h *Handler) UpdateSlot(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id", "details": err.Error()})
		return
	}

	var body UpdateSlotRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	slot, err := h.service.UpdateSlot(c.Request.Context(), uri.ID, schedule.UpdateSlotRequest{
		ScheduleID:      body.ScheduleID,
		TypeFieldID:     body.TypeFieldID,
		FieldID:         body.FieldID,
		AmountAvailable: body.AmountAvailable,
		Status:          body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": NewSlotResponse(slot)})
}
