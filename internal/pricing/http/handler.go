package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sportbook/field-booking-backend/internal/pkg/request"
	"github.com/sportbook/field-booking-backend/internal/pkg/response"
	"github.com/sportbook/field-booking-backend/internal/pricing"
)

type RuleResponse struct {
	ID            int64     `json:"id"`
	TypeFieldID   int64     `json:"id_type_field"`
	TypeFieldName string    `json:"type_field_name"`
	DayOfWeek     int       `json:"day_of_week"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Price         float64   `json:"price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewRuleResponse(r *pricing.Rule) RuleResponse {
	return RuleResponse{
		ID:            r.ID,
		TypeFieldID:   r.TypeFieldID,
		TypeFieldName: r.TypeFieldName,
		DayOfWeek:     r.DayOfWeek,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Price:         r.Price,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type CreateRuleRequest struct {
	TypeFieldID int64    `json:"id_type_field" binding:"required,gt=0"`
	DayOfWeek   *int     `json:"day_of_week" binding:"required,gte=0,lte=6"`
	StartTime   string   `json:"start_time" binding:"required"`
	EndTime     string   `json:"end_time" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gt=0"`
}

type UpdateRuleRequest struct {
	TypeFieldID *int64   `json:"id_type_field" binding:"omitempty,gt=0"`
	DayOfWeek   *int     `json:"day_of_week" binding:"omitempty,gte=0,lte=6"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
}

type ListRulesRequest struct {
	TypeFieldID int64 `form:"id_type_field" binding:"omitempty,gt=0"`
	DayOfWeek   *int  `form:"day_of_week" binding:"omitempty,gte=0,lte=6"`
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

type Handler struct {
	service pricing.Service
}

func NewHandler(service pricing.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRuleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "details": err.Error()})
		return
	}
	if !validClock(body.StartTime) || !validClock(body.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": `start_time and end_time must be "HH:MM" times`})
		return
	}

	rule, err := h.service.Create(c.Request.Context(), pricing.CreateRequest{
		TypeFieldID: body.TypeFieldID,
		DayOfWeek:   *body.DayOfWeek,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		Price:       *body.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": NewRuleResponse(rule)})
}

func (h *Handler) List(c *gin.Context) {
	var req ListRulesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	rules, err := h.service.List(c.Request.Context(), pricing.Filter{
		TypeFieldID: req.TypeFieldID,
		DayOfWeek:   req.DayOfWeek,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RuleResponse, len(rules))
	for i, r := range rules {
		items[i] = NewRuleResponse(r)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id", "details": err.Error()})
		return
	}

	var body UpdateRuleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if (body.StartTime != nil && !validClock(*body.StartTime)) || (body.EndTime != nil && !validClock(*body.EndTime)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": `start_time and end_time must be "HH:MM" times`})
		return
	}

	rule, err := h.service.Update(c.Request.Context(), uri.ID, pricing.UpdateRequest{
		TypeFieldID: body.TypeFieldID,
		DayOfWeek:   body.DayOfWeek,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		Price:       body.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": NewRuleResponse(rule)})
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "price rule deleted"})
}
