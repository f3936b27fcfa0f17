package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sportbook/field-booking-backend/internal/field"
	"github.com/sportbook/field-booking-backend/internal/pkg/request"
	"github.com/sportbook/field-booking-backend/internal/pkg/response"
)

type Handler struct {
	service field.Service
}

func NewHandler(service field.Service) *Handler {
	return &Handler{service: service}
}

// validClock reports whether s is a valid "HH:MM" time of day.
func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func (h *Handler) List(c *gin.Context) {
	var req ListFieldsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := field.Filter{
		LocationID:  req.LocationID,
		TypeFieldID: req.TypeFieldID,
		TypeSportID: req.TypeSportID,
		Status:      req.Status,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}

	fields, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FieldResponse, len(fields))
	for i, f := range fields {
		items[i] = NewFieldResponse(f)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id", "details": err.Error()})
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "field": NewFieldResponse(f)})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateFieldRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field(s)", "details": err.Error()})
		return
	}

	if !validClock(body.Open) || !validClock(body.Close) {
		c.JSON(http.StatusBadRequest, gin.H{"error": `open and close must be "HH:MM" times`})
		return
	}

	f, err := h.service.Create(c.Request.Context(), field.CreateRequest{
		Name:            body.Name,
		Address:         body.Address,
		Contact:         body.Contact,
		Description:     body.Description,
		Open:            body.Open,
		Close:           body.Close,
		TypeFieldID:     body.TypeFieldID,
		TypeSportID:     body.TypeSportID,
		LocationID:      body.LocationID,
		AmountAvailable: *body.AmountAvailable,
		Status:          field.Status(body.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "SUCCESS", "field": NewFieldResponse(f)})
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id", "details": err.Error()})
		return
	}

	var body UpdateFieldRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if (body.Open != nil && !validClock(*body.Open)) || (body.Close != nil && !validClock(*body.Close)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": `open and close must be "HH:MM" times`})
		return
	}

	req := field.UpdateRequest{
		Name:            body.Name,
		Address:         body.Address,
		Contact:         body.Contact,
		Description:     body.Description,
		Open:            body.Open,
		Close:           body.Close,
		TypeFieldID:     body.TypeFieldID,
		TypeSportID:     body.TypeSportID,
		LocationID:      body.LocationID,
		AmountAvailable: body.AmountAvailable,
	}
	if body.Status != nil {
		st := field.Status(*body.Status)
		req.Status = &st
	}

	f, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "field": NewFieldResponse(f)})
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

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "field deleted"})
}
