package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportbook/field-booking-backend/internal/location"
	"github.com/sportbook/field-booking-backend/internal/pkg/request"
	"github.com/sportbook/field-booking-backend/internal/pkg/response"
)

type Handler struct {
	service location.Service
}

func NewHandler(service location.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	search := c.Query("search")

	locations, err := h.service.List(c.Request.Context(), search)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The public contract treats an empty result as 404 rather than an
	// empty page.
	if len(locations) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "no locations found"})
		return
	}

	items := make([]LocationResponse, len(locations))
	for i, l := range locations {
		items[i] = NewResponse(l)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name is required"})
		return
	}

	l, err := h.service.Create(c.Request.Context(), location.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": NewResponse(l)})
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ID is required"})
		return
	}

	var body UpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	l, err := h.service.Update(c.Request.Context(), uri.ID, location.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": NewResponse(l)})
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ID is required"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "location deleted"})
}
