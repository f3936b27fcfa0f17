package http

import (
	"time"

	"github.com/sportbook/field-booking-backend/internal/field"
)

// ListFieldsRequest defines query parameters for listing fields.
type ListFieldsRequest struct {
	Page        int    `form:"page,default=1" binding:"omitempty,gt=0"`
	PageSize    int    `form:"page_size,default=20" binding:"omitempty,gt=0,lte=100"`
	LocationID  int64  `form:"id_location" binding:"omitempty,gt=0"`
	TypeFieldID int64  `form:"id_type_field" binding:"omitempty,gt=0"`
	TypeSportID int64  `form:"id_type_sport" binding:"omitempty,gt=0"`
	Status      string `form:"status" binding:"omitempty,oneof=available maintenance closed"`
}

type ReferenceTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type FieldResponse struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	Address         string       `json:"address"`
	Contact         string       `json:"contact"`
	Description     string       `json:"description"`
	Open            string       `json:"open"`
	Close           string       `json:"close"`
	FieldType       ReferenceTag `json:"field_type"`
	SportType       ReferenceTag `json:"sport_type"`
	Location        ReferenceTag `json:"location"`
	AmountAvailable int          `json:"amount_available"`
	Status          string       `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func NewFieldResponse(f *field.Field) FieldResponse {
	return FieldResponse{
		ID:              f.ID,
		Name:            f.Name,
		Address:         f.Address,
		Contact:         f.Contact,
		Description:     f.Description,
		Open:            f.Open,
		Close:           f.Close,
		FieldType:       ReferenceTag{ID: f.TypeFieldID, Name: f.TypeFieldName},
		SportType:       ReferenceTag{ID: f.TypeSportID, Name: f.TypeSportName},
		Location:        ReferenceTag{ID: f.LocationID, Name: f.LocationName},
		AmountAvailable: f.AmountAvailable,
		Status:          string(f.Status),
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

type CreateFieldRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	Address         string `json:"address" binding:"required"`
	Contact         string `json:"contact" binding:"required"`
	Description     string `json:"description"`
	Open            string `json:"open" binding:"required"`
	Close           string `json:"close" binding:"required"`
	TypeFieldID     int64  `json:"id_type_field" binding:"required,gt=0"`
	TypeSportID     int64  `json:"id_type_sport" binding:"required,gt=0"`
	LocationID      int64  `json:"id_location" binding:"required,gt=0"`
	AmountAvailable *int   `json:"amount_available" binding:"required,gte=0"`
	Status          string `json:"status" binding:"omitempty,oneof=available maintenance closed"`
}

type UpdateFieldRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	Address         *string `json:"address"`
	Contact         *string `json:"contact"`
	Description     *string `json:"description"`
	Open            *string `json:"open"`
	Close           *string `json:"close"`
	TypeFieldID     *int64  `json:"id_type_field" binding:"omitempty,gt=0"`
	TypeSportID     *int64  `json:"id_type_sport" binding:"omitempty,gt=0"`
	LocationID      *int64  `json:"id_location" binding:"omitempty,gt=0"`
	AmountAvailable *int    `json:"amount_available" binding:"omitempty,gte=0"`
	Status          *string `json:"status" binding:"omitempty,oneof=available maintenance closed"`
}
