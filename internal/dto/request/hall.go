package request

import "github.com/shopspring/decimal"

type CreateHallRequest struct {
	Name         string          `json:"name" validate:"required,min=3,max=200"`
	Description  string          `json:"description" validate:"required,min=10"`
	Location     string          `json:"location" validate:"required,min=5,max=200"`
	Capacity     int             `json:"capacity" validate:"required,gt=0"`
	PricePerDay  decimal.Decimal `json:"price_per_day" validate:"required"`
	Amenities    []string        `json:"amenities,omitempty"`
	ContactPhone string          `json:"contact_phone" validate:"required,min=10,max=20"`
	ContactEmail string          `json:"contact_email" validate:"required,email"`
	Images       []string        `json:"images,omitempty"`
	IsActive     *bool           `json:"is_active,omitempty"`
}

// UpdateHallRequest is a patch: only non-nil fields are applied.
type UpdateHallRequest struct {
	Name         *string          `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Description  *string          `json:"description,omitempty" validate:"omitempty,min=10"`
	Location     *string          `json:"location,omitempty" validate:"omitempty,min=5,max=200"`
	Capacity     *int             `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	PricePerDay  *decimal.Decimal `json:"price_per_day,omitempty"`
	Amenities    *[]string        `json:"amenities,omitempty"`
	ContactPhone *string          `json:"contact_phone,omitempty" validate:"omitempty,min=10,max=20"`
	ContactEmail *string          `json:"contact_email,omitempty" validate:"omitempty,email"`
	Images       *[]string        `json:"images,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

// HallListQuery carries the optional hall list filters.
type HallListQuery struct {
	Location    *string
	CapacityMin *int
	CapacityMax *int
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	Amenities   []string
	IsActive    *bool
}
