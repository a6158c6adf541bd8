package repository

import (
	"time"

	"hall-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HallFilter narrows hall listings. Nil fields are unset.
// Location matches as a case-insensitive substring; the amenities
// subset match happens in the service after the fetch.
type HallFilter struct {
	Location    *string
	CapacityMin *int
	CapacityMax *int
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	IsActive    *bool
}

// BookingFilter narrows booking listings. Nil fields are unset.
// DateFrom/DateTo bound event_date inclusively.
type BookingFilter struct {
	UserID   *uuid.UUID
	HallID   *uuid.UUID
	Status   *entity.BookingStatus
	DateFrom *time.Time
	DateTo   *time.Time
}
