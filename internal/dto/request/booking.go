package request

import "time"

type CreateBookingRequest struct {
	UserID              string  `json:"user_id" validate:"required,uuid4"`
	HallID              string  `json:"hall_id" validate:"required,uuid4"`
	EventDate           string  `json:"event_date" validate:"required"` // RFC 3339 timestamp
	GuestCount          int     `json:"guest_count" validate:"required,gt=0"`
	SpecialRequirements *string `json:"special_requirements,omitempty"`
	ContactName         string  `json:"contact_name" validate:"required,min=2,max=100"`
	ContactPhone        string  `json:"contact_phone" validate:"required,min=10,max=20"`
	ContactEmail        string  `json:"contact_email" validate:"required,email"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected cancelled"`
}

type CancelBookingRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}

// BookingListQuery carries the optional booking list filters.
type BookingListQuery struct {
	UserID   *string
	HallID   *string
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
}
