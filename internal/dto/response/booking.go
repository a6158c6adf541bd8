package response

import (
	"time"

	"hall-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	HallID              string          `json:"hall_id"`
	EventDate           time.Time       `json:"event_date"`
	GuestCount          int             `json:"guest_count"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	Status              string          `json:"status"`
	SpecialRequirements *string         `json:"special_requirements"`
	ContactName         string          `json:"contact_name"`
	ContactPhone        string          `json:"contact_phone"`
	ContactEmail        string          `json:"contact_email"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type AvailabilityResponse struct {
	HallID               string    `json:"hall_id"`
	EventDate            time.Time `json:"event_date"`
	IsAvailable          bool      `json:"is_available"`
	ConflictingBookingID *string   `json:"conflicting_booking_id"`
}

func BookingToResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                  booking.ID.String(),
		UserID:              booking.UserID.String(),
		HallID:              booking.HallID.String(),
		EventDate:           booking.EventDate,
		GuestCount:          booking.GuestCount,
		TotalAmount:         booking.TotalAmount,
		Status:              string(booking.Status),
		SpecialRequirements: booking.SpecialRequirements,
		ContactName:         booking.ContactName,
		ContactPhone:        booking.ContactPhone,
		ContactEmail:        booking.ContactEmail,
		CreatedAt:           booking.CreatedAt,
		UpdatedAt:           booking.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []*BookingResponse {
	responses := make([]*BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = BookingToResponse(booking)
	}
	return responses
}
