package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is one of the known statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a date-scoped reservation request against a hall.
// TotalAmount is snapshotted from the hall price at creation and is
// never recalculated, even if the hall price changes later.
type Booking struct {
	Base
	UserID              uuid.UUID       `db:"user_id"`
	HallID              uuid.UUID       `db:"hall_id"`
	EventDate           time.Time       `db:"event_date"`
	GuestCount          int             `db:"guest_count"`
	TotalAmount         decimal.Decimal `db:"total_amount"`
	Status              BookingStatus   `db:"status"`
	SpecialRequirements *string         `db:"special_requirements"`
	ContactName         string          `db:"contact_name"`
	ContactPhone        string          `db:"contact_phone"`
	ContactEmail        string          `db:"contact_email"`
}
