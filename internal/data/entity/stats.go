package entity

import "github.com/shopspring/decimal"

// HallCounts holds the hall-side dashboard aggregates.
type HallCounts struct {
	Total  int64
	Active int64
}

// BookingStats holds the booking-side dashboard aggregates.
// Revenue sums total_amount over approved bookings only.
type BookingStats struct {
	Total     int64
	Pending   int64
	Approved  int64
	Rejected  int64
	Cancelled int64
	Recent    int64
	Revenue   decimal.Decimal
}
