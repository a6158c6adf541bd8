package entity

import "github.com/shopspring/decimal"

// Hall is a bookable venue listing. Halls are never hard-deleted;
// IsActive=false retires a hall while keeping its booking history.
type Hall struct {
	Base
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Location     string          `db:"location"`
	Capacity     int             `db:"capacity"`
	PricePerDay  decimal.Decimal `db:"price_per_day"`
	Amenities    []string        `db:"amenities"`
	ContactPhone string          `db:"contact_phone"`
	ContactEmail string          `db:"contact_email"`
	Images       []string        `db:"images"` // nil when the listing has no images
	IsActive     bool            `db:"is_active"`
}
