package response

import (
	"time"

	"hall-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type HallResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	Capacity     int             `json:"capacity"`
	PricePerDay  decimal.Decimal `json:"price_per_day"`
	Amenities    []string        `json:"amenities"`
	ContactPhone string          `json:"contact_phone"`
	ContactEmail string          `json:"contact_email"`
	Images       []string        `json:"images"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func HallToResponse(hall *entity.Hall) *HallResponse {
	amenities := hall.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &HallResponse{
		ID:           hall.ID.String(),
		Name:         hall.Name,
		Description:  hall.Description,
		Location:     hall.Location,
		Capacity:     hall.Capacity,
		PricePerDay:  hall.PricePerDay,
		Amenities:    amenities,
		ContactPhone: hall.ContactPhone,
		ContactEmail: hall.ContactEmail,
		Images:       hall.Images,
		IsActive:     hall.IsActive,
		CreatedAt:    hall.CreatedAt,
		UpdatedAt:    hall.UpdatedAt,
	}
}

func HallsToResponse(halls []*entity.Hall) []*HallResponse {
	responses := make([]*HallResponse, len(halls))
	for i, hall := range halls {
		responses[i] = HallToResponse(hall)
	}
	return responses
}
