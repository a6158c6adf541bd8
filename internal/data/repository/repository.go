package repository

import (
	"hall-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Hall    HallRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Hall:    NewHallRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
