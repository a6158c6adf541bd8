package usecase

import (
	"hall-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	User      UserService
	Hall      HallService
	Booking   BookingService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		User:      NewUserService(repo.User, log),
		Hall:      NewHallService(repo, log),
		Booking:   NewBookingService(repo, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
