package usecase

import (
	"context"
	"time"

	"hall-booking/internal/data/repository"
	"hall-booking/internal/dto/response"
	"hall-booking/pkg/apperror"

	"go.uber.org/zap"
)

// recentWindow is the lookback for the "recent bookings" counter.
const recentWindow = 30 * 24 * time.Hour

type DashboardService interface {
	GetStats(ctx context.Context) (*response.DashboardStatsResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
		now:  time.Now,
	}
}

// GetStats recomputes all aggregates on every call; there is no cache,
// so a status change shows up on the next read.
func (s *dashboardService) GetStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	hallCounts, err := s.repo.Hall.Counts(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "count halls")
	}

	bookingStats, err := s.repo.Booking.Stats(ctx, s.now().Add(-recentWindow))
	if err != nil {
		return nil, apperror.Internal(err, "aggregate booking stats")
	}

	return &response.DashboardStatsResponse{
		TotalHalls:        hallCounts.Total,
		ActiveHalls:       hallCounts.Active,
		TotalBookings:     bookingStats.Total,
		PendingBookings:   bookingStats.Pending,
		ApprovedBookings:  bookingStats.Approved,
		RejectedBookings:  bookingStats.Rejected,
		CancelledBookings: bookingStats.Cancelled,
		TotalRevenue:      bookingStats.Revenue,
		RecentBookings:    bookingStats.Recent,
	}, nil
}
