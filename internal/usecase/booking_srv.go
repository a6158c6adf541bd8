package usecase

import (
	"context"
	"time"

	"hall-booking/internal/data/entity"
	"hall-booking/internal/data/repository"
	"hall-booking/internal/dto/request"
	"hall-booking/internal/dto/response"
	"hall-booking/pkg/apperror"
	"hall-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// cancelCutoff is the minimum lead time for a user-initiated cancel.
// Exactly 24 hours before the event still cancels.
const cancelCutoff = 24 * time.Hour

type BookingService interface {
	CheckAvailability(ctx context.Context, hallID string, eventDate time.Time) (*response.AvailabilityResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookings(ctx context.Context, query *request.BookingListQuery) ([]*response.BookingResponse, error)
	// GetBookingByID returns (nil, nil) when the booking does not exist.
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string, userID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) CheckAvailability(ctx context.Context, hallID string, eventDate time.Time) (*response.AvailabilityResponse, error) {
	id, err := parseID("hall", hallID)
	if err != nil {
		return nil, err
	}

	conflicts, err := s.repo.Booking.FindApprovedForSlot(ctx, id, eventDate)
	if err != nil {
		return nil, apperror.Internal(err, "check availability for hall %s", hallID)
	}

	resp := &response.AvailabilityResponse{
		HallID:      hallID,
		EventDate:   eventDate,
		IsAvailable: len(conflicts) == 0,
	}
	if len(conflicts) > 0 {
		conflictID := conflicts[0].ID.String()
		resp.ConflictingBookingID = &conflictID
	}

	return resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := parseID("user", req.UserID)
	if err != nil {
		return nil, err
	}
	hallID, err := parseID("hall", req.HallID)
	if err != nil {
		return nil, err
	}
	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		return nil, apperror.Validation("event_date must be an RFC 3339 timestamp")
	}

	// Precondition checks, in order, each failing fast.
	if !eventDate.After(s.now()) {
		return nil, apperror.Validation("event date must be in the future")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err, "find user %s", req.UserID)
	}
	if user == nil {
		return nil, apperror.NotFound("user %s not found", req.UserID)
	}

	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return nil, apperror.Internal(err, "find hall %s", req.HallID)
	}
	if hall == nil {
		return nil, apperror.NotFound("hall %s not found", req.HallID)
	}

	if !hall.IsActive {
		return nil, apperror.State("hall %s is not active", req.HallID)
	}

	conflicts, err := s.repo.Booking.FindApprovedForSlot(ctx, hallID, eventDate)
	if err != nil {
		return nil, apperror.Internal(err, "check hall availability")
	}
	if len(conflicts) > 0 {
		return nil, apperror.Conflict("hall is not available on the requested date")
	}

	// The availability check and the insert are not atomic; two
	// concurrent requests can both pass the check. Approval runs the
	// conflict check again, so only approval can double-book a slot.
	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:              userID,
		HallID:              hallID,
		EventDate:           eventDate,
		GuestCount:          req.GuestCount,
		TotalAmount:         hall.PricePerDay.Round(2), // price snapshot, never recalculated
		Status:              entity.BookingStatusPending,
		SpecialRequirements: req.SpecialRequirements,
		ContactName:         req.ContactName,
		ContactPhone:        req.ContactPhone,
		ContactEmail:        req.ContactEmail,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, apperror.Internal(err, "create booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("hall_id", req.HallID),
		zap.Time("event_date", eventDate),
		zap.String("total_amount", booking.TotalAmount.String()),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) GetBookings(ctx context.Context, query *request.BookingListQuery) ([]*response.BookingResponse, error) {
	filter := repository.BookingFilter{}

	if query != nil {
		if query.UserID != nil {
			id, err := parseID("user", *query.UserID)
			if err != nil {
				return nil, err
			}
			filter.UserID = &id
		}
		if query.HallID != nil {
			id, err := parseID("hall", *query.HallID)
			if err != nil {
				return nil, err
			}
			filter.HallID = &id
		}
		if query.Status != nil {
			status := entity.BookingStatus(*query.Status)
			if !entity.ValidBookingStatus(status) {
				return nil, apperror.Validation("invalid booking status %s", *query.Status)
			}
			filter.Status = &status
		}
		filter.DateFrom = query.DateFrom
		filter.DateTo = query.DateTo
	}

	bookings, err := s.repo.Booking.FindAll(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err, "get bookings")
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "get booking %s", bookingID)
	}
	if booking == nil {
		return nil, nil
	}

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, status string) (*response.BookingResponse, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}

	newStatus := entity.BookingStatus(status)
	if !entity.ValidBookingStatus(newStatus) || newStatus == entity.BookingStatusPending {
		return nil, apperror.Validation("invalid booking status %s", status)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "find booking %s", bookingID)
	}
	if booking == nil {
		return nil, apperror.NotFound("booking %s not found", bookingID)
	}

	// Second line of defense: an availability check done before this
	// approval may be stale, so re-check the slot excluding this booking.
	if newStatus == entity.BookingStatusApproved {
		conflicts, err := s.repo.Booking.FindConflictingApproved(ctx, booking.HallID, booking.EventDate, booking.ID)
		if err != nil {
			return nil, apperror.Internal(err, "check approval conflicts")
		}
		if len(conflicts) > 0 {
			return nil, apperror.Conflict("hall is already booked for this date")
		}
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, apperror.Internal(err, "update booking %s status", bookingID)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(newStatus)),
	)

	booking.Status = newStatus
	booking.UpdatedAt = s.now()

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, userID string) (*response.BookingResponse, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}
	requesterID, err := parseID("user", userID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "find booking %s", bookingID)
	}
	if booking == nil {
		return nil, apperror.NotFound("booking %s not found", bookingID)
	}

	if booking.UserID != requesterID {
		return nil, apperror.Forbidden("you can only cancel your own bookings")
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, apperror.State("booking is already cancelled")
	}

	if booking.EventDate.Sub(s.now()) < cancelCutoff {
		return nil, apperror.State("bookings can only be cancelled at least 24 hours before the event date")
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		return nil, apperror.Internal(err, "cancel booking %s", bookingID)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID),
	)

	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = s.now()

	return response.BookingToResponse(booking), nil
}
