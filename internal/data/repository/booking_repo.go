package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hall-booking/internal/data/entity"
	"hall-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// Business queries
	FindApprovedForSlot(ctx context.Context, hallID uuid.UUID, eventDate time.Time) ([]*entity.Booking, error)
	FindConflictingApproved(ctx context.Context, hallID uuid.UUID, eventDate time.Time, excludeID uuid.UUID) ([]*entity.Booking, error)
	CountApprovedByHallID(ctx context.Context, hallID uuid.UUID) (int64, error)
	Stats(ctx context.Context, recentSince time.Time) (*entity.BookingStats, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, hall_id, event_date, guest_count, total_amount,
		status, special_requirements, contact_name, contact_phone, contact_email,
		created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.HallID,
		&booking.EventDate,
		&booking.GuestCount,
		&booking.TotalAmount,
		&booking.Status,
		&booking.SpecialRequirements,
		&booking.ContactName,
		&booking.ContactPhone,
		&booking.ContactEmail,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, hall_id, event_date, guest_count, total_amount,
			status, special_requirements, contact_name, contact_phone, contact_email,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.HallID,
		booking.EventDate,
		booking.GuestCount,
		booking.TotalAmount,
		booking.Status,
		booking.SpecialRequirements,
		booking.ContactName,
		booking.ContactPhone,
		booking.ContactEmail,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("hall_id", booking.HallID.String()),
		)
		return fmt.Errorf("create booking for hall %s: %w", booking.HallID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
	`

	var conditions []string
	var args []any

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.HallID != nil {
		args = append(args, *filter.HallID)
		conditions = append(conditions, fmt.Sprintf("hall_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("event_date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("event_date <= $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

// FindApprovedForSlot returns approved bookings for the hall on the exact
// event timestamp, oldest first. Normally the slice has at most one element;
// ordering makes the reported conflict deterministic if a race ever lets
// two approvals through.
func (r *bookingRepository) FindApprovedForSlot(ctx context.Context, hallID uuid.UUID, eventDate time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE hall_id = $1 AND event_date = $2 AND status = 'approved'
		ORDER BY created_at
	`

	return r.queryBookings(ctx, query, hallID, eventDate)
}

func (r *bookingRepository) FindConflictingApproved(ctx context.Context, hallID uuid.UUID, eventDate time.Time, excludeID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE hall_id = $1 AND event_date = $2 AND status = 'approved' AND id <> $3
		ORDER BY created_at
	`

	return r.queryBookings(ctx, query, hallID, eventDate, excludeID)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err))
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountApprovedByHallID(ctx context.Context, hallID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE hall_id = $1 AND status = 'approved'`

	var count int64
	err := r.db.QueryRow(ctx, query, hallID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count approved bookings",
			zap.Error(err),
			zap.String("hall_id", hallID.String()),
		)
		return 0, fmt.Errorf("count approved bookings for hall %s: %w", hallID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) Stats(ctx context.Context, recentSince time.Time) (*entity.BookingStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'approved'),
		       COUNT(*) FILTER (WHERE status = 'rejected'),
		       COUNT(*) FILTER (WHERE status = 'cancelled'),
		       COUNT(*) FILTER (WHERE created_at >= $1),
		       COALESCE(SUM(total_amount) FILTER (WHERE status = 'approved'), 0)
		FROM bookings
	`

	var stats entity.BookingStats
	err := r.db.QueryRow(ctx, query, recentSince).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Approved,
		&stats.Rejected,
		&stats.Cancelled,
		&stats.Recent,
		&stats.Revenue,
	)
	if err != nil {
		r.log.Error("Failed to aggregate booking stats", zap.Error(err))
		return nil, fmt.Errorf("aggregate booking stats: %w", err)
	}

	return &stats, nil
}
