package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hall-booking/internal/data/entity"
	"hall-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// In-memory repository fakes. Filter behavior mirrors the SQL in
// internal/data/repository so service tests exercise the same semantics.

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	return f.users, nil
}

type fakeHallRepo struct {
	halls []*entity.Hall
}

func (f *fakeHallRepo) Create(_ context.Context, hall *entity.Hall) error {
	f.halls = append(f.halls, hall)
	return nil
}

func (f *fakeHallRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Hall, error) {
	for _, h := range f.halls {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, nil
}

func (f *fakeHallRepo) FindAll(_ context.Context, filter repository.HallFilter) ([]*entity.Hall, error) {
	var out []*entity.Hall
	for _, h := range f.halls {
		if filter.Location != nil && !strings.Contains(strings.ToLower(h.Location), strings.ToLower(*filter.Location)) {
			continue
		}
		if filter.CapacityMin != nil && h.Capacity < *filter.CapacityMin {
			continue
		}
		if filter.CapacityMax != nil && h.Capacity > *filter.CapacityMax {
			continue
		}
		if filter.PriceMin != nil && h.PricePerDay.LessThan(*filter.PriceMin) {
			continue
		}
		if filter.PriceMax != nil && h.PricePerDay.GreaterThan(*filter.PriceMax) {
			continue
		}
		if filter.IsActive != nil && h.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHallRepo) Update(_ context.Context, hall *entity.Hall) error {
	for i, h := range f.halls {
		if h.ID == hall.ID {
			f.halls[i] = hall
			return nil
		}
	}
	return fmt.Errorf("hall %s not found", hall.ID.String())
}

func (f *fakeHallRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for _, h := range f.halls {
		if h.ID == id {
			h.IsActive = false
			h.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("hall %s not found", id.String())
}

func (f *fakeHallRepo) Counts(_ context.Context) (entity.HallCounts, error) {
	var counts entity.HallCounts
	for _, h := range f.halls {
		counts.Total++
		if h.IsActive {
			counts.Active++
		}
	}
	return counts, nil
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		if filter.HallID != nil && b.HallID != *filter.HallID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.DateFrom != nil && b.EventDate.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && b.EventDate.After(*filter.DateTo) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	for _, b := range f.bookings {
		if b.ID == bookingID {
			b.Status = status
			b.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", bookingID.String())
}

func (f *fakeBookingRepo) FindApprovedForSlot(_ context.Context, hallID uuid.UUID, eventDate time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.HallID == hallID && b.EventDate.Equal(eventDate) && b.Status == entity.BookingStatusApproved {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindConflictingApproved(_ context.Context, hallID uuid.UUID, eventDate time.Time, excludeID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.ID == excludeID {
			continue
		}
		if b.HallID == hallID && b.EventDate.Equal(eventDate) && b.Status == entity.BookingStatusApproved {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountApprovedByHallID(_ context.Context, hallID uuid.UUID) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.HallID == hallID && b.Status == entity.BookingStatusApproved {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) Stats(_ context.Context, recentSince time.Time) (*entity.BookingStats, error) {
	stats := &entity.BookingStats{Revenue: decimal.Zero}
	for _, b := range f.bookings {
		stats.Total++
		switch b.Status {
		case entity.BookingStatusPending:
			stats.Pending++
		case entity.BookingStatusApproved:
			stats.Approved++
			stats.Revenue = stats.Revenue.Add(b.TotalAmount)
		case entity.BookingStatusRejected:
			stats.Rejected++
		case entity.BookingStatusCancelled:
			stats.Cancelled++
		}
		if !b.CreatedAt.Before(recentSince) {
			stats.Recent++
		}
	}
	return stats, nil
}

// testEnv bundles the fakes with services running on a fixed clock.
type testEnv struct {
	users     *fakeUserRepo
	halls     *fakeHallRepo
	bookings  *fakeBookingRepo
	repo      *repository.Repository
	now       time.Time
	user      UserService
	hall      HallService
	booking   *bookingService
	dashboard *dashboardService
}

func newTestEnv() *testEnv {
	users := &fakeUserRepo{}
	halls := &fakeHallRepo{}
	bookings := &fakeBookingRepo{}
	repo := &repository.Repository{
		User:    users,
		Hall:    halls,
		Booking: bookings,
	}

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	log := zap.NewNop()

	return &testEnv{
		users:    users,
		halls:    halls,
		bookings: bookings,
		repo:     repo,
		now:      now,
		user:     NewUserService(users, log),
		hall:     NewHallService(repo, log),
		booking: &bookingService{
			repo: repo,
			log:  log,
			now:  func() time.Time { return now },
		},
		dashboard: &dashboardService{
			repo: repo,
			log:  log,
			now:  func() time.Time { return now },
		},
	}
}

func (e *testEnv) addUser() *entity.User {
	user := &entity.User{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: e.now},
		Name:       "Test User",
		Email:      fmt.Sprintf("user-%d@example.com", len(e.users.users)),
		Phone:      "03001234567",
		Role:       entity.RoleUser,
	}
	e.users.users = append(e.users.users, user)
	return user
}

func (e *testEnv) addHall(price string, active bool) *entity.Hall {
	hall := &entity.Hall{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: e.now, UpdatedAt: e.now},
		Name:         "Grand Palace",
		Description:  "Spacious hall for large events",
		Location:     "Gulberg, Lahore",
		Capacity:     500,
		PricePerDay:  decimal.RequireFromString(price),
		Amenities:    []string{"Parking", "Catering", "Air Conditioning"},
		ContactPhone: "04211122233",
		ContactEmail: "bookings@grandpalace.example.com",
		IsActive:     active,
	}
	e.halls.halls = append(e.halls.halls, hall)
	return hall
}

func (e *testEnv) addBooking(user *entity.User, hall *entity.Hall, eventDate time.Time, status entity.BookingStatus) *entity.Booking {
	booking := &entity.Booking{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: e.now, UpdatedAt: e.now},
		UserID:       user.ID,
		HallID:       hall.ID,
		EventDate:    eventDate,
		GuestCount:   200,
		TotalAmount:  hall.PricePerDay,
		Status:       status,
		ContactName:  user.Name,
		ContactPhone: user.Phone,
		ContactEmail: user.Email,
	}
	e.bookings.bookings = append(e.bookings.bookings, booking)
	return booking
}
