package usecase

import (
	"context"
	"testing"

	"hall-booking/internal/data/entity"
	"hall-booking/internal/dto/request"
	"hall-booking/pkg/apperror"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestCreateHall(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	t.Run("defaults and rounding", func(t *testing.T) {
		resp, err := env.hall.CreateHall(ctx, &request.CreateHallRequest{
			Name:         "Royal Banquet",
			Description:  "Banquet hall near the motorway interchange",
			Location:     "DHA Phase 5, Karachi",
			Capacity:     300,
			PricePerDay:  decimal.RequireFromString("12500.999"),
			ContactPhone: "02135551234",
			ContactEmail: "info@royalbanquet.example.com",
		})
		if err != nil {
			t.Fatalf("CreateHall() error = %v", err)
		}
		if !resp.IsActive {
			t.Error("hall should default to active")
		}
		if !resp.PricePerDay.Equal(decimal.RequireFromString("12501.00")) {
			t.Errorf("price_per_day = %s, want 12501.00", resp.PricePerDay)
		}
		if resp.Amenities == nil || len(resp.Amenities) != 0 {
			t.Errorf("amenities = %v, want empty non-nil slice", resp.Amenities)
		}
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := env.hall.CreateHall(ctx, &request.CreateHallRequest{
			Name:         "Zero Hall",
			Description:  "Priced at exactly nothing",
			Location:     "Johar Town, Lahore",
			Capacity:     100,
			PricePerDay:  decimal.RequireFromString("-1"),
			ContactPhone: "04235551234",
			ContactEmail: "info@zerohall.example.com",
		})
		if !apperror.IsKind(err, apperror.KindValidation) {
			t.Errorf("want validation error, got %v", err)
		}
	})

	t.Run("rejects short name", func(t *testing.T) {
		_, err := env.hall.CreateHall(ctx, &request.CreateHallRequest{
			Name:         "ab",
			Description:  "Name is below the minimum length",
			Location:     "Saddar, Rawalpindi",
			Capacity:     100,
			PricePerDay:  decimal.RequireFromString("5000"),
			ContactPhone: "05135551234",
			ContactEmail: "info@example.com",
		})
		if !apperror.IsKind(err, apperror.KindValidation) {
			t.Errorf("want validation error, got %v", err)
		}
	})
}

func TestGetHallsFilters(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	small := env.addHall("8000.00", true)
	small.Name = "Small Hall"
	small.Capacity = 150
	small.Location = "Model Town, Lahore"
	small.Amenities = []string{"Parking"}

	large := env.addHall("25000.00", true)
	large.Name = "Large Hall"
	large.Capacity = 800
	large.Amenities = []string{"Valet Parking", "Catering", "Stage"}

	inactive := env.addHall("5000.00", false)
	inactive.Name = "Closed Hall"

	t.Run("no filters returns everything", func(t *testing.T) {
		got, err := env.hall.GetHalls(ctx, nil)
		if err != nil {
			t.Fatalf("GetHalls() error = %v", err)
		}
		if len(got) != 3 {
			t.Errorf("got %d halls, want 3", len(got))
		}
	})

	t.Run("location substring is case-insensitive", func(t *testing.T) {
		got, err := env.hall.GetHalls(ctx, &request.HallListQuery{Location: strPtr("model town")})
		if err != nil {
			t.Fatalf("GetHalls() error = %v", err)
		}
		if len(got) != 1 || got[0].Name != "Small Hall" {
			t.Errorf("location filter returned %d halls", len(got))
		}
	})

	t.Run("capacity range", func(t *testing.T) {
		got, err := env.hall.GetHalls(ctx, &request.HallListQuery{
			CapacityMin: intPtr(100),
			CapacityMax: intPtr(500),
		})
		if err != nil {
			t.Fatalf("GetHalls() error = %v", err)
		}
		if len(got) != 1 || got[0].Name != "Small Hall" {
			t.Errorf("capacity filter returned %d halls", len(got))
		}
	})

	t.Run("price range", func(t *testing.T) {
		min := decimal.RequireFromString("10000")
		got, err := env.hall.GetHalls(ctx, &request.HallListQuery{PriceMin: &min})
		if err != nil {
			t.Fatalf("GetHalls() error = %v", err)
		}
		if len(got) != 1 || got[0].Name != "Large Hall" {
			t.Errorf("price filter returned %d halls", len(got))
		}
	})

	t.Run("active only", func(t *testing.T) {
		got, err := env.hall.GetHalls(ctx, &request.HallListQuery{IsActive: boolPtr(true)})
		if err != nil {
			t.Fatalf("GetHalls() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("active filter returned %d halls, want 2", len(got))
		}
	})

	t.Run("amenities match as substrings", func(t *testing.T) {
		got, err := env.hall.GetHalls(ctx, &request.HallListQuery{
			Amenities: []string{"parking", "catering"},
		})
		if err != nil {
			t.Fatalf("GetHalls() error = %v", err)
		}
		if len(got) != 1 || got[0].Name != "Large Hall" {
			t.Errorf("amenities filter returned %d halls", len(got))
		}
	})

	t.Run("unmatched amenity returns none", func(t *testing.T) {
		got, err := env.hall.GetHalls(ctx, &request.HallListQuery{
			Amenities: []string{"Helipad"},
		})
		if err != nil {
			t.Fatalf("GetHalls() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d halls, want 0", len(got))
		}
	})
}

func TestGetHallByID(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	hall := env.addHall("15000.00", true)

	t.Run("found", func(t *testing.T) {
		resp, err := env.hall.GetHallByID(ctx, hall.ID.String())
		if err != nil {
			t.Fatalf("GetHallByID() error = %v", err)
		}
		if resp == nil || resp.ID != hall.ID.String() {
			t.Errorf("got %v, want hall %s", resp, hall.ID)
		}
	})

	t.Run("missing hall yields nil, not an error", func(t *testing.T) {
		resp, err := env.hall.GetHallByID(ctx, "3f2c7a84-9d1e-4b6a-8c5d-2e1f0a9b8c7d")
		if err != nil {
			t.Fatalf("GetHallByID() error = %v", err)
		}
		if resp != nil {
			t.Errorf("got %v, want nil", resp)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := env.hall.GetHallByID(ctx, "not-a-uuid")
		if !apperror.IsKind(err, apperror.KindValidation) {
			t.Errorf("want validation error, got %v", err)
		}
	})
}

func TestUpdateHall(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	hall := env.addHall("15000.00", true)

	t.Run("patch applies only provided fields", func(t *testing.T) {
		price := decimal.RequireFromString("18000.004")
		resp, err := env.hall.UpdateHall(ctx, hall.ID.String(), &request.UpdateHallRequest{
			Capacity:    intPtr(600),
			PricePerDay: &price,
		})
		if err != nil {
			t.Fatalf("UpdateHall() error = %v", err)
		}
		if resp.Capacity != 600 {
			t.Errorf("capacity = %d, want 600", resp.Capacity)
		}
		if !resp.PricePerDay.Equal(decimal.RequireFromString("18000.00")) {
			t.Errorf("price_per_day = %s, want 18000.00", resp.PricePerDay)
		}
		if resp.Name != "Grand Palace" {
			t.Errorf("name = %s, want untouched", resp.Name)
		}
	})

	t.Run("amenities can be cleared with an empty slice", func(t *testing.T) {
		empty := []string{}
		resp, err := env.hall.UpdateHall(ctx, hall.ID.String(), &request.UpdateHallRequest{
			Amenities: &empty,
		})
		if err != nil {
			t.Fatalf("UpdateHall() error = %v", err)
		}
		if len(resp.Amenities) != 0 {
			t.Errorf("amenities = %v, want empty", resp.Amenities)
		}
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		zero := decimal.Zero
		_, err := env.hall.UpdateHall(ctx, hall.ID.String(), &request.UpdateHallRequest{
			PricePerDay: &zero,
		})
		if !apperror.IsKind(err, apperror.KindValidation) {
			t.Errorf("want validation error, got %v", err)
		}
	})

	t.Run("unknown hall", func(t *testing.T) {
		_, err := env.hall.UpdateHall(ctx, "3f2c7a84-9d1e-4b6a-8c5d-2e1f0a9b8c7d", &request.UpdateHallRequest{
			Capacity: intPtr(100),
		})
		if !apperror.IsKind(err, apperror.KindNotFound) {
			t.Errorf("want not found, got %v", err)
		}
	})
}

func TestDeactivateHall(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user := env.addUser()
	free := env.addHall("15000.00", true)
	busy := env.addHall("20000.00", true)
	env.addBooking(user, busy, env.now.AddDate(0, 1, 0), entity.BookingStatusApproved)

	t.Run("unknown hall", func(t *testing.T) {
		err := env.hall.DeactivateHall(ctx, "3f2c7a84-9d1e-4b6a-8c5d-2e1f0a9b8c7d")
		if !apperror.IsKind(err, apperror.KindNotFound) {
			t.Errorf("want not found, got %v", err)
		}
	})

	t.Run("approved bookings block deactivation", func(t *testing.T) {
		err := env.hall.DeactivateHall(ctx, busy.ID.String())
		if !apperror.IsKind(err, apperror.KindConflict) {
			t.Errorf("want conflict, got %v", err)
		}
		if !busy.IsActive {
			t.Error("hall should remain active after a refused deactivation")
		}
	})

	t.Run("deactivates once, then reports state", func(t *testing.T) {
		if err := env.hall.DeactivateHall(ctx, free.ID.String()); err != nil {
			t.Fatalf("DeactivateHall() error = %v", err)
		}
		if free.IsActive {
			t.Error("hall should be inactive after deactivation")
		}

		err := env.hall.DeactivateHall(ctx, free.ID.String())
		if !apperror.IsKind(err, apperror.KindState) {
			t.Errorf("second deactivation: want state error, got %v", err)
		}
	})

	t.Run("pending bookings do not block", func(t *testing.T) {
		hall := env.addHall("9000.00", true)
		env.addBooking(user, hall, env.now.AddDate(0, 1, 0), entity.BookingStatusPending)
		if err := env.hall.DeactivateHall(ctx, hall.ID.String()); err != nil {
			t.Errorf("DeactivateHall() error = %v", err)
		}
	})
}
