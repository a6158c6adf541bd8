package usecase

import (
	"context"
	"testing"

	"hall-booking/internal/data/entity"
	"hall-booking/internal/dto/request"
	"hall-booking/pkg/apperror"
)

func TestCreateUser(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	t.Run("role defaults to user", func(t *testing.T) {
		resp, err := env.user.CreateUser(ctx, &request.CreateUserRequest{
			Name:  "Bilal Ahmed",
			Email: "bilal@example.com",
			Phone: "03211234567",
		})
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if resp.Role != string(entity.RoleUser) {
			t.Errorf("role = %s, want user", resp.Role)
		}
		if resp.ID == "" {
			t.Error("expected a generated id")
		}
	})

	t.Run("explicit admin role", func(t *testing.T) {
		resp, err := env.user.CreateUser(ctx, &request.CreateUserRequest{
			Name:  "Admin",
			Email: "admin@example.com",
			Phone: "03211234568",
			Role:  "admin",
		})
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if resp.Role != string(entity.RoleAdmin) {
			t.Errorf("role = %s, want admin", resp.Role)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := env.user.CreateUser(ctx, &request.CreateUserRequest{
			Name:  "Second Bilal",
			Email: "bilal@example.com",
			Phone: "03211234569",
		})
		if !apperror.IsKind(err, apperror.KindConflict) {
			t.Errorf("want conflict, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := env.user.CreateUser(ctx, &request.CreateUserRequest{
			Name:  "X",
			Email: "not-an-email",
			Phone: "123",
		})
		if !apperror.IsKind(err, apperror.KindValidation) {
			t.Errorf("want validation error, got %v", err)
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := env.user.CreateUser(ctx, &request.CreateUserRequest{
			Name:  "Role Tester",
			Email: "roles@example.com",
			Phone: "03211234570",
			Role:  "owner",
		})
		if !apperror.IsKind(err, apperror.KindValidation) {
			t.Errorf("want validation error, got %v", err)
		}
	})
}

func TestGetUsers(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addUser()
	env.addUser()

	got, err := env.user.GetUsers(ctx)
	if err != nil {
		t.Fatalf("GetUsers() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d users, want 2", len(got))
	}
}
