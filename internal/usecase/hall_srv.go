package usecase

import (
	"context"
	"strings"
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

type HallService interface {
	CreateHall(ctx context.Context, req *request.CreateHallRequest) (*response.HallResponse, error)
	GetHalls(ctx context.Context, query *request.HallListQuery) ([]*response.HallResponse, error)
	// GetHallByID returns (nil, nil) when the hall does not exist.
	GetHallByID(ctx context.Context, hallID string) (*response.HallResponse, error)
	UpdateHall(ctx context.Context, hallID string, req *request.UpdateHallRequest) (*response.HallResponse, error)
	DeactivateHall(ctx context.Context, hallID string) error
}

type hallService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHallService(repo *repository.Repository, log *zap.Logger) HallService {
	return &hallService{
		repo: repo,
		log:  log.With(zap.String("service", "hall")),
	}
}

func (s *hallService) CreateHall(ctx context.Context, req *request.CreateHallRequest) (*response.HallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hall validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !req.PricePerDay.IsPositive() {
		return nil, apperror.Validation("price_per_day must be positive")
	}

	amenities := req.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	hall := &entity.Hall{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		Capacity:     req.Capacity,
		PricePerDay:  req.PricePerDay.Round(2),
		Amenities:    amenities,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Images:       req.Images,
		IsActive:     isActive,
	}

	if err := s.repo.Hall.Create(ctx, hall); err != nil {
		return nil, apperror.Internal(err, "create hall")
	}

	s.log.Info("Hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("name", hall.Name),
		zap.String("location", hall.Location),
	)

	return response.HallToResponse(hall), nil
}

func (s *hallService) GetHalls(ctx context.Context, query *request.HallListQuery) ([]*response.HallResponse, error) {
	filter := repository.HallFilter{}
	var wantAmenities []string

	if query != nil {
		filter.Location = query.Location
		filter.CapacityMin = query.CapacityMin
		filter.CapacityMax = query.CapacityMax
		filter.PriceMin = query.PriceMin
		filter.PriceMax = query.PriceMax
		filter.IsActive = query.IsActive
		wantAmenities = query.Amenities
	}

	halls, err := s.repo.Hall.FindAll(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err, "get halls")
	}

	if len(wantAmenities) > 0 {
		filtered := halls[:0]
		for _, hall := range halls {
			if hasAmenities(hall.Amenities, wantAmenities) {
				filtered = append(filtered, hall)
			}
		}
		halls = filtered
	}

	return response.HallsToResponse(halls), nil
}

// hasAmenities reports whether every wanted amenity matches some hall
// amenity as a case-insensitive substring.
func hasAmenities(have, want []string) bool {
	for _, w := range want {
		w = strings.ToLower(w)
		found := false
		for _, h := range have {
			if strings.Contains(strings.ToLower(h), w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *hallService) GetHallByID(ctx context.Context, hallID string) (*response.HallResponse, error) {
	id, err := parseID("hall", hallID)
	if err != nil {
		return nil, err
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "get hall %s", hallID)
	}
	if hall == nil {
		return nil, nil
	}

	return response.HallToResponse(hall), nil
}

func (s *hallService) UpdateHall(ctx context.Context, hallID string, req *request.UpdateHallRequest) (*response.HallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update hall validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := parseID("hall", hallID)
	if err != nil {
		return nil, err
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "get hall %s", hallID)
	}
	if hall == nil {
		return nil, apperror.NotFound("hall %s not found", hallID)
	}

	// Apply only the fields present in the patch.
	if req.Name != nil {
		hall.Name = *req.Name
	}
	if req.Description != nil {
		hall.Description = *req.Description
	}
	if req.Location != nil {
		hall.Location = *req.Location
	}
	if req.Capacity != nil {
		hall.Capacity = *req.Capacity
	}
	if req.PricePerDay != nil {
		if !req.PricePerDay.IsPositive() {
			return nil, apperror.Validation("price_per_day must be positive")
		}
		hall.PricePerDay = req.PricePerDay.Round(2)
	}
	if req.Amenities != nil {
		hall.Amenities = *req.Amenities
	}
	if req.ContactPhone != nil {
		hall.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		hall.ContactEmail = *req.ContactEmail
	}
	if req.Images != nil {
		hall.Images = *req.Images
	}
	if req.IsActive != nil {
		hall.IsActive = *req.IsActive
	}
	hall.UpdatedAt = time.Now()

	if err := s.repo.Hall.Update(ctx, hall); err != nil {
		return nil, apperror.Internal(err, "update hall %s", hallID)
	}

	s.log.Info("Hall updated", zap.String("hall_id", hallID))

	return response.HallToResponse(hall), nil
}

func (s *hallService) DeactivateHall(ctx context.Context, hallID string) error {
	id, err := parseID("hall", hallID)
	if err != nil {
		return err
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return apperror.Internal(err, "get hall %s", hallID)
	}
	if hall == nil {
		return apperror.NotFound("hall %s not found", hallID)
	}

	if !hall.IsActive {
		return apperror.State("hall %s is already deactivated", hallID)
	}

	approved, err := s.repo.Booking.CountApprovedByHallID(ctx, id)
	if err != nil {
		return apperror.Internal(err, "count approved bookings for hall %s", hallID)
	}
	if approved > 0 {
		return apperror.Conflict("hall %s has approved bookings and cannot be deactivated", hallID)
	}

	if err := s.repo.Hall.Deactivate(ctx, id); err != nil {
		return apperror.Internal(err, "deactivate hall %s", hallID)
	}

	s.log.Info("Hall deactivated", zap.String("hall_id", hallID))
	return nil
}
