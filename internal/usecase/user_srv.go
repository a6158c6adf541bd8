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

type UserService interface {
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetUsers(ctx context.Context) ([]*response.UserResponse, error)
}

type userService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Internal(err, "check email %s", req.Email)
	}
	if existing != nil {
		return nil, apperror.Conflict("email %s is already registered", req.Email)
	}

	role := entity.UserRole(req.Role)
	if role == "" {
		role = entity.RoleUser
	}

	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err, "create user")
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)

	return response.UserToResponse(user), nil
}

func (s *userService) GetUsers(ctx context.Context) ([]*response.UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "get users")
	}

	return response.UsersToResponse(users), nil
}

// parseID converts a path/body id into a UUID or a validation error.
func parseID(kind, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid %s ID %s", kind, id)
	}
	return parsed, nil
}
