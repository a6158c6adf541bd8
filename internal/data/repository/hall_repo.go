package repository

import (
	"context"
	"fmt"
	"strings"

	"hall-booking/internal/data/entity"
	"hall-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HallRepository interface {
	Create(ctx context.Context, hall *entity.Hall) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error)
	FindAll(ctx context.Context, filter HallFilter) ([]*entity.Hall, error)
	Update(ctx context.Context, hall *entity.Hall) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Counts(ctx context.Context) (entity.HallCounts, error)
}

type hallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHallRepository(db database.PgxIface, log *zap.Logger) HallRepository {
	return &hallRepository{
		db:  db,
		log: log.With(zap.String("repository", "hall")),
	}
}

const hallColumns = `id, name, description, location, capacity, price_per_day,
		amenities, contact_phone, contact_email, images, is_active, created_at, updated_at`

func (r *hallRepository) Create(ctx context.Context, hall *entity.Hall) error {
	query := `
		INSERT INTO marriage_halls (id, name, description, location, capacity, price_per_day,
			amenities, contact_phone, contact_email, images, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.Description,
		hall.Location,
		hall.Capacity,
		hall.PricePerDay,
		hall.Amenities,
		hall.ContactPhone,
		hall.ContactEmail,
		hall.Images,
		hall.IsActive,
		hall.CreatedAt,
		hall.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create hall",
			zap.Error(err),
			zap.String("name", hall.Name),
		)
		return fmt.Errorf("create hall %s: %w", hall.Name, err)
	}

	return nil
}

func (r *hallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	query := `
		SELECT ` + hallColumns + `
		FROM marriage_halls
		WHERE id = $1
	`

	var hall entity.Hall
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Description,
		&hall.Location,
		&hall.Capacity,
		&hall.PricePerDay,
		&hall.Amenities,
		&hall.ContactPhone,
		&hall.ContactEmail,
		&hall.Images,
		&hall.IsActive,
		&hall.CreatedAt,
		&hall.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hall by ID",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return nil, fmt.Errorf("find hall by ID %s: %w", id.String(), err)
	}

	return &hall, nil
}

func (r *hallRepository) FindAll(ctx context.Context, filter HallFilter) ([]*entity.Hall, error) {
	query := `
		SELECT ` + hallColumns + `
		FROM marriage_halls
	`

	var conditions []string
	var args []any

	if filter.Location != nil {
		args = append(args, *filter.Location)
		conditions = append(conditions, fmt.Sprintf("location ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.CapacityMin != nil {
		args = append(args, *filter.CapacityMin)
		conditions = append(conditions, fmt.Sprintf("capacity >= $%d", len(args)))
	}
	if filter.CapacityMax != nil {
		args = append(args, *filter.CapacityMax)
		conditions = append(conditions, fmt.Sprintf("capacity <= $%d", len(args)))
	}
	if filter.PriceMin != nil {
		args = append(args, *filter.PriceMin)
		conditions = append(conditions, fmt.Sprintf("price_per_day >= $%d", len(args)))
	}
	if filter.PriceMax != nil {
		args = append(args, *filter.PriceMax)
		conditions = append(conditions, fmt.Sprintf("price_per_day <= $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find halls", zap.Error(err))
		return nil, fmt.Errorf("find halls: %w", err)
	}
	defer rows.Close()

	var halls []*entity.Hall
	for rows.Next() {
		var hall entity.Hall
		err := rows.Scan(
			&hall.ID,
			&hall.Name,
			&hall.Description,
			&hall.Location,
			&hall.Capacity,
			&hall.PricePerDay,
			&hall.Amenities,
			&hall.ContactPhone,
			&hall.ContactEmail,
			&hall.Images,
			&hall.IsActive,
			&hall.CreatedAt,
			&hall.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan hall row", zap.Error(err))
			return nil, fmt.Errorf("scan hall row: %w", err)
		}
		halls = append(halls, &hall)
	}

	return halls, nil
}

func (r *hallRepository) Update(ctx context.Context, hall *entity.Hall) error {
	query := `
		UPDATE marriage_halls
		SET name = $2, description = $3, location = $4, capacity = $5, price_per_day = $6,
		    amenities = $7, contact_phone = $8, contact_email = $9, images = $10,
		    is_active = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.Description,
		hall.Location,
		hall.Capacity,
		hall.PricePerDay,
		hall.Amenities,
		hall.ContactPhone,
		hall.ContactEmail,
		hall.Images,
		hall.IsActive,
		hall.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update hall",
			zap.Error(err),
			zap.String("hall_id", hall.ID.String()),
		)
		return fmt.Errorf("update hall %s: %w", hall.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hall %s not found", hall.ID.String())
	}

	return nil
}

func (r *hallRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE marriage_halls SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate hall",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return fmt.Errorf("deactivate hall %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hall %s not found", id.String())
	}

	r.log.Info("Hall deactivated", zap.String("hall_id", id.String()))
	return nil
}

func (r *hallRepository) Counts(ctx context.Context) (entity.HallCounts, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
		FROM marriage_halls
	`

	var counts entity.HallCounts
	err := r.db.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active)
	if err != nil {
		r.log.Error("Failed to count halls", zap.Error(err))
		return entity.HallCounts{}, fmt.Errorf("count halls: %w", err)
	}

	return counts, nil
}
