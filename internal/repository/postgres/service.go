package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trimshop/booking-api/internal/model"
	apperrors "github.com/trimshop/booking-api/pkg/errors"
)

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	query := `
		INSERT INTO services (
			id, name, description, duration_minutes, price, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	service.ID = uuid.New()
	service.CreatedAt = time.Now()
	service.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		service.ID,
		service.Name,
		service.Description,
		service.Duration,
		service.Price,
		service.Status,
		service.CreatedAt,
		service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *serviceRepository) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price, status,
			   created_at, updated_at
		FROM services
		WHERE id = $1
	`
	var service model.Service
	err := r.db.GetContext(ctx, &service, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("service", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

func (r *serviceRepository) GetActive(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price, status,
			   created_at, updated_at
		FROM services
		WHERE id = $1 AND status = 'active'
	`
	var service model.Service
	err := r.db.GetContext(ctx, &service, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("service", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active service: %w", err)
	}
	return &service, nil
}

func (r *serviceRepository) GetByName(ctx context.Context, name string) (*model.Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price, status,
			   created_at, updated_at
		FROM services
		WHERE name ILIKE '%' || $1 || '%'
		LIMIT 1
	`
	var service model.Service
	err := r.db.GetContext(ctx, &service, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("service", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service by name: %w", err)
	}
	return &service, nil
}

func (r *serviceRepository) ListActive(ctx context.Context) ([]*model.Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price, status,
			   created_at, updated_at
		FROM services
		WHERE status = 'active'
		ORDER BY name ASC
	`
	var services []*model.Service
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}
