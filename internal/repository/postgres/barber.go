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

func (r *barberRepository) Create(ctx context.Context, barber *model.Barber) error {
	query := `
		INSERT INTO barbers (
			id, name, phone, email, specialty,
			work_start, work_end, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	barber.ID = uuid.New()
	barber.CreatedAt = time.Now()
	barber.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		barber.ID,
		barber.Name,
		barber.Phone,
		barber.Email,
		barber.Specialty,
		barber.WorkStart,
		barber.WorkEnd,
		barber.Status,
		barber.CreatedAt,
		barber.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create barber: %w", err)
	}
	return nil
}

func (r *barberRepository) Get(ctx context.Context, id uuid.UUID) (*model.Barber, error) {
	query := `
		SELECT id, name, phone, email, specialty,
			   work_start, work_end, status,
			   created_at, updated_at
		FROM barbers
		WHERE id = $1
	`
	var barber model.Barber
	err := r.db.GetContext(ctx, &barber, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("barber", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get barber: %w", err)
	}
	return &barber, nil
}

func (r *barberRepository) GetActive(ctx context.Context, id uuid.UUID) (*model.Barber, error) {
	query := `
		SELECT id, name, phone, email, specialty,
			   work_start, work_end, status,
			   created_at, updated_at
		FROM barbers
		WHERE id = $1 AND status = 'active'
	`
	var barber model.Barber
	err := r.db.GetContext(ctx, &barber, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("barber", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active barber: %w", err)
	}
	return &barber, nil
}

func (r *barberRepository) GetByName(ctx context.Context, name string) (*model.Barber, error) {
	query := `
		SELECT id, name, phone, email, specialty,
			   work_start, work_end, status,
			   created_at, updated_at
		FROM barbers
		WHERE name ILIKE '%' || $1 || '%'
		LIMIT 1
	`
	var barber model.Barber
	err := r.db.GetContext(ctx, &barber, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("barber", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get barber by name: %w", err)
	}
	return &barber, nil
}

func (r *barberRepository) ListActive(ctx context.Context) ([]*model.Barber, error) {
	query := `
		SELECT id, name, phone, email, specialty,
			   work_start, work_end, status,
			   created_at, updated_at
		FROM barbers
		WHERE status = 'active'
		ORDER BY name ASC
	`
	var barbers []*model.Barber
	err := r.db.SelectContext(ctx, &barbers, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list barbers: %w", err)
	}
	return barbers, nil
}
