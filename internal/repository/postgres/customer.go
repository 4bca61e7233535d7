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

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	query := `
		INSERT INTO customers (
			id, phone, name, email, created_at, last_interaction
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	customer.ID = uuid.New()
	customer.CreatedAt = time.Now()
	customer.LastInteraction = customer.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		customer.ID,
		customer.Phone,
		customer.Name,
		customer.Email,
		customer.CreatedAt,
		customer.LastInteraction,
	)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	query := `
		SELECT id, phone, name, email, created_at, last_interaction
		FROM customers
		WHERE phone = $1
	`
	var customer model.Customer
	err := r.db.GetContext(ctx, &customer, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("customer", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by phone: %w", err)
	}
	return &customer, nil
}

func (r *customerRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	query := `
		UPDATE customers
		SET name = $1, last_interaction = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, name, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update customer name: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("customer", nil)
	}
	return nil
}

func (r *customerRepository) TouchInteraction(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE customers
		SET last_interaction = $1
		WHERE id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("failed to touch customer interaction: %w", err)
	}
	return nil
}
