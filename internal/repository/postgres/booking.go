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

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, customer_id, barber_id, service_id,
			scheduled_at, status, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.BarberID,
		booking.ServiceID,
		booking.ScheduledAt,
		booking.Status,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT b.id, b.customer_id, b.barber_id, b.service_id,
			   b.scheduled_at, b.status, b.notes,
			   b.created_at, b.updated_at,
			   s.duration_minutes AS service_duration
		FROM bookings b
		LEFT JOIN services s ON s.id = b.service_id
		WHERE b.id = $1
	`
	var booking model.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("booking", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (*model.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.NotFound("booking", nil)
	}

	return r.Get(ctx, id)
}

func (r *bookingRepository) ListActiveForBarber(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]*model.Booking, error) {
	query := `
		SELECT b.id, b.customer_id, b.barber_id, b.service_id,
			   b.scheduled_at, b.status, b.notes,
			   b.created_at, b.updated_at,
			   s.duration_minutes AS service_duration
		FROM bookings b
		LEFT JOIN services s ON s.id = b.service_id
		WHERE b.barber_id = $1
		AND b.scheduled_at >= $2
		AND b.scheduled_at < $3
		AND b.status IN ('scheduled', 'confirmed')
		ORDER BY b.scheduled_at ASC
	`
	var bookings []*model.Booking
	err := r.db.SelectContext(ctx, &bookings, query, barberID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list barber bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) ListForCustomer(ctx context.Context, customerID uuid.UUID, upcomingOnly bool, now time.Time) ([]*model.Booking, error) {
	query := `
		SELECT b.id, b.customer_id, b.barber_id, b.service_id,
			   b.scheduled_at, b.status, b.notes,
			   b.created_at, b.updated_at,
			   s.duration_minutes AS service_duration
		FROM bookings b
		LEFT JOIN services s ON s.id = b.service_id
		WHERE b.customer_id = $1
	`
	args := []interface{}{customerID}

	if upcomingOnly {
		query += ` AND b.scheduled_at >= $2 AND b.status IN ('scheduled', 'confirmed')`
		args = append(args, now)
	}

	query += " ORDER BY b.scheduled_at DESC"

	var bookings []*model.Booking
	err := r.db.SelectContext(ctx, &bookings, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer bookings: %w", err)
	}
	return bookings, nil
}
