package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trimshop/booking-api/internal/model"
)

// All repository interfaces in one file
type (
	// BarberRepository handles barber rows and lookups.
	BarberRepository interface {
		Create(ctx context.Context, barber *model.Barber) error
		Get(ctx context.Context, id uuid.UUID) (*model.Barber, error)
		// GetActive returns the barber only when its status is active.
		GetActive(ctx context.Context, id uuid.UUID) (*model.Barber, error)
		GetByName(ctx context.Context, name string) (*model.Barber, error)
		ListActive(ctx context.Context) ([]*model.Barber, error)
	}

	// ServiceRepository handles the service catalog.
	ServiceRepository interface {
		Create(ctx context.Context, service *model.Service) error
		Get(ctx context.Context, id uuid.UUID) (*model.Service, error)
		GetActive(ctx context.Context, id uuid.UUID) (*model.Service, error)
		GetByName(ctx context.Context, name string) (*model.Service, error)
		ListActive(ctx context.Context) ([]*model.Service, error)
	}

	CustomerRepository interface {
		Create(ctx context.Context, customer *model.Customer) error
		GetByPhone(ctx context.Context, phone string) (*model.Customer, error)
		UpdateName(ctx context.Context, id uuid.UUID, name string) error
		TouchInteraction(ctx context.Context, id uuid.UUID) error
	}

	BookingRepository interface {
		Create(ctx context.Context, booking *model.Booking) error
		Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
		// UpdateStatus mutates only the status column and returns the
		// refreshed row.
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (*model.Booking, error)
		// ListActiveForBarber returns scheduled and confirmed bookings whose
		// start falls in [from, to), joined with the service duration,
		// ordered by start time.
		ListActiveForBarber(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]*model.Booking, error)
		// ListForCustomer returns a customer's bookings newest first, limited
		// to upcoming active ones when upcomingOnly is set.
		ListForCustomer(ctx context.Context, customerID uuid.UUID, upcomingOnly bool, now time.Time) ([]*model.Booking, error)
	}

	ConversationRepository interface {
		Create(ctx context.Context, msg *model.ConversationMessage) error
		ListRecent(ctx context.Context, customerID uuid.UUID, limit int) ([]*model.ConversationMessage, error)
	}
)
