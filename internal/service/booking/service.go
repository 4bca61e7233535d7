package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trimshop/booking-api/internal/model"
	"github.com/trimshop/booking-api/internal/repository"
	redislock "github.com/trimshop/booking-api/internal/redis"
	"github.com/trimshop/booking-api/internal/schedule"
	apperrors "github.com/trimshop/booking-api/pkg/errors"
)

// CustomerResolver is the slice of the customer service the orchestrator
// needs: phone number is the natural key for walk-in bookings.
type CustomerResolver interface {
	GetOrCreate(ctx context.Context, phone, name string) (*model.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*model.Customer, error)
}

type Service struct {
	bookings  repository.BookingRepository
	barbers   repository.BarberRepository
	services  repository.ServiceRepository
	customers CustomerResolver
	locker    redislock.Locker
	grid      schedule.Grid
	loc       *time.Location

	// now is captured once per enumeration call so every slot in one
	// response is judged against the same instant.
	now func() time.Time
}

func NewService(
	bookings repository.BookingRepository,
	barbers repository.BarberRepository,
	services repository.ServiceRepository,
	customers CustomerResolver,
	locker redislock.Locker,
	grid schedule.Grid,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		bookings:  bookings,
		barbers:   barbers,
		services:  services,
		customers: customers,
		locker:    locker,
		grid:      grid,
		loc:       loc,
		now:       time.Now,
	}
}

// dayBounds returns the calendar day containing t in the configured zone.
func (s *Service) dayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(s.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

// IsAvailable reports whether the candidate span is free of active bookings
// for the barber. It does not verify working hours or grid alignment; that
// is the caller's responsibility.
func (s *Service) IsAvailable(ctx context.Context, barberID uuid.UUID, start time.Time, duration time.Duration) (bool, error) {
	dayStart, dayEnd := s.dayBounds(start)

	existing, err := s.bookings.ListActiveForBarber(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return false, fmt.Errorf("failed to load barber bookings: %w", err)
	}

	return !schedule.HasConflict(existing, start, duration, s.grid.Step), nil
}

// AvailableSlots returns every grid-aligned start time on the given date at
// which a service of the given duration could be booked right now, earliest
// first. An unknown or inactive barber yields an empty result, not an error.
func (s *Service) AvailableSlots(ctx context.Context, barberID uuid.UUID, date time.Time, durationMinutes int) ([]time.Time, error) {
	barber, err := s.barbers.GetActive(ctx, barberID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return []time.Time{}, nil
		}
		return nil, err
	}

	if durationMinutes <= 0 {
		return []time.Time{}, nil
	}
	duration := time.Duration(durationMinutes) * time.Minute

	windowStart, windowEnd := schedule.DayWindow(date.In(s.loc), barber.WorkStart, barber.WorkEnd)

	dayStart, dayEnd := s.dayBounds(windowStart)
	existing, err := s.bookings.ListActiveForBarber(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load barber bookings: %w", err)
	}

	blocked := make(map[int64]struct{})
	for _, b := range existing {
		dur := schedule.BookingDuration(b, s.grid.Step)
		for _, p := range s.grid.OccupiedPoints(b.ScheduledAt, dur) {
			blocked[p.Unix()] = struct{}{}
		}
	}

	now := s.now()

	slots := []time.Time{}
	for _, t := range s.grid.Points(windowStart, windowEnd) {
		if t.Add(duration).After(windowEnd) {
			break
		}
		if !t.After(now) {
			continue
		}

		free := true
		for _, p := range s.grid.OccupiedPoints(t, duration) {
			if _, taken := blocked[p.Unix()]; taken {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, t)
		}
	}

	return slots, nil
}

// AvailableSlotsForService resolves the service first and enumerates slots
// for its duration. Unknown or inactive services surface as NotFound so the
// caller can distinguish them from a fully booked day.
func (s *Service) AvailableSlotsForService(ctx context.Context, barberID, serviceID uuid.UUID, date time.Time) ([]time.Time, error) {
	svc, err := s.services.GetActive(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return s.AvailableSlots(ctx, barberID, date, svc.Duration)
}

// Book validates the request and creates a scheduled booking. Preconditions
// are checked in order: active barber, active service, free slot. The
// availability check and the insert run under the per-barber lock so two
// concurrent requests for overlapping spans cannot both succeed.
func (s *Service) Book(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	barber, err := s.barbers.GetActive(ctx, req.BarberID)
	if err != nil {
		return nil, err
	}

	svc, err := s.services.GetActive(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.GetOrCreate(ctx, req.Phone, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}

	duration := time.Duration(svc.Duration) * time.Minute
	if duration <= 0 {
		return nil, apperrors.Conflict("service has no bookable duration", nil)
	}

	var created *model.Booking

	err = s.locker.WithBarberLock(ctx, barber.ID, func(lockCtx context.Context) error {
		available, err := s.IsAvailable(lockCtx, barber.ID, req.ScheduledAt, duration)
		if err != nil {
			return err
		}
		if !available {
			return apperrors.Conflict("requested time conflicts with an existing booking", nil)
		}

		booking := &model.Booking{
			Base:        model.Base{ID: uuid.New()},
			CustomerID:  customer.ID,
			BarberID:    barber.ID,
			ServiceID:   svc.ID,
			ScheduledAt: req.ScheduledAt,
			Status:      model.BookingStatusScheduled,
			Notes:       req.Notes,
		}
		if err := s.bookings.Create(lockCtx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		created = booking
		return nil
	})
	if err != nil {
		if errors.Is(err, redislock.ErrLockNotAcquired) {
			return nil, apperrors.Conflict("barber calendar is busy, please retry", err)
		}
		return nil, err
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	return s.bookings.Get(ctx, id)
}

// Cancel moves the booking to cancelled regardless of its current status.
// Cancelling an already cancelled booking is a no-op that still succeeds.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	return s.bookings.UpdateStatus(ctx, id, model.BookingStatusCancelled)
}

// UpdateStatus applies a lifecycle transition after checking its legality
// against the state machine. Cancellation goes through Cancel instead, which
// is deliberately unconditional.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (*model.Booking, error) {
	booking, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == status {
		return booking, nil
	}
	if !model.CanTransition(booking.Status, status) {
		return nil, apperrors.BadRequest(
			fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, status), nil)
	}

	return s.bookings.UpdateStatus(ctx, id, status)
}

// CustomerBookings lists a customer's bookings by phone, newest first. An
// unknown phone number yields an empty list.
func (s *Service) CustomerBookings(ctx context.Context, phone string, upcomingOnly bool) ([]*model.Booking, error) {
	customer, err := s.customers.GetByPhone(ctx, phone)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return []*model.Booking{}, nil
		}
		return nil, err
	}

	return s.bookings.ListForCustomer(ctx, customer.ID, upcomingOnly, s.now())
}

// BarberHistory aggregates which barbers a customer has used, how often,
// and which services.
func (s *Service) BarberHistory(ctx context.Context, phone string) ([]*model.BarberVisitSummary, error) {
	bookings, err := s.CustomerBookings(ctx, phone, false)
	if err != nil {
		return nil, err
	}

	summaries := make(map[uuid.UUID]*model.BarberVisitSummary)
	seenServices := make(map[uuid.UUID]map[string]struct{})
	order := []uuid.UUID{}

	for _, b := range bookings {
		summary, ok := summaries[b.BarberID]
		if !ok {
			barber, err := s.barbers.Get(ctx, b.BarberID)
			if err != nil {
				return nil, err
			}
			summary = &model.BarberVisitSummary{
				BarberID:   b.BarberID,
				BarberName: barber.Name,
				LastVisit:  b.ScheduledAt,
			}
			summaries[b.BarberID] = summary
			seenServices[b.BarberID] = make(map[string]struct{})
			order = append(order, b.BarberID)
		}

		summary.TotalVisits++
		if b.ScheduledAt.After(summary.LastVisit) {
			summary.LastVisit = b.ScheduledAt
		}

		svc, err := s.services.Get(ctx, b.ServiceID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if _, seen := seenServices[b.BarberID][svc.Name]; !seen {
			seenServices[b.BarberID][svc.Name] = struct{}{}
			summary.ServicesUsed = append(summary.ServicesUsed, svc.Name)
		}
	}

	result := make([]*model.BarberVisitSummary, 0, len(order))
	for _, id := range order {
		result = append(result, summaries[id])
	}
	return result, nil
}
