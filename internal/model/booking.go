package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusScheduled BookingStatus = "scheduled"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// IsActive reports whether the booking occupies calendar time. Only
// scheduled and confirmed bookings count against availability.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusScheduled || s == BookingStatusConfirmed
}

func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

// bookingTransitions is the whole lifecycle in one place:
// scheduled -> confirmed -> completed, with cancelled and no_show reachable
// from either active state.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusScheduled: {BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow},
}

// CanTransition reports whether a status change is legal. Terminal states
// have no outgoing transitions.
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Booking struct {
	Base
	CustomerID  uuid.UUID     `db:"customer_id" json:"customer_id"`
	BarberID    uuid.UUID     `db:"barber_id" json:"barber_id"`
	ServiceID   uuid.UUID     `db:"service_id" json:"service_id"`
	ScheduledAt time.Time     `db:"scheduled_at" json:"scheduled_at"`
	Status      BookingStatus `db:"status" json:"status"`
	Notes       string        `db:"notes" json:"notes,omitempty"`

	// ServiceDuration is populated by list queries that join the services
	// table. Nil when the linked service could not be resolved; callers fall
	// back to the configured slot interval.
	ServiceDuration *int `db:"service_duration" json:"service_duration,omitempty"`
}

type CreateBookingRequest struct {
	BarberID    uuid.UUID `json:"barber_id" binding:"required"`
	ServiceID   uuid.UUID `json:"service_id" binding:"required"`
	Phone       string    `json:"phone" binding:"required" validate:"required,max=20"`
	Name        string    `json:"name" validate:"max=100"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Notes       string    `json:"notes" validate:"max=1000"`
}

// BarberVisitSummary aggregates a customer's history with one barber.
type BarberVisitSummary struct {
	BarberID     uuid.UUID `json:"barber_id"`
	BarberName   string    `json:"barber_name"`
	TotalVisits  int       `json:"total_visits"`
	LastVisit    time.Time `json:"last_visit"`
	ServicesUsed []string  `json:"services_used"`
}
