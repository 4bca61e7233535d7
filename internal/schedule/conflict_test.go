package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trimshop/booking-api/internal/model"
)

func TestOverlaps(t *testing.T) {
	half := 30 * time.Minute

	tests := []struct {
		name          string
		existingStart time.Time
		existingDur   time.Duration
		candidate     time.Time
		candidateDur  time.Duration
		want          bool
	}{
		{"same span", date(10, 0), half, date(10, 0), half, true},
		{"candidate inside existing", date(10, 0), 2 * time.Hour, date(10, 30), half, true},
		{"existing inside candidate", date(10, 30), half, date(10, 0), 2 * time.Hour, true},
		{"partial overlap at start", date(9, 30), time.Hour, date(10, 0), time.Hour, true},
		{"abutting before", date(9, 30), half, date(10, 0), half, false},
		{"abutting after", date(10, 30), half, date(10, 0), half, false},
		{"disjoint", date(9, 0), half, date(12, 0), half, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.existingStart, tt.existingDur, tt.candidate, tt.candidateDur)
			assert.Equal(t, tt.want, got)
		})
	}
}

func booking(start time.Time, status model.BookingStatus, duration *int) *model.Booking {
	return &model.Booking{
		ScheduledAt:     start,
		Status:          status,
		ServiceDuration: duration,
	}
}

func TestHasConflict_IgnoresInactiveBookings(t *testing.T) {
	dur := 30
	existing := []*model.Booking{
		booking(date(10, 0), model.BookingStatusCancelled, &dur),
		booking(date(10, 0), model.BookingStatusCompleted, &dur),
		booking(date(10, 0), model.BookingStatusNoShow, &dur),
	}

	assert.False(t, HasConflict(existing, date(10, 0), 30*time.Minute, 30*time.Minute))
}

func TestHasConflict_ActiveBooking(t *testing.T) {
	dur := 60
	existing := []*model.Booking{
		booking(date(10, 0), model.BookingStatusConfirmed, &dur),
	}

	assert.True(t, HasConflict(existing, date(10, 30), 30*time.Minute, 30*time.Minute))
	assert.False(t, HasConflict(existing, date(11, 0), 30*time.Minute, 30*time.Minute))
}

func TestBookingDuration_FallsBackToStep(t *testing.T) {
	assert.Equal(t, 30*time.Minute, BookingDuration(booking(date(10, 0), model.BookingStatusScheduled, nil), 30*time.Minute))

	zero := 0
	assert.Equal(t, 30*time.Minute, BookingDuration(booking(date(10, 0), model.BookingStatusScheduled, &zero), 30*time.Minute))

	ninety := 90
	assert.Equal(t, 90*time.Minute, BookingDuration(booking(date(10, 0), model.BookingStatusScheduled, &ninety), 30*time.Minute))
}
