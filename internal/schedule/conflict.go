package schedule

import (
	"time"

	"github.com/trimshop/booking-api/internal/model"
)

// Overlaps reports whether two half-open spans [start, start+duration)
// intersect. Spans that exactly abut do not conflict.
func Overlaps(existingStart time.Time, existingDuration time.Duration, candidateStart time.Time, candidateDuration time.Duration) bool {
	candidateEnd := candidateStart.Add(candidateDuration)
	existingEnd := existingStart.Add(existingDuration)
	return existingStart.Before(candidateEnd) && existingEnd.After(candidateStart)
}

// BookingDuration resolves a booking's occupied length, falling back to the
// grid step when the linked service was not resolvable.
func BookingDuration(b *model.Booking, fallback time.Duration) time.Duration {
	if b.ServiceDuration != nil && *b.ServiceDuration > 0 {
		return time.Duration(*b.ServiceDuration) * time.Minute
	}
	return fallback
}

// HasConflict checks a candidate span against a set of existing bookings.
// Only active bookings occupy time; anything cancelled, completed or no-show
// is transparent.
func HasConflict(existing []*model.Booking, candidateStart time.Time, candidateDuration, fallback time.Duration) bool {
	for _, b := range existing {
		if !b.Status.IsActive() {
			continue
		}
		if Overlaps(b.ScheduledAt, BookingDuration(b, fallback), candidateStart, candidateDuration) {
			return true
		}
	}
	return false
}
