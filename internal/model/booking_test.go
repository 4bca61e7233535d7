package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusScheduled, BookingStatusConfirmed, true},
		{BookingStatusScheduled, BookingStatusCompleted, true},
		{BookingStatusScheduled, BookingStatusCancelled, true},
		{BookingStatusScheduled, BookingStatusNoShow, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusNoShow, true},
		{BookingStatusConfirmed, BookingStatusScheduled, false},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusScheduled, false},
		{BookingStatusNoShow, BookingStatusCompleted, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestBookingStatus_IsActive(t *testing.T) {
	assert.True(t, BookingStatusScheduled.IsActive())
	assert.True(t, BookingStatusConfirmed.IsActive())
	assert.False(t, BookingStatusCompleted.IsActive())
	assert.False(t, BookingStatusCancelled.IsActive())
	assert.False(t, BookingStatusNoShow.IsActive())
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, BookingStatusScheduled.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusNoShow.IsTerminal())
}
