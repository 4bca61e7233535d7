package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trimshop/booking-api/internal/model"
)

func date(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func TestDayWindow(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	start, end := DayWindow(day, model.NewTimeOfDay(9, 0), model.NewTimeOfDay(19, 0))
	assert.Equal(t, date(9, 0), start)
	assert.Equal(t, date(19, 0), end)
}

func TestDayWindow_EmptyWhenEndNotAfterStart(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	start, end := DayWindow(day, model.NewTimeOfDay(19, 0), model.NewTimeOfDay(9, 0))
	assert.Equal(t, start, end)

	start, end = DayWindow(day, model.NewTimeOfDay(9, 0), model.NewTimeOfDay(9, 0))
	assert.Equal(t, start, end)
}

func TestGridPoints(t *testing.T) {
	g := NewGrid(30 * time.Minute)

	points := g.Points(date(9, 0), date(11, 0))
	assert.Equal(t, []time.Time{date(9, 0), date(9, 30), date(10, 0), date(10, 30)}, points)
}

func TestGridPoints_EndIsExclusive(t *testing.T) {
	g := NewGrid(30 * time.Minute)

	points := g.Points(date(9, 0), date(9, 30))
	assert.Equal(t, []time.Time{date(9, 0)}, points)
}

func TestGridPoints_EmptyWindow(t *testing.T) {
	g := NewGrid(30 * time.Minute)

	assert.Empty(t, g.Points(date(9, 0), date(9, 0)))
	assert.Empty(t, g.Points(date(19, 0), date(9, 0)))
}

func TestOccupiedPoints(t *testing.T) {
	g := NewGrid(30 * time.Minute)

	points := g.OccupiedPoints(date(10, 0), 60*time.Minute)
	assert.Equal(t, []time.Time{date(10, 0), date(10, 30)}, points)
}

func TestOccupiedPoints_CeilingForPartialStep(t *testing.T) {
	g := NewGrid(30 * time.Minute)

	// 45 minutes still claims the 10:30 point.
	points := g.OccupiedPoints(date(10, 0), 45*time.Minute)
	assert.Equal(t, []time.Time{date(10, 0), date(10, 30)}, points)
}

func TestOccupiedPoints_ZeroDuration(t *testing.T) {
	g := NewGrid(30 * time.Minute)

	assert.Empty(t, g.OccupiedPoints(date(10, 0), 0))
}

func TestNewGrid_DefaultsStep(t *testing.T) {
	assert.Equal(t, DefaultSlotInterval, NewGrid(0).Step)
	assert.Equal(t, 15*time.Minute, NewGrid(15*time.Minute).Step)
}
