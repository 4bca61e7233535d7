package schedule

import (
	"time"

	"github.com/trimshop/booking-api/internal/model"
)

// DefaultSlotInterval is the grid step and the fallback duration for
// bookings whose service cannot be resolved. Kept in one place so the grid,
// the conflict check and the fixtures agree.
const DefaultSlotInterval = 30 * time.Minute

// Grid discretizes a barber's working day into aligned time points. All
// slot enumeration and conflict bookkeeping happens on these points.
type Grid struct {
	Step time.Duration
}

func NewGrid(step time.Duration) Grid {
	if step <= 0 {
		step = DefaultSlotInterval
	}
	return Grid{Step: step}
}

// DayWindow anchors a barber's wall-clock working hours to a calendar date.
// A window with end <= start is a configuration anomaly and comes back
// empty; callers treat it as "no slots", never as an error.
func DayWindow(date time.Time, workStart, workEnd model.TimeOfDay) (time.Time, time.Time) {
	start := workStart.On(date)
	end := workEnd.On(date)
	if !end.After(start) {
		return start, start
	}
	return start, end
}

// Points returns start, start+step, ... strictly before end.
func (g Grid) Points(start, end time.Time) []time.Time {
	var points []time.Time
	for t := start; t.Before(end); t = t.Add(g.Step) {
		points = append(points, t)
	}
	return points
}

// OccupiedPoints returns the grid points a booking spans: stepped from its
// start, strictly before start+duration. A duration that is not a multiple
// of the step still claims every point up to the last one before its end.
func (g Grid) OccupiedPoints(start time.Time, duration time.Duration) []time.Time {
	end := start.Add(duration)
	var points []time.Time
	for t := start; t.Before(end); t = t.Add(g.Step) {
		points = append(points, t)
	}
	return points
}
