package timing

import "time"

// Accumulator holds the four stage durations spec.md §6's --time flag
// prints: IO, decompose, rect-dual, port-assign.
type Accumulator struct {
	IO         time.Duration
	Decompose  time.Duration
	RectDual   time.Duration
	PortAssign time.Duration
}

// Track adds the elapsed time since start to *field. Callers defer it at the
// top of each pipeline stage:
//
//	start := time.Now()
//	defer timing.Track(&acc.Decompose, start)
func Track(field *time.Duration, start time.Time) {
	*field += time.Since(start)
}

// Seconds returns the four stage durations as float64 seconds (fractional
// parts kept), in the
// order spec.md §6 prints them.
func (a *Accumulator) Seconds() (io, decompose, rectDual, portAssign float64) {
	return a.IO.Seconds(), a.Decompose.Seconds(), a.RectDual.Seconds(), a.PortAssign.Seconds()
}
