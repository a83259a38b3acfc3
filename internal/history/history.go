// Package history provides a ring-buffer based clearance history
// tracker with per-sensor closest-approach and average statistics.
package history

import (
	"math"

	"github.com/luki/parkassist/internal/sensor"
)

// Point is a single data point in the clearance history.
type Point struct {
	Dist float64
	Step int
}

// Buffer stores a ring buffer of clearance values for one sensor.
type Buffer struct {
	Points  []Point
	Max     int // capacity
	Closest float64
	Widest  float64
}

// NewBuffer creates a new history ring buffer with the given capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		Points:  make([]Point, 0, capacity),
		Max:     capacity,
		Closest: math.MaxFloat64,
		Widest:  -math.MaxFloat64,
	}
}

// Push adds a new clearance value to the history.
func (b *Buffer) Push(dist float64, step int) {
	p := Point{Dist: dist, Step: step}
	if len(b.Points) >= b.Max {
		copy(b.Points, b.Points[1:])
		b.Points[len(b.Points)-1] = p
	} else {
		b.Points = append(b.Points, p)
	}

	if dist < b.Closest {
		b.Closest = dist
	}
	if dist > b.Widest {
		b.Widest = dist
	}
}

// Last returns the most recent clearance, or 0 if empty.
func (b *Buffer) Last() float64 {
	if len(b.Points) == 0 {
		return 0
	}
	return b.Points[len(b.Points)-1].Dist
}

// Avg returns the average clearance across all stored points.
func (b *Buffer) Avg() float64 {
	if len(b.Points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range b.Points {
		sum += p.Dist
	}
	return sum / float64(len(b.Points))
}

// LastN returns the last n clearance values (for bar rendering).
func (b *Buffer) LastN(n int) []float64 {
	if n <= 0 || len(b.Points) == 0 {
		return nil
	}
	start := len(b.Points) - n
	if start < 0 {
		start = 0
	}
	vals := make([]float64, 0, n)
	for _, p := range b.Points[start:] {
		vals = append(vals, p.Dist)
	}
	return vals
}

// Tracker manages clearance histories for the three sensor sides.
type Tracker struct {
	buffers map[sensor.Side]*Buffer
	cap     int
}

// NewTracker creates a tracker with the given per-side capacity.
func NewTracker(capacity int) *Tracker {
	return &Tracker{
		buffers: make(map[sensor.Side]*Buffer),
		cap:     capacity,
	}
}

// Record adds one reading's distances under the given step index.
func (t *Tracker) Record(r sensor.Reading, step int) {
	for _, side := range sensor.Sides {
		b, ok := t.buffers[side]
		if !ok {
			b = NewBuffer(t.cap)
			t.buffers[side] = b
		}
		b.Push(side.Distance(r), step)
	}
}

// Side returns the history buffer for a sensor side, or nil.
func (t *Tracker) Side(side sensor.Side) *Buffer {
	return t.buffers[side]
}
