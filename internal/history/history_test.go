package history

import (
	"testing"

	"github.com/luki/parkassist/internal/sensor"
)

func TestHistory(t *testing.T) {
	h := NewBuffer(5)

	for i := 0; i < 7; i++ {
		h.Push(float64(10-i)/10, i+1)
	}

	if len(h.Points) != 5 {
		t.Errorf("expected 5 points, got %d", len(h.Points))
	}

	if h.Last() != 0.4 {
		t.Errorf("Last(): got %f, want 0.4", h.Last())
	}

	if h.Closest != 0.4 {
		t.Errorf("Closest: got %f, want 0.4", h.Closest)
	}

	if h.Widest != 1.0 {
		t.Errorf("Widest: got %f, want 1.0", h.Widest)
	}

	vals := h.LastN(3)
	if len(vals) != 3 {
		t.Errorf("LastN(3): got %d values, want 3", len(vals))
	}
}

func TestTracker(t *testing.T) {
	tr := NewTracker(100)

	tr.Record(sensor.Reading{Left: 0.9, Center: 0.7, Right: 0.5}, 1)
	tr.Record(sensor.Reading{Left: 0.6, Center: 0.4, Right: 0.3}, 2)
	tr.Record(sensor.Reading{Left: 0.5, Center: 0.45, Right: 0.35}, 3)

	left := tr.Side(sensor.SideLeft)
	if left == nil {
		t.Fatal("no left buffer recorded")
	}
	if left.Closest != 0.5 {
		t.Errorf("left closest: got %f, want 0.5", left.Closest)
	}

	right := tr.Side(sensor.SideRight)
	if right.Closest != 0.3 {
		t.Errorf("right closest: got %f, want 0.3", right.Closest)
	}
	if right.Last() != 0.35 {
		t.Errorf("right last: got %f, want 0.35", right.Last())
	}

	center := tr.Side(sensor.SideCenter)
	want := (0.7 + 0.4 + 0.45) / 3
	if diff := center.Avg() - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("center avg: got %f, want %f", center.Avg(), want)
	}
}
