package session

import (
	"strings"
	"testing"

	"github.com/luki/parkassist/internal/sensor"
)

func TestAdvancePerfectStops(t *testing.T) {
	s := New(Config{})

	step, ok := s.Advance(sensor.Reading{Left: 0.4, Center: 0.4, Right: 0.4})
	if !ok {
		t.Fatal("running session must accept a reading")
	}
	if step.Status.Code != sensor.PerfectlyParked {
		t.Errorf("status: got %v, want PerfectlyParked", step.Status.Code)
	}
	if s.State() != StoppedPerfect {
		t.Errorf("state: got %v, want StoppedPerfect", s.State())
	}
	if len(s.History()) != 1 {
		t.Errorf("history length: got %d, want 1", len(s.History()))
	}
}

func TestAdvanceCollisionStops(t *testing.T) {
	s := New(Config{})

	step, _ := s.Advance(sensor.Reading{Left: 0.05, Center: 0.5, Right: 0.5})
	if step.Status.Code != sensor.Collision {
		t.Errorf("status: got %v, want Collision", step.Status.Code)
	}
	if s.State() != StoppedCollision {
		t.Errorf("state: got %v, want StoppedCollision", s.State())
	}
	if len(s.History()) != 1 {
		t.Errorf("history length: got %d, want 1", len(s.History()))
	}

	// Terminal states reject further readings.
	if _, ok := s.Advance(sensor.Reading{Left: 1, Center: 1, Right: 1}); ok {
		t.Error("stopped session accepted a reading")
	}
	if len(s.History()) != 1 {
		t.Error("history grew after terminal state")
	}
}

func TestAdvanceOppositeMovementDoesNotStop(t *testing.T) {
	s := New(Config{ReverseMode: true})

	step, _ := s.Advance(sensor.Reading{Left: 0.2, Center: 0.2, Right: 0.2})
	if !step.Opposite {
		t.Fatal("expected the opposite-movement override")
	}
	if step.Status.Code != sensor.Safe || len(step.Status.Sides) != 0 {
		t.Errorf("override must skip classification, got %+v", step.Status)
	}
	if s.State() != Running {
		t.Errorf("state: got %v, want Running", s.State())
	}

	// The session keeps accepting readings afterwards.
	s.Advance(sensor.Reading{Left: 0.4, Center: 0.4, Right: 0.4})
	if s.State() != StoppedPerfect {
		t.Errorf("follow-up reading: got %v, want StoppedPerfect", s.State())
	}
	if len(s.History()) != 2 {
		t.Errorf("history length: got %d, want 2", len(s.History()))
	}
}

func TestAdvanceTooCloseKeepsRunning(t *testing.T) {
	s := New(Config{})

	step, _ := s.Advance(sensor.Reading{Left: 0.2, Center: 0.8, Right: 0.9})
	if step.Status.Code != sensor.TooClose {
		t.Errorf("status: got %v, want TooClose", step.Status.Code)
	}
	if s.State() != Running {
		t.Errorf("state: got %v, want Running", s.State())
	}
}

func TestStepIndicesAreOrdinal(t *testing.T) {
	s := New(Config{})
	readings := []sensor.Reading{
		{Left: 1, Center: 1, Right: 1},
		{Left: 0.7, Center: 0.6, Right: 0.8},
		{Left: 0.4, Center: 0.4, Right: 0.4},
	}
	for _, r := range readings {
		s.Advance(r)
	}
	for i, step := range s.History() {
		if step.Index != i+1 {
			t.Errorf("step %d has index %d", i, step.Index)
		}
	}
}

func TestMovementDirections(t *testing.T) {
	fwd := New(Config{ReverseMode: false})
	if fwd.Movement() != "Move FORWARD" || fwd.OppositeMovement() != "Move BACKWARD" {
		t.Errorf("forward mode: %q / %q", fwd.Movement(), fwd.OppositeMovement())
	}
	rev := New(Config{ReverseMode: true})
	if rev.Movement() != "Move BACKWARD" || rev.OppositeMovement() != "Move FORWARD" {
		t.Errorf("reverse mode: %q / %q", rev.Movement(), rev.OppositeMovement())
	}
}

// scriptedInput feeds a fixed sequence of validated values to Run.
type scriptedInput struct {
	values []float64
}

func (s *scriptedInput) ReadFloat(prompt string, allowZero bool) float64 {
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

type lineBuffer struct {
	lines []string
}

func (b *lineBuffer) Print(line string) { b.lines = append(b.lines, line) }

func (b *lineBuffer) joined() string { return strings.Join(b.lines, "\n") }

func TestRunToPerfectPark(t *testing.T) {
	in := &scriptedInput{values: []float64{
		1.0, 1.2, 1.1, // safe
		0.4, 0.45, 0.4, // perfect
	}}
	out := &lineBuffer{}

	s := Run(Config{ReverseMode: true, Parallel: true, CarLength: 4.5, CarWidth: 1.8}, in, out)

	if s.State() != StoppedPerfect {
		t.Fatalf("state: got %v, want StoppedPerfect", s.State())
	}
	if len(s.History()) != 2 {
		t.Errorf("history length: got %d, want 2", len(s.History()))
	}

	text := out.joined()
	for _, want := range []string{
		"Mode: REVERSE | Type: PARALLEL",
		"Move BACKWARD",
		"Parking completed successfully!",
		"Session History",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(text, "Emergency stop") {
		t.Error("perfect park must not trigger an emergency stop")
	}
}

func TestRunToCollision(t *testing.T) {
	in := &scriptedInput{values: []float64{0.05, 0.5, 0.5}}
	out := &lineBuffer{}

	s := Run(Config{}, in, out)

	if s.State() != StoppedCollision {
		t.Fatalf("state: got %v, want StoppedCollision", s.State())
	}
	if !strings.Contains(out.joined(), "Emergency stop activated!") {
		t.Error("output missing the emergency stop line")
	}
}

func TestRunEmitsBeepsAndOppositeGuidance(t *testing.T) {
	in := &scriptedInput{values: []float64{
		0.2, 0.2, 0.2, // opposite movement, double beep
		0.4, 0.4, 0.4, // perfect
	}}
	out := &lineBuffer{}

	s := Run(Config{ReverseMode: false}, in, out)

	if s.State() != StoppedPerfect {
		t.Fatalf("state: got %v, want StoppedPerfect", s.State())
	}

	text := out.joined()
	if !strings.Contains(text, "(beep beep)") {
		t.Error("output missing the double beep")
	}
	if !strings.Contains(text, "OPPOSITE MOVEMENT") {
		t.Error("output missing the opposite-movement status")
	}
	// Forward mode: the override tells the driver to back up.
	if !strings.Contains(text, "Move BACKWARD") {
		t.Error("output missing the reversed movement guidance")
	}
}
