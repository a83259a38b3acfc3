// Package session implements the parking assistant loop: a sequential
// state machine that accepts clearance readings one at a time,
// classifies them, records each step, and stops on a collision or a
// perfect park.
package session

import (
	"github.com/luki/parkassist/internal/history"
	"github.com/luki/parkassist/internal/sensor"
)

// statsCapacity bounds the per-side clearance history used for the
// closing summary. Interactive sessions stay far below it.
const statsCapacity = 1024

// State is the session's lifecycle state.
type State int

const (
	Running State = iota
	StoppedPerfect
	StoppedCollision
)

func (s State) String() string {
	switch s {
	case StoppedPerfect:
		return "parked"
	case StoppedCollision:
		return "collision"
	}
	return "running"
}

// Config holds the per-session parameters, fixed at session start.
type Config struct {
	ReverseMode bool
	Parallel    bool
	CarLength   float64
	CarWidth    float64
}

// Step records one accepted reading together with its classification.
// Opposite marks the synthetic opposite-movement override, which
// bypasses classification entirely.
type Step struct {
	Index    int
	Reading  sensor.Reading
	Status   sensor.Status
	Opposite bool
}

// Label returns the display text for this step's outcome.
func (s Step) Label() string {
	if s.Opposite {
		return "OPPOSITE MOVEMENT! Reverse direction"
	}
	return s.Status.Label()
}

// Session is the sequential parking state machine. It owns its history,
// which only ever grows by appending.
type Session struct {
	cfg     Config
	state   State
	steps   []Step
	tracker *history.Tracker
}

// New creates a session in the Running state.
func New(cfg Config) *Session {
	return &Session{
		cfg:     cfg,
		tracker: history.NewTracker(statsCapacity),
	}
}

// Config returns the session parameters.
func (s *Session) Config() Config { return s.cfg }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// History returns the recorded steps in order.
func (s *Session) History() []Step { return s.steps }

// Stats returns the per-side clearance statistics tracker.
func (s *Session) Stats() *history.Tracker { return s.tracker }

// Advance feeds one validated reading through the transition function
// and returns the step it recorded. Readings offered after a terminal
// state are ignored and reported with ok=false.
//
// The opposite-movement override fires first: when all three distances
// are below the caution threshold the step is recorded with a synthetic
// status, the session keeps running, and classification is skipped. A
// collision or perfect-park classification moves the session to the
// matching terminal state; too-close and safe readings keep it running.
func (s *Session) Advance(r sensor.Reading) (Step, bool) {
	if s.state != Running {
		return Step{}, false
	}

	step := Step{Index: len(s.steps) + 1, Reading: r}

	if r.Left < sensor.CautionMax && r.Center < sensor.CautionMax && r.Right < sensor.CautionMax {
		step.Opposite = true
		s.append(step)
		return step, true
	}

	step.Status = sensor.Classify(r)
	s.append(step)

	switch step.Status.Code {
	case sensor.Collision:
		s.state = StoppedCollision
	case sensor.PerfectlyParked:
		s.state = StoppedPerfect
	}
	return step, true
}

func (s *Session) append(step Step) {
	s.steps = append(s.steps, step)
	s.tracker.Record(step.Reading, step.Index)
}

// Movement returns the configured movement direction as display text.
func (s *Session) Movement() string {
	if s.cfg.ReverseMode {
		return "Move BACKWARD"
	}
	return "Move FORWARD"
}

// OppositeMovement returns the direction opposite the configured mode,
// for the override guidance.
func (s *Session) OppositeMovement() string {
	if s.cfg.ReverseMode {
		return "Move FORWARD"
	}
	return "Move BACKWARD"
}
