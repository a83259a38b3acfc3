package session

import (
	"fmt"

	"github.com/luki/parkassist/internal/chart"
	"github.com/luki/parkassist/internal/sensor"
)

// barWidth is the width of the per-sensor clearance bars printed after
// each step.
const barWidth = 30

// Input is the validated numeric input source the loop reads through.
// Implementations retry until they have an acceptable value and never
// fail.
type Input interface {
	ReadFloat(prompt string, allowZero bool) float64
}

// Output receives the assistant's status lines.
type Output interface {
	Print(line string)
}

// Run drives a session from Running to a terminal state using the given
// collaborators, printing beeps, status, clearance bars, and guidance
// for every step and the history summary at the end. The session is
// returned for transcript export.
func Run(cfg Config, in Input, out Output) *Session {
	s := New(cfg)

	mode := "FORWARD"
	if cfg.ReverseMode {
		mode = "REVERSE"
	}
	kind := "PERPENDICULAR"
	if cfg.Parallel {
		kind = "PARALLEL"
	}

	out.Print("")
	out.Print("=== Parking Assistant Active ===")
	out.Print(fmt.Sprintf("Mode: %s | Type: %s", mode, kind))
	out.Print("")

	for s.State() == Running {
		out.Print("Enter sensor readings:")
		r := sensor.Reading{
			Left:   in.ReadFloat("Left sensor (m): ", true),
			Center: in.ReadFloat("Center sensor (m): ", true),
			Right:  in.ReadFloat("Right sensor (m): ", true),
		}

		if beep := sensor.BeepLevel(r); beep != sensor.BeepNone {
			out.Print("(" + beep.String() + ")")
		}

		step, _ := s.Advance(r)

		out.Print("")
		out.Print("Status: " + statusText(step))
		for _, side := range sensor.Sides {
			d := side.Distance(r)
			out.Print(fmt.Sprintf("  %-6s %s %s", side, chart.RenderDistValue(d), chart.RenderBar(d, barWidth)))
		}

		switch {
		case step.Opposite:
			out.Print("")
			out.Print("--- Guidance ---")
			out.Print(s.OppositeMovement())
			out.Print("----------------")
			out.Print("")
		case s.State() == Running:
			out.Print("")
			out.Print("--- Guidance ---")
			out.Print(sensor.Steering(r).String())
			out.Print(s.Movement())
			out.Print("----------------")
			out.Print("")
		}
	}

	out.Print("")
	if s.State() == StoppedCollision {
		out.Print("Emergency stop activated!")
	} else {
		out.Print("Parking completed successfully!")
	}

	for _, line := range s.Summary() {
		out.Print(line)
	}
	return s
}

func statusText(step Step) string {
	if step.Opposite {
		return chart.StatusStyle(sensor.TooClose).Render(step.Label())
	}
	return chart.StatusStyle(step.Status.Code).Render(step.Label())
}
