package sensor

import "strings"

// Code is the discrete safety classification of a reading.
type Code int

const (
	Safe Code = iota
	TooClose
	PerfectlyParked
	Collision
)

// Status is the result of classifying one reading. Sides is populated
// only for TooClose and lists the offending sensors in left, center,
// right order.
type Status struct {
	Code  Code
	Sides []Side
}

// Label returns the display text for this status.
func (s Status) Label() string {
	switch s.Code {
	case Collision:
		return "COLLISION! STOP IMMEDIATELY"
	case TooClose:
		if len(s.Sides) == 0 {
			return "TOO CLOSE! Adjust carefully"
		}
		names := make([]string, len(s.Sides))
		for i, side := range s.Sides {
			names[i] = side.String()
		}
		return "TOO CLOSE (" + strings.Join(names, ", ") + ")! Adjust carefully"
	case PerfectlyParked:
		return "Perfectly Parked"
	}
	return "SAFE"
}

// Classify maps a reading to its safety status. The checks are ordered
// by priority and the first match wins: collision (any sensor at or
// below CollisionMax) dominates everything else, then too-close (any
// sensor below CautionMax, all offending sides reported), then
// perfectly parked (all sensors inside [TargetMin, TargetMax]), and
// safe otherwise. Classify is a pure function of the reading.
func Classify(r Reading) Status {
	if r.Left <= CollisionMax || r.Center <= CollisionMax || r.Right <= CollisionMax {
		return Status{Code: Collision}
	}

	var close []Side
	for _, side := range Sides {
		if side.Distance(r) < CautionMax {
			close = append(close, side)
		}
	}
	if len(close) > 0 {
		return Status{Code: TooClose, Sides: close}
	}

	if inTargetBand(r.Left) && inTargetBand(r.Center) && inTargetBand(r.Right) {
		return Status{Code: PerfectlyParked}
	}

	return Status{Code: Safe}
}

func inTargetBand(d float64) bool {
	return d >= TargetMin && d <= TargetMax
}

// Beep is the proximity warning level for a reading.
type Beep int

const (
	BeepNone Beep = iota
	BeepSingle
	BeepDouble
)

func (b Beep) String() string {
	switch b {
	case BeepSingle:
		return "beep"
	case BeepDouble:
		return "beep beep"
	}
	return ""
}

// BeepLevel returns the warning level for a reading: a single beep once
// any sensor drops below TargetMax, escalating to a double beep below
// CautionMax. Computed independently of Classify.
func BeepLevel(r Reading) Beep {
	if r.Min() < CautionMax {
		return BeepDouble
	}
	if r.Min() < TargetMax {
		return BeepSingle
	}
	return BeepNone
}

// Steer is a steering recommendation derived from the side sensors.
type Steer int

const (
	KeepCentered Steer = iota
	SteerLeft
	SteerRight
)

func (s Steer) String() string {
	switch s {
	case SteerLeft:
		return "Steer LEFT"
	case SteerRight:
		return "Steer RIGHT"
	}
	return "Keep centered"
}

// Steering compares the left and right clearances and recommends
// steering away from the closer obstacle. The center sensor does not
// participate.
func Steering(r Reading) Steer {
	switch {
	case r.Left < r.Right:
		return SteerRight
	case r.Right < r.Left:
		return SteerLeft
	}
	return KeepCentered
}
