// Package sensor models the three-point clearance readings used by the
// parking assistant and classifies them against fixed distance
// thresholds into collision, too-close, perfectly-parked, and safe
// states.
package sensor

// Distance thresholds in meters.
const (
	CollisionMax = 0.1 // at or below: collision
	CautionMax   = 0.3 // strictly below: too close
	TargetMin    = 0.3 // perfect-park band, inclusive
	TargetMax    = 0.5 // perfect-park band, inclusive
)

// Reading represents one set of clearance distances in meters, as
// reported by the left, center, and right sensors. Distances are never
// negative.
type Reading struct {
	Left   float64
	Center float64
	Right  float64
}

// Min returns the smallest of the three distances.
func (r Reading) Min() float64 {
	m := r.Left
	if r.Center < m {
		m = r.Center
	}
	if r.Right < m {
		m = r.Right
	}
	return m
}

// Side identifies one of the three sensor positions.
type Side int

const (
	SideLeft Side = iota
	SideCenter
	SideRight
)

// Sides lists all sensor positions in reporting order.
var Sides = []Side{SideLeft, SideCenter, SideRight}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideCenter:
		return "center"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// Distance returns the reading's value for this side.
func (s Side) Distance(r Reading) float64 {
	switch s {
	case SideLeft:
		return r.Left
	case SideCenter:
		return r.Center
	}
	return r.Right
}
