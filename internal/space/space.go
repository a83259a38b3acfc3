// Package space computes the clearance a parking maneuver needs and
// scans candidate spaces for the first one that fits.
package space

import "fmt"

// Margins added to the car dimension to get a workable space, meters.
const (
	parallelMargin      = 1.0
	perpendicularMargin = 0.5
)

// Required returns the minimum space size for the given maneuver:
// car length plus a meter for parallel parking, car width plus half a
// meter for perpendicular. Caller guarantees positive dimensions.
func Required(parallel bool, carLength, carWidth float64) float64 {
	if parallel {
		return carLength + parallelMargin
	}
	return carWidth + perpendicularMargin
}

// FirstFit reports whether any candidate size accommodates the required
// space, stopping at the first one that does. An empty candidate list
// means no space is available.
func FirstFit(required float64, sizes []float64) bool {
	for _, s := range sizes {
		if s >= required {
			return true
		}
	}
	return false
}

// Input is the validated numeric input source Scan prompts through.
type Input interface {
	ReadFloat(prompt string, allowZero bool) float64
	ReadInt(prompt string) int
}

// Output receives the scanner's status lines.
type Output interface {
	Print(line string)
}

// Scan interactively checks candidate parking spaces against the
// required size for the configured maneuver. It prompts for the number
// of available spaces and then each size in turn, reporting and
// returning success at the first fit. A non-positive count means no
// space is available.
func Scan(parallel bool, carLength, carWidth float64, in Input, out Output) bool {
	required := Required(parallel, carLength, carWidth)

	out.Print("")
	out.Print("=== Parking Space Scanner ===")
	out.Print(fmt.Sprintf("Required space: %.2f meters", required))

	count := in.ReadInt("Enter number of available parking spaces: ")
	for i := 1; i <= count; i++ {
		size := in.ReadFloat(fmt.Sprintf("Enter size of space %d (meters): ", i), true)
		if size >= required {
			out.Print(fmt.Sprintf("Space found! Space %d is suitable.", i))
			return true
		}
	}

	out.Print("No suitable parking space found.")
	return false
}
