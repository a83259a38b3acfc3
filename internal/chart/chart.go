// Package chart renders clearance distances as color-coded bars and
// threshold scales for the assistant's console output and the replay
// viewer.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/parkassist/internal/sensor"
)

// FullScale is the distance, in meters, rendered as a full-width bar.
// Anything beyond it is clamped.
const FullScale = 1.0

// DistColor returns the color for a clearance value based on the fixed
// proximity bands.
func DistColor(d float64) lipgloss.Color {
	switch {
	case d <= sensor.CollisionMax:
		return lipgloss.Color("196") // red
	case d < sensor.CautionMax:
		return lipgloss.Color("208") // orange
	case d <= sensor.TargetMax:
		return lipgloss.Color("78") // green: inside the target band
	default:
		return lipgloss.Color("245") // gray: clear
	}
}

// RenderBar renders a proportional clearance bar of the given width.
// The filled portion is colored by proximity band; the remainder is a
// dim track.
func RenderBar(d float64, width int) string {
	if width <= 0 {
		return ""
	}

	norm := d / FullScale
	norm = math.Max(0, math.Min(1, norm))
	filled := int(math.Round(norm * float64(width)))
	if d > 0 && filled == 0 {
		filled = 1
	}
	if filled > width {
		filled = width
	}

	fillStyle := lipgloss.NewStyle().Foreground(DistColor(d))
	trackStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

	var sb strings.Builder
	sb.WriteString(fillStyle.Render(strings.Repeat("█", filled)))
	sb.WriteString(trackStyle.Render(strings.Repeat("╌", width-filled)))
	return sb.String()
}

// RenderScale renders a scale bar for one clearance value with markers
// at the collision, caution, and target thresholds and a diamond at the
// current position.
func RenderScale(current float64, width int) string {
	if width <= 0 {
		return ""
	}

	pos := func(d float64) int {
		p := int(float64(width-1) * d / FullScale)
		if p < 0 {
			p = 0
		}
		if p >= width {
			p = width - 1
		}
		return p
	}

	collisionPos := pos(sensor.CollisionMax)
	cautionPos := pos(sensor.CautionMax)
	targetPos := pos(sensor.TargetMax)
	curPos := pos(current)

	var sb strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == curPos:
			style := lipgloss.NewStyle().Foreground(DistColor(current)).Bold(true)
			sb.WriteString(style.Render("◆"))
		case i == collisionPos:
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("▪"))
		case i == cautionPos:
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render("▪"))
		case i == targetPos:
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Render("▪"))
		default:
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Render("·"))
		}
	}
	return sb.String()
}

// RenderDistValue renders a clearance value with proximity color coding.
func RenderDistValue(d float64) string {
	s := fmt.Sprintf("%5.2fm", d)
	style := lipgloss.NewStyle().Foreground(DistColor(d))
	if d <= sensor.CollisionMax {
		style = style.Bold(true)
	}
	return style.Render(s)
}

// StatusStyle returns the text style for a classification label.
func StatusStyle(code sensor.Code) lipgloss.Style {
	switch code {
	case sensor.Collision:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	case sensor.TooClose:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	case sensor.PerfectlyParked:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
}
