package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/parkassist/internal/chart"
	"github.com/luki/parkassist/internal/sensor"
)

var (
	summaryHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	summaryDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Summary renders the session history table and the per-sensor closest
// approach statistics as display lines.
func (s *Session) Summary() []string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, summaryHeader.Render("=== Session History ==="))
	lines = append(lines, summaryDim.Render(fmt.Sprintf("%-5s %-8s %-8s %-8s %s", "STEP", "LEFT", "CENTER", "RIGHT", "STATUS")))
	lines = append(lines, summaryDim.Render(strings.Repeat("─", 60)))

	for _, step := range s.steps {
		row := fmt.Sprintf("%-5d %s  %s  %s  %s",
			step.Index,
			chart.RenderDistValue(step.Reading.Left),
			chart.RenderDistValue(step.Reading.Center),
			chart.RenderDistValue(step.Reading.Right),
			statusText(step),
		)
		lines = append(lines, row)
	}

	lines = append(lines, summaryDim.Render(strings.Repeat("─", 60)))

	for _, side := range sensor.Sides {
		b := s.tracker.Side(side)
		if b == nil || len(b.Points) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-6s closest %s  avg %s  last %s",
			side,
			chart.RenderDistValue(b.Closest),
			chart.RenderDistValue(b.Avg()),
			chart.RenderDistValue(b.Last()),
		))
	}

	lines = append(lines, summaryDim.Render(fmt.Sprintf("%d steps, outcome: %s", len(s.steps), s.state)))
	return lines
}
