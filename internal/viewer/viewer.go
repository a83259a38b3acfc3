// Package viewer implements the session transcript replay TUI with a
// step cursor over the recorded readings.
package viewer

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luki/parkassist/internal/chart"
	"github.com/luki/parkassist/internal/sensor"
	"github.com/luki/parkassist/internal/store"
)

// Run launches the transcript replay TUI for the given file.
func Run(path string) {
	steps, err := store.LoadFile(path)
	if err != nil || len(steps) == 0 {
		fmt.Fprintf(os.Stderr, "No transcript data in %s\n", path)
		os.Exit(1)
	}

	p := tea.NewProgram(
		initModel(path, steps),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ── Color palette ────────────────────────────────────────────────────

var (
	colorTitleBg  = lipgloss.Color("17")
	colorTitleFg  = lipgloss.Color("51")
	colorBorder   = lipgloss.Color("62")
	colorLabel    = lipgloss.Color("252")
	colorDim      = lipgloss.Color("240")
	colorFooterBg = lipgloss.Color("235")
)

// ── Model ────────────────────────────────────────────────────────────

type model struct {
	path   string
	steps  []store.StoredStep
	cursor int
	scroll int
	width  int
	height int
}

func initModel(path string, steps []store.StoredStep) model {
	return model{
		path:   path,
		steps:  steps,
		cursor: len(steps) - 1,
	}
}

// ── Init / Update ────────────────────────────────────────────────────

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(m.steps)-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			m.cursor = len(m.steps) - 1

		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			m.scroll++
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// ── View ─────────────────────────────────────────────────────────────

func (m model) View() string {
	if m.width == 0 {
		return "  Loading..."
	}

	contentWidth := m.width - 2
	if contentWidth < 40 {
		contentWidth = 40
	}

	var sections []string
	sections = append(sections, m.renderTitle(contentWidth))
	sections = append(sections, m.renderCursorInfo(contentWidth))
	sections = append(sections, m.renderStepPanel(contentWidth))
	sections = append(sections, m.renderFooter(contentWidth))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	lines := strings.Split(content, "\n")
	visibleLines := m.height
	if visibleLines < 5 {
		visibleLines = 5
	}
	maxScroll := len(lines) - visibleLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}

	start := m.scroll
	end := start + visibleLines
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[start:end], "\n")
}

func (m model) renderTitle(width int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitleFg).
		Render("PARKING REPLAY")

	file := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Render(m.path)

	info := lipgloss.NewStyle().
		Foreground(colorDim).
		Render(fmt.Sprintf("  (%d steps)", len(m.steps)))

	right := file + info

	gap := width - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	filler := strings.Repeat(" ", gap)

	return lipgloss.NewStyle().
		Background(colorTitleBg).
		Width(width).
		Padding(0, 1).
		Render(logo + filler + right)
}

func (m model) renderCursorInfo(width int) string {
	pos := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true).
		Render(fmt.Sprintf("step %d/%d", m.cursor+1, len(m.steps)))

	barWidth := width - 20
	if barWidth < 10 {
		barWidth = 10
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Render("  " + pos + "  " + m.renderScrubber(barWidth))
}

// renderScrubber draws one cell per step, colored by the step's closest
// clearance, with a diamond at the cursor.
func (m model) renderScrubber(width int) string {
	if width <= 0 {
		return ""
	}

	curS := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	var sb strings.Builder
	for i := 0; i < width; i++ {
		var idx int
		if len(m.steps) <= width {
			if i >= len(m.steps) {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("237")).Render("─"))
				continue
			}
			idx = i
		} else if width > 1 {
			// More steps than cells: map cells onto the step range.
			idx = i * (len(m.steps) - 1) / (width - 1)
		}

		step := m.steps[idx]
		min := minDist(step)
		if idx == m.cursor {
			sb.WriteString(curS.Render("◆"))
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(chart.DistColor(min)).Render("▄"))
		}
	}
	return sb.String()
}

func (m model) renderStepPanel(totalWidth int) string {
	step := m.steps[m.cursor]

	innerWidth := totalWidth - 4
	if innerWidth < 30 {
		innerWidth = 30
	}

	barWidth := innerWidth - 30
	if barWidth < 15 {
		barWidth = 15
	}
	if barWidth > 80 {
		barWidth = 80
	}

	labelW := 8

	var rows []string

	statusLine := lipgloss.NewStyle().Bold(true).Render("Status: ") + styledStatus(step.Status)
	rows = append(rows, statusLine)

	sep := lipgloss.NewStyle().
		Foreground(lipgloss.Color("237")).
		Render(strings.Repeat("─", innerWidth))
	rows = append(rows, sep)

	dists := []struct {
		name string
		d    float64
	}{
		{"left", step.Left},
		{"center", step.Center},
		{"right", step.Right},
	}

	for _, s := range dists {
		label := lipgloss.NewStyle().
			Foreground(colorLabel).
			Bold(true).
			Width(labelW).
			Render(s.name)

		frameL := lipgloss.NewStyle().Foreground(colorBorder).Render("▕")
		frameR := lipgloss.NewStyle().Foreground(colorBorder).Render("▏")

		row := label + " " + chart.RenderDistValue(s.d) + " " +
			frameL + chart.RenderBar(s.d, barWidth) + frameR
		rows = append(rows, row)

		pad := strings.Repeat(" ", labelW+8)
		rows = append(rows, pad+" "+chart.RenderScale(s.d, barWidth))
	}

	panelContent := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(totalWidth).
		Render(panelContent)
}

func (m model) renderFooter(width int) string {
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	keyS := lipgloss.NewStyle().Foreground(colorLabel)

	keys := dimS.Render("q") + keyS.Render(":quit") +
		dimS.Render("  h/l") + keyS.Render(":step") +
		dimS.Render("  home/end") + keyS.Render(":jump") +
		dimS.Render("  j/k") + keyS.Render(":scroll")

	return lipgloss.NewStyle().
		Background(colorFooterBg).
		Width(width).
		Padding(0, 1).
		Render(keys)
}

// ── Helpers ──────────────────────────────────────────────────────────

func minDist(s store.StoredStep) float64 {
	return sensor.Reading{Left: s.Left, Center: s.Center, Right: s.Right}.Min()
}

func styledStatus(label string) string {
	code := sensor.Safe
	switch {
	case strings.HasPrefix(label, "COLLISION"):
		code = sensor.Collision
	case strings.HasPrefix(label, "TOO CLOSE"), strings.HasPrefix(label, "OPPOSITE"):
		code = sensor.TooClose
	case strings.HasPrefix(label, "Perfectly"):
		code = sensor.PerfectlyParked
	}
	return chart.StatusStyle(code).Render(label)
}
