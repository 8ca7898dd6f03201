package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Sidebar panel with subtle border
	SidebarPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)

	// Subtle muted text
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	// Metric value style
	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	// Metric label style
	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	// Key hint style
	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	// Value band colors for bars and sparklines
	BandHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	BandMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	BandLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
)

// ValueBar renders a horizontal bar scaled against max, colored by where the
// value sits within the range. High values render red.
func ValueBar(value, max float64, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	ratio := value / max
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	filled := int(ratio * float64(width))
	if filled < 1 && value > 0 {
		filled = 1
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if ratio > 0.66 {
		return BandHigh.Render(bar)
	} else if ratio > 0.33 {
		return BandMid.Render(bar)
	}
	return BandLow.Render(bar)
}

// Sparkline renders a mini chart from values
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	// Sparkline characters from low to high
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	rng := max - min
	if rng == 0 {
		rng = 1
	}

	// Sample to fit width
	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		v := values[i*step]
		norm := (v - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}

		c := chars[idx]
		if norm > 0.66 {
			result.WriteString(BandHigh.Render(string(c)))
		} else if norm > 0.33 {
			result.WriteString(BandMid.Render(string(c)))
		} else {
			result.WriteString(BandLow.Render(string(c)))
		}
	}

	return result.String()
}

// Separator renders a decorative horizontal rule
func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
