// Package tui is the interactive dashboard: a sidebar with year and view
// controls next to the active chart. Every keypress rebuilds the selection
// and re-renders the view from the cached dataset.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Anastasyalesnussa/aseanco2/internal/config"
	"github.com/Anastasyalesnussa/aseanco2/internal/dataset"
	"github.com/Anastasyalesnussa/aseanco2/internal/stats"
	"github.com/Anastasyalesnussa/aseanco2/internal/viz"
)

// ViewMode selects which chart the main pane renders.
type ViewMode int

const (
	ModeMap ViewMode = iota
	ModeLine
	ModeBar
)

func (m ViewMode) String() string {
	switch m {
	case ModeMap:
		return "map"
	case ModeLine:
		return "line"
	case ModeBar:
		return "bar"
	}
	return "unknown"
}

// ParseViewMode maps a config string onto a view mode.
func ParseViewMode(s string) ViewMode {
	switch s {
	case "line":
		return ModeLine
	case "bar":
		return ModeBar
	default:
		return ModeMap
	}
}

// Selection is the transient UI state, rebuilt on every interaction.
type Selection struct {
	Year int
	Mode ViewMode
}

type Model struct {
	ds       *dataset.Dataset
	dataPath string
	loadErr  error

	sel      Selection
	chartW   int
	chartH   int
	width    int
	height   int
	showHelp bool
}

// New loads the dataset and seeds the selection from config. A load failure
// is carried in the model and rendered inline, not returned: the dashboard
// stays up so the user can fix the file and reload.
func New(cfg *config.Config) Model {
	m := Model{
		dataPath: cfg.Data,
		chartW:   cfg.Chart.Width,
		chartH:   cfg.Chart.Height,
		sel:      Selection{Year: cfg.Year, Mode: ParseViewMode(cfg.View)},
	}
	m.reload()
	return m
}

func (m *Model) reload() {
	m.ds, m.loadErr = dataset.Load(m.dataPath)
	if m.loadErr == nil {
		m.sel.Year = m.ds.ClampYear(m.sel.Year)
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.reload()
	case "?":
		m.showHelp = !m.showHelp
	case "t":
		names := viz.ThemeNames()
		for i, name := range names {
			if name == viz.CurrentTheme.Name {
				viz.SetTheme(names[(i+1)%len(names)])
				break
			}
		}
	}

	if m.loadErr != nil {
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		m.sel.Year = m.ds.ClampYear(m.sel.Year - 1)
	case "right", "l":
		m.sel.Year = m.ds.ClampYear(m.sel.Year + 1)
	case "H":
		m.sel.Year = m.ds.ClampYear(m.sel.Year - 5)
	case "L":
		m.sel.Year = m.ds.ClampYear(m.sel.Year + 5)
	case "g":
		min, _ := m.ds.Years()
		m.sel.Year = min
	case "G":
		_, max := m.ds.Years()
		m.sel.Year = max
	case "m":
		m.sel.Mode = ModeMap
	case "i":
		m.sel.Mode = ModeLine
	case "b":
		m.sel.Mode = ModeBar
	case "tab":
		m.sel.Mode = (m.sel.Mode + 1) % 3
	}
	return m, nil
}

func (m Model) View() string {
	header := lipgloss.NewStyle().Foreground(viz.CurrentTheme.Primary).Bold(true).
		Render("ASEAN CO2 EMISSIONS PER CAPITA")
	subtitle := viz.Subtle.Render("Global Carbon Budget (2024) · tons per person per year")

	if m.loadErr != nil {
		errPanel := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(viz.CurrentTheme.Error).
			Padding(1, 2).
			Render(lipgloss.NewStyle().Foreground(viz.CurrentTheme.Error).Bold(true).Render("DATA LOAD FAILED") +
				"\n\n" + m.loadErr.Error() +
				"\n\n" + viz.KeyHint.Render("r retry · q quit"))
		return "\n" + header + "\n" + subtitle + "\n\n" + errPanel + "\n"
	}

	if m.showHelp {
		return "\n" + header + "\n\n" + m.helpView() + "\n"
	}

	main := m.mainView()
	sidebar := viz.SidebarPanel.Render(m.sidebarView())

	body := lipgloss.JoinHorizontal(lipgloss.Top, main, sidebar)
	return "\n" + header + "\n" + subtitle + "\n\n" + body + "\n"
}

func (m Model) mainView() string {
	titleStyle := lipgloss.NewStyle().Foreground(viz.CurrentTheme.Secondary).Bold(true).MarginBottom(1)

	var title, chart string
	switch m.sel.Mode {
	case ModeMap:
		title = fmt.Sprintf("CO2 Emissions per Capita — %d", m.sel.Year)
		chart = viz.Map(m.ds.FilterByYear(m.sel.Year), m.chartW, m.chartH)
	case ModeLine:
		title = "Historical CO2 Emissions Trends"
		chart = viz.LineChart(m.ds, m.sel.Year, m.chartW, m.chartH)
	case ModeBar:
		title = fmt.Sprintf("CO2 Emission Comparison — %d", m.sel.Year)
		chart = viz.BarChart(m.ds.FilterByYear(m.sel.Year), m.chartW)
	}

	if chart == "" {
		chart = viz.Subtle.Render(fmt.Sprintf("no records for %d — move the year slider", m.sel.Year))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(titleStyle.Render(title) + "\n" + chart)
}

func (m Model) sidebarView() string {
	var b strings.Builder

	cursor := lipgloss.NewStyle().Foreground(viz.CurrentTheme.Accent).Bold(true)
	active := lipgloss.NewStyle().Foreground(viz.CurrentTheme.Text).Bold(true)

	b.WriteString(viz.MetricLabel.Render("VIEW") + "\n")
	for mode := ModeMap; mode <= ModeBar; mode++ {
		if mode == m.sel.Mode {
			b.WriteString(cursor.Render("▸ ") + active.Render(mode.String()) + "\n")
		} else {
			b.WriteString("  " + viz.Subtle.Render(mode.String()) + "\n")
		}
	}

	min, max := m.ds.Years()
	b.WriteString("\n" + viz.MetricLabel.Render("YEAR") + "\n")
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		viz.Subtle.Render("◀"),
		viz.MetricValue.Render(fmt.Sprintf("%d", m.sel.Year)),
		viz.Subtle.Render("▶")))
	b.WriteString(viz.Subtle.Render(fmt.Sprintf("%d", min)) +
		" " + viz.ValueBar(float64(m.sel.Year-min), float64(max-min), 12) +
		" " + viz.Subtle.Render(fmt.Sprintf("%d", max)) + "\n")

	// Regional mean per year, as a time-lapse cue
	years := m.ds.YearList()
	means := make([]float64, len(years))
	for i, y := range years {
		means[i] = stats.SummarizeYear(y, m.ds.FilterByYear(y)).Mean
	}
	b.WriteString("\n" + viz.MetricLabel.Render("REGIONAL MEAN") + "\n")
	b.WriteString(viz.Sparkline(means, 20) + "\n")

	s := stats.SummarizeYear(m.sel.Year, m.ds.FilterByYear(m.sel.Year))
	b.WriteString("\n" + viz.MetricLabel.Render(fmt.Sprintf("YEAR %d", m.sel.Year)) + "\n")
	if s.Count == 0 {
		b.WriteString(viz.Subtle.Render("no data") + "\n")
	} else {
		b.WriteString(viz.MetricLabel.Render("mean ") + viz.MetricValue.Render(fmt.Sprintf("%.2f", s.Mean)) + "\n")
		b.WriteString(viz.MetricLabel.Render("high ") + viz.MetricValue.Render(fmt.Sprintf("%.2f", s.Max)) +
			viz.Subtle.Render(" "+s.TopCountry) + "\n")
		b.WriteString(viz.MetricLabel.Render("low  ") + viz.MetricValue.Render(fmt.Sprintf("%.2f", s.Min)) +
			viz.Subtle.Render(" "+s.BottomCountry) + "\n")
	}

	b.WriteString("\n" + viz.Separator(24) + "\n")
	b.WriteString(viz.KeyHint.Render("h/l year  H/L jump 5\nm/i/b view  tab cycle\nt theme  r reload\n? help  q quit"))

	return b.String()
}

func (m Model) helpView() string {
	return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  h / ←    - Previous year            ║
║  l / →    - Next year                ║
║  H / L    - Jump 5 years             ║
║  g / G    - First / last year        ║
║  m        - Map view                 ║
║  i        - Line chart view          ║
║  b        - Bar chart view           ║
║  Tab      - Cycle views              ║
║  t        - Cycle themes             ║
║  r        - Reload dataset           ║
║  ?        - Toggle this help         ║
║  q        - Quit                     ║
╚══════════════════════════════════════╝
`
}

// Run starts the dashboard program.
func Run(cfg *config.Config) error {
	return tea.NewProgram(New(cfg), tea.WithAltScreen()).Start()
}
