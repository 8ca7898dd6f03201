package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Anastasyalesnussa/aseanco2/internal/dataset"
)

// seriesPalette pairs an asciigraph plot color with its lipgloss equivalent
// for the legend. One entry per ASEAN member.
var seriesPalette = []struct {
	plot   asciigraph.AnsiColor
	legend lipgloss.Color
}{
	{asciigraph.Red, lipgloss.Color("#ff0000")},
	{asciigraph.Green, lipgloss.Color("#008000")},
	{asciigraph.Blue, lipgloss.Color("#0000ff")},
	{asciigraph.Yellow, lipgloss.Color("#ffff00")},
	{asciigraph.Cyan, lipgloss.Color("#00ffff")},
	{asciigraph.Magenta, lipgloss.Color("#ff00ff")},
	{asciigraph.Orange, lipgloss.Color("#ffa500")},
	{asciigraph.SkyBlue, lipgloss.Color("#87ceeb")},
	{asciigraph.Gold, lipgloss.Color("#ffd700")},
	{asciigraph.Crimson, lipgloss.Color("#dc143c")},
}

// LineChart plots every country's series across the dataset's full year
// range, with a marker under the focus year. Gaps in a series repeat the
// last known value so all series stay aligned on the shared x-axis.
func LineChart(ds *dataset.Dataset, focusYear, width, height int) string {
	years := ds.YearList()
	if len(years) == 0 {
		return ""
	}

	countries := ds.Countries()
	series := make([][]float64, 0, len(countries))
	for _, country := range countries {
		series = append(series, alignedSeries(ds, country, years))
	}

	colors := make([]asciigraph.AnsiColor, len(countries))
	for i := range countries {
		colors[i] = seriesPalette[i%len(seriesPalette)].plot
	}

	minYear, maxYear := years[0], years[len(years)-1]
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("CO2 per capita, %d-%d (tons)", minYear, maxYear)),
	)

	var b strings.Builder
	b.WriteString(graph)
	b.WriteString("\n")
	b.WriteString(focusMarker(series, years, focusYear, width))
	b.WriteString("\n\n")
	b.WriteString(legend(countries))
	return b.String()
}

// alignedSeries maps one country onto the shared year axis.
func alignedSeries(ds *dataset.Dataset, country string, years []int) []float64 {
	byYear := make(map[int]float64)
	var first float64
	haveFirst := false
	for _, r := range ds.FilterByCountry(country) {
		byYear[r.Year] = r.CO2PerCapita
		if !haveFirst {
			first = r.CO2PerCapita
			haveFirst = true
		}
	}

	out := make([]float64, len(years))
	last := first
	for i, y := range years {
		if v, ok := byYear[y]; ok {
			last = v
		}
		out[i] = last
	}
	return out
}

// focusMarker renders the selection marker row under the plot. The x offset
// approximates asciigraph's y-axis label margin, which formats values with
// two decimals.
func focusMarker(series [][]float64, years []int, focusYear, width int) string {
	max := 0.0
	for _, s := range series {
		for _, v := range s {
			if v > max {
				max = v
			}
		}
	}
	margin := len(fmt.Sprintf("%.2f", max)) + 2

	pos := 0
	if len(years) > 1 {
		for i, y := range years {
			if y >= focusYear {
				pos = i * (width - 1) / (len(years) - 1)
				break
			}
			pos = width - 1
		}
	}

	marker := strings.Repeat(" ", margin+pos) + "▲ " + fmt.Sprintf("%d", focusYear)
	return lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true).Render(marker)
}

func legend(countries []string) string {
	parts := make([]string, 0, len(countries))
	for i, c := range countries {
		style := lipgloss.NewStyle().Foreground(seriesPalette[i%len(seriesPalette)].legend)
		parts = append(parts, style.Render("── "+c))
	}
	return strings.Join(parts, "  ")
}

// BarChart renders one horizontal bar per country for a single year, sorted
// descending by value with two-decimal labels.
func BarChart(records []dataset.EmissionRecord, width int) string {
	if len(records) == 0 {
		return ""
	}

	sorted := make([]dataset.EmissionRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CO2PerCapita != sorted[j].CO2PerCapita {
			return sorted[i].CO2PerCapita > sorted[j].CO2PerCapita
		}
		return sorted[i].Country < sorted[j].Country
	})

	max := sorted[0].CO2PerCapita
	barWidth := width - 26
	if barWidth < 10 {
		barWidth = 10
	}

	labelStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Text)
	valueStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Secondary).Bold(true)

	var b strings.Builder
	for _, r := range sorted {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-12s", r.Country)),
			ValueBar(r.CO2PerCapita, max, barWidth),
			valueStyle.Render(fmt.Sprintf("%6.2f", r.CO2PerCapita)),
		))
	}
	return b.String()
}
