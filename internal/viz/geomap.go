package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Anastasyalesnussa/aseanco2/internal/dataset"
)

// Bounding box around the ASEAN region, with margin so Myanmar's north and
// Indonesia's east stay inside the frame.
const (
	mapMinLat = -12.0
	mapMaxLat = 29.0
	mapMinLon = 91.0
	mapMaxLon = 143.0
)

// Map renders the selected year as a braille bubble map: one disc per
// country at its centroid, disc size scaled by emission value, labeled with
// country name and value. Countries without a known centroid are listed
// under the map instead of being dropped silently.
func Map(records []dataset.EmissionRecord, width, height int) string {
	if len(records) == 0 {
		return ""
	}

	canvas, labels, unmapped := buildMap(records, width, height)

	rows := canvas.Rows()
	for _, l := range labels {
		overlay(rows, l.row, l.col, l.text)
	}

	mapStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Primary)
	out := ""
	for _, row := range rows {
		out += mapStyle.Render(string(row)) + "\n"
	}

	if len(unmapped) > 0 {
		out += Subtle.Render(fmt.Sprintf("no coordinates: %v", unmapped)) + "\n"
	}
	return out
}

// MapCanvas returns the drawn bubble map without labels or styling, for
// export to other formats.
func MapCanvas(records []dataset.EmissionRecord, width, height int) *Canvas {
	canvas, _, _ := buildMap(records, width, height)
	return canvas
}

type mapLabel struct {
	row, col int
	text     string
}

func buildMap(records []dataset.EmissionRecord, width, height int) (*Canvas, []mapLabel, []string) {
	canvas := NewCanvas(width, height)
	subW, subH := width*2, height*4

	max := 0.0
	for _, r := range records {
		if r.CO2PerCapita > max {
			max = r.CO2PerCapita
		}
	}

	// Equator for orientation
	if eqY := projectLat(0, subH); eqY >= 0 && eqY < subH {
		for x := 0; x < subW; x += 5 {
			canvas.Set(x, eqY)
		}
	}

	var labels []mapLabel
	var unmapped []string

	for _, r := range records {
		coord, ok := dataset.CountryCoord(r.Country)
		if !ok {
			unmapped = append(unmapped, r.Country)
			continue
		}

		x := projectLon(coord.Lon, subW)
		y := projectLat(coord.Lat, subH)

		radius := 1
		if max > 0 {
			radius += int(r.CO2PerCapita / max * 5)
		}
		canvas.FillCircle(x, y, radius)

		labels = append(labels, mapLabel{
			row:  y / 4,
			col:  x/2 + radius/2 + 2,
			text: fmt.Sprintf("%s %.1f", r.Country, r.CO2PerCapita),
		})
	}

	return canvas, labels, unmapped
}

func projectLon(lon float64, subW int) int {
	return int((lon - mapMinLon) / (mapMaxLon - mapMinLon) * float64(subW-1))
}

func projectLat(lat float64, subH int) int {
	return int((mapMaxLat - lat) / (mapMaxLat - mapMinLat) * float64(subH-1))
}

// overlay splices a text label into the rendered rune rows, clipped at the
// right edge.
func overlay(rows [][]rune, row, col int, text string) {
	if row < 0 || row >= len(rows) {
		return
	}
	for i, ch := range text {
		c := col + i
		if c < 0 || c >= len(rows[row]) {
			return
		}
		rows[row][c] = ch
	}
}
