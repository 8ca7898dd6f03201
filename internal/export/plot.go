package export

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Anastasyalesnussa/aseanco2/internal/dataset"
)

var linePalette = []color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 128, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
	{R: 0, G: 200, B: 200, A: 255},
	{R: 200, G: 0, B: 200, A: 255},
	{R: 128, G: 128, B: 0, A: 255},
	{R: 135, G: 206, B: 235, A: 255},
	{R: 220, G: 20, B: 60, A: 255},
	{R: 70, G: 130, B: 180, A: 255},
}

// LineChartPNG plots every country's series over time, with a dashed
// vertical rule at the focus year.
func LineChartPNG(path string, ds *dataset.Dataset, focusYear int) error {
	p := plot.New()
	p.Title.Text = "CO2 Emission per Capita Over Time (ASEAN)"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "CO2 (tons per capita)"

	maxVal := 0.0
	for i, country := range ds.Countries() {
		series := ds.FilterByCountry(country)
		points := make(plotter.XYs, len(series))
		for j, r := range series {
			points[j].X = float64(r.Year)
			points[j].Y = r.CO2PerCapita
			if r.CO2PerCapita > maxVal {
				maxVal = r.CO2PerCapita
			}
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("line for %s: %w", country, err)
		}
		line.Color = linePalette[i%len(linePalette)]
		line.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(country, line)
	}

	// Focus year rule
	minYear, maxYear := ds.Years()
	if focusYear >= minYear && focusYear <= maxYear {
		marker, err := plotter.NewLine(plotter.XYs{
			{X: float64(focusYear), Y: 0},
			{X: float64(focusYear), Y: maxVal * 1.05},
		})
		if err != nil {
			return err
		}
		marker.Color = color.RGBA{R: 255, A: 255}
		marker.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(marker)
	}

	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// BarChartPNG plots one year's country ranking, sorted descending, with
// value labels above the bars.
func BarChartPNG(path string, records []dataset.EmissionRecord, year int) error {
	sorted := make([]dataset.EmissionRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CO2PerCapita > sorted[j].CO2PerCapita })

	p := plot.New()
	p.Title.Text = fmt.Sprintf("CO2 Emission per Capita (%d)", year)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Country"
	p.Y.Label.Text = "CO2 (tons per capita)"

	values := make(plotter.Values, len(sorted))
	labels := make([]string, len(sorted))
	maxVal := 0.0
	for i, r := range sorted {
		values[i] = r.CO2PerCapita
		labels[i] = r.Country
		if r.CO2PerCapita > maxVal {
			maxVal = r.CO2PerCapita
		}
	}

	bars, err := plotter.NewBarChart(values, vg.Points(25))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XCenter
	p.Y.Min = 0
	p.Y.Max = maxVal * 1.15

	for i, val := range values {
		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: float64(i), Y: val + maxVal*0.02}},
			Labels: []string{fmt.Sprintf("%.2f", val)},
		})
		if err != nil {
			return err
		}
		p.Add(label)
	}

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}
