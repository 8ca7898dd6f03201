package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Anastasyalesnussa/aseanco2/internal/dataset"
	"github.com/Anastasyalesnussa/aseanco2/internal/stats"
)

// Workbook writes the full dataset plus per-year and per-country summary
// sheets.
func Workbook(path string, ds *dataset.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Records")

	headers := []string{"Country", "Year", "CO2 per Capita (tons)"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Records", cell, header)
		f.SetColWidth("Records", cell[:1], cell[:1], 22)
	}
	for i, r := range ds.Records() {
		row := i + 2
		f.SetCellValue("Records", fmt.Sprintf("A%d", row), r.Country)
		f.SetCellValue("Records", fmt.Sprintf("B%d", row), r.Year)
		f.SetCellValue("Records", fmt.Sprintf("C%d", row), r.CO2PerCapita)
	}

	if _, err := f.NewSheet("By_Year"); err != nil {
		return err
	}
	yearHeaders := []string{"Year", "Countries", "Mean", "Min", "Max", "Total", "Highest", "Lowest"}
	for i, header := range yearHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("By_Year", cell, header)
		f.SetColWidth("By_Year", cell[:1], cell[:1], 14)
	}
	for i, year := range ds.YearList() {
		s := stats.SummarizeYear(year, ds.FilterByYear(year))
		row := i + 2
		f.SetCellValue("By_Year", fmt.Sprintf("A%d", row), s.Year)
		f.SetCellValue("By_Year", fmt.Sprintf("B%d", row), s.Count)
		f.SetCellValue("By_Year", fmt.Sprintf("C%d", row), fmt.Sprintf("%.3f", s.Mean))
		f.SetCellValue("By_Year", fmt.Sprintf("D%d", row), s.Min)
		f.SetCellValue("By_Year", fmt.Sprintf("E%d", row), s.Max)
		f.SetCellValue("By_Year", fmt.Sprintf("F%d", row), fmt.Sprintf("%.3f", s.Total))
		f.SetCellValue("By_Year", fmt.Sprintf("G%d", row), s.TopCountry)
		f.SetCellValue("By_Year", fmt.Sprintf("H%d", row), s.BottomCountry)
	}

	if _, err := f.NewSheet("By_Country"); err != nil {
		return err
	}
	countryHeaders := []string{"Country", "First Year", "Last Year", "First Value", "Last Value",
		"Change", "Change (%)", "Peak Year", "Peak Value", "Trend (tons/yr)"}
	for i, header := range countryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("By_Country", cell, header)
		f.SetColWidth("By_Country", cell[:1], cell[:1], 14)
	}
	for i, country := range ds.Countries() {
		s := stats.SummarizeCountry(country, ds.FilterByCountry(country))
		row := i + 2
		f.SetCellValue("By_Country", fmt.Sprintf("A%d", row), s.Country)
		f.SetCellValue("By_Country", fmt.Sprintf("B%d", row), s.FirstYear)
		f.SetCellValue("By_Country", fmt.Sprintf("C%d", row), s.LastYear)
		f.SetCellValue("By_Country", fmt.Sprintf("D%d", row), s.FirstValue)
		f.SetCellValue("By_Country", fmt.Sprintf("E%d", row), s.LastValue)
		f.SetCellValue("By_Country", fmt.Sprintf("F%d", row), fmt.Sprintf("%.3f", s.Change))
		f.SetCellValue("By_Country", fmt.Sprintf("G%d", row), fmt.Sprintf("%.1f%%", s.PercentChange))
		f.SetCellValue("By_Country", fmt.Sprintf("H%d", row), s.PeakYear)
		f.SetCellValue("By_Country", fmt.Sprintf("I%d", row), s.PeakValue)
		f.SetCellValue("By_Country", fmt.Sprintf("J%d", row), fmt.Sprintf("%.4f", s.TrendSlope))
	}

	return f.SaveAs(path)
}
