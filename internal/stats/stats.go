// Package stats computes descriptive summaries over emission records. The
// trend slope is a least-squares fit of the observed series, a description
// of the past rather than a forecast.
package stats

import (
	"github.com/Anastasyalesnussa/aseanco2/internal/dataset"
)

// YearSummary aggregates one year across countries.
type YearSummary struct {
	Year          int
	Count         int
	Mean          float64
	Min           float64
	Max           float64
	Total         float64
	TopCountry    string
	BottomCountry string
}

// SummarizeYear reduces a single-year slice of records. A zero-count
// summary means the year is absent from the dataset.
func SummarizeYear(year int, records []dataset.EmissionRecord) YearSummary {
	s := YearSummary{Year: year}
	for _, r := range records {
		if r.Year != year {
			continue
		}
		v := r.CO2PerCapita
		if s.Count == 0 || v < s.Min {
			s.Min = v
			s.BottomCountry = r.Country
		}
		if s.Count == 0 || v > s.Max {
			s.Max = v
			s.TopCountry = r.Country
		}
		s.Total += v
		s.Count++
	}
	if s.Count > 0 {
		s.Mean = s.Total / float64(s.Count)
	}
	return s
}

// CountrySummary aggregates one country's series.
type CountrySummary struct {
	Country       string
	FirstYear     int
	LastYear      int
	FirstValue    float64
	LastValue     float64
	Change        float64
	PercentChange float64
	PeakYear      int
	PeakValue     float64
	TrendSlope    float64 // tons per capita per year
}

// SummarizeCountry reduces a country series ordered by year, as returned by
// Dataset.FilterByCountry.
func SummarizeCountry(country string, series []dataset.EmissionRecord) CountrySummary {
	s := CountrySummary{Country: country}
	if len(series) == 0 {
		return s
	}

	first, last := series[0], series[len(series)-1]
	s.FirstYear, s.FirstValue = first.Year, first.CO2PerCapita
	s.LastYear, s.LastValue = last.Year, last.CO2PerCapita
	s.Change = s.LastValue - s.FirstValue
	if s.FirstValue != 0 {
		s.PercentChange = s.Change / s.FirstValue * 100
	}

	s.PeakYear, s.PeakValue = first.Year, first.CO2PerCapita
	for _, r := range series {
		if r.CO2PerCapita > s.PeakValue {
			s.PeakYear, s.PeakValue = r.Year, r.CO2PerCapita
		}
	}

	s.TrendSlope = trendSlope(series)
	return s
}

// trendSlope is the ordinary least squares slope of value over year.
func trendSlope(series []dataset.EmissionRecord) float64 {
	n := float64(len(series))
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for _, r := range series {
		x, y := float64(r.Year), r.CO2PerCapita
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}
