package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// EmissionRecord is one observation: a country's CO2 emissions per capita
// (tons) for a single year. Immutable once loaded.
type EmissionRecord struct {
	Country      string
	Year         int
	CO2PerCapita float64
}

// Dataset holds every record from one source file. It is built once by Load
// and never mutated afterwards.
type Dataset struct {
	records   []EmissionRecord
	minYear   int
	maxYear   int
	countries []string
	path      string
}

// LoadError reports a missing or malformed source file.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Accepted header spellings per column. Cleaned exports of the source data
// use country/year/co2_per_capita, but upstream files vary.
var columnAliases = map[string][]string{
	"country":        {"country", "entity", "country_name"},
	"year":           {"year"},
	"co2_per_capita": {"co2_per_capita", "co2_per_capita_tons", "annual_co2_emissions_per_capita", "emissions_per_capita"},
}

// Load reads a dataset file, validates its schema, and returns the parsed
// records. CSV is the native format; .xlsx files are accepted too. Any
// failure is a *LoadError.
func Load(path string) (*Dataset, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	return parseRows(path, rows)
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "open file", Err: err}
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "read csv", Err: err}
	}
	return rows, nil
}

func parseRows(path string, rows [][]string) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Reason: "empty file"}
	}

	cols, err := resolveColumns(path, rows[0])
	if err != nil {
		return nil, err
	}

	ds := &Dataset{path: path}
	seen := make(map[string]bool)
	countrySet := make(map[string]bool)

	for i, row := range rows[1:] {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		line := i + 2

		if len(row) <= cols.maxIndex() {
			return nil, &LoadError{Path: path, Reason: fmt.Sprintf("line %d: expected at least %d fields, got %d", line, cols.maxIndex()+1, len(row))}
		}

		country := strings.TrimSpace(row[cols.country])
		if country == "" {
			return nil, &LoadError{Path: path, Reason: fmt.Sprintf("line %d: empty country", line)}
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[cols.year]))
		if err != nil {
			return nil, &LoadError{Path: path, Reason: fmt.Sprintf("line %d: bad year %q", line, row[cols.year]), Err: err}
		}

		val, err := strconv.ParseFloat(strings.TrimSpace(row[cols.value]), 64)
		if err != nil {
			return nil, &LoadError{Path: path, Reason: fmt.Sprintf("line %d: bad co2_per_capita %q", line, row[cols.value]), Err: err}
		}
		if val < 0 {
			return nil, &LoadError{Path: path, Reason: fmt.Sprintf("line %d: negative co2_per_capita %.4f", line, val)}
		}

		key := fmt.Sprintf("%s|%d", country, year)
		if seen[key] {
			return nil, &LoadError{Path: path, Reason: fmt.Sprintf("line %d: duplicate record for %s %d", line, country, year)}
		}
		seen[key] = true

		ds.records = append(ds.records, EmissionRecord{Country: country, Year: year, CO2PerCapita: val})
		countrySet[country] = true

		if len(ds.records) == 1 || year < ds.minYear {
			ds.minYear = year
		}
		if len(ds.records) == 1 || year > ds.maxYear {
			ds.maxYear = year
		}
	}

	if len(ds.records) == 0 {
		return nil, &LoadError{Path: path, Reason: "no data rows"}
	}

	ds.countries = make([]string, 0, len(countrySet))
	for c := range countrySet {
		ds.countries = append(ds.countries, c)
	}
	sort.Strings(ds.countries)

	return ds, nil
}

type columnIndex struct {
	country, year, value int
}

func (c columnIndex) maxIndex() int {
	max := c.country
	if c.year > max {
		max = c.year
	}
	if c.value > max {
		max = c.value
	}
	return max
}

func resolveColumns(path string, header []string) (columnIndex, error) {
	idx := columnIndex{country: -1, year: -1, value: -1}

	find := func(canonical string) int {
		for i, h := range header {
			norm := normalizeHeader(h)
			for _, alias := range columnAliases[canonical] {
				if norm == alias {
					return i
				}
			}
		}
		return -1
	}

	idx.country = find("country")
	idx.year = find("year")
	idx.value = find("co2_per_capita")

	var missing []string
	if idx.country == -1 {
		missing = append(missing, "country")
	}
	if idx.year == -1 {
		missing = append(missing, "year")
	}
	if idx.value == -1 {
		missing = append(missing, "co2_per_capita")
	}
	if len(missing) > 0 {
		return idx, &LoadError{Path: path, Reason: "missing column(s): " + strings.Join(missing, ", ")}
	}
	return idx, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "(", "")
	h = strings.ReplaceAll(h, ")", "")
	// Strip the unicode subscript some exports use in "CO₂".
	h = strings.ReplaceAll(h, "co₂", "co2")
	return h
}

// FilterByYear returns every record for the given year in file order. An
// absent year yields an empty slice, not an error.
func (d *Dataset) FilterByYear(year int) []EmissionRecord {
	out := make([]EmissionRecord, 0)
	for _, r := range d.records {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCountry returns one country's series ordered by year.
func (d *Dataset) FilterByCountry(country string) []EmissionRecord {
	out := make([]EmissionRecord, 0)
	for _, r := range d.records {
		if r.Country == country {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Value returns the emission value for one (country, year) pair.
func (d *Dataset) Value(country string, year int) (float64, bool) {
	for _, r := range d.records {
		if r.Country == country && r.Year == year {
			return r.CO2PerCapita, true
		}
	}
	return 0, false
}

// Years returns the dataset's year bounds.
func (d *Dataset) Years() (min, max int) { return d.minYear, d.maxYear }

// YearList returns every distinct year in ascending order.
func (d *Dataset) YearList() []int {
	set := make(map[int]bool)
	for _, r := range d.records {
		set[r.Year] = true
	}
	years := make([]int, 0, len(set))
	for y := range set {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Countries returns every distinct country in ascending order.
func (d *Dataset) Countries() []string {
	out := make([]string, len(d.countries))
	copy(out, d.countries)
	return out
}

// Records returns all records in file order.
func (d *Dataset) Records() []EmissionRecord {
	out := make([]EmissionRecord, len(d.records))
	copy(out, d.records)
	return out
}

func (d *Dataset) Len() int { return len(d.records) }

// Path returns the source file the dataset was loaded from.
func (d *Dataset) Path() string { return d.path }

// ClampYear bounds a year selection to the dataset's range.
func (d *Dataset) ClampYear(year int) int {
	if year < d.minYear {
		return d.minYear
	}
	if year > d.maxYear {
		return d.maxYear
	}
	return year
}
