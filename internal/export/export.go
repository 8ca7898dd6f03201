// Package export writes dataset views to files other tools can read: CSV
// and JSON for data, SVG/PNG for rendered charts, XLSX for a full report.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/Anastasyalesnussa/aseanco2/internal/dataset"
)

// WriteCSV emits records with the canonical header, the same schema Load
// accepts back.
func WriteCSV(w io.Writer, records []dataset.EmissionRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"country", "year", "co2_per_capita"}); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Country,
			strconv.Itoa(r.Year),
			strconv.FormatFloat(r.CO2PerCapita, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVFile writes records to a file.
func CSVFile(path string, records []dataset.EmissionRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, records)
}

type jsonRecord struct {
	Country      string  `json:"country"`
	Year         int     `json:"year"`
	CO2PerCapita float64 `json:"co2_per_capita"`
}

type jsonPayload struct {
	Source  string       `json:"source"`
	Count   int          `json:"count"`
	Records []jsonRecord `json:"records"`
}

// WriteJSON emits records with their source path as indented JSON.
func WriteJSON(w io.Writer, source string, records []dataset.EmissionRecord) error {
	payload := jsonPayload{
		Source:  source,
		Count:   len(records),
		Records: make([]jsonRecord, len(records)),
	}
	for i, r := range records {
		payload.Records[i] = jsonRecord{Country: r.Country, Year: r.Year, CO2PerCapita: r.CO2PerCapita}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// JSONFile writes records to a file.
func JSONFile(path, source string, records []dataset.EmissionRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, source, records)
}
