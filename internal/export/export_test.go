package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Anastasyalesnussa/aseanco2/internal/dataset"
	"github.com/Anastasyalesnussa/aseanco2/internal/viz"
)

var sampleRecords = []dataset.EmissionRecord{
	{Country: "Indonesia", Year: 2020, CO2PerCapita: 1.8},
	{Country: "Vietnam", Year: 2020, CO2PerCapita: 2.1},
	{Country: "Singapore", Year: 2020, CO2PerCapita: 9.9},
}

func sampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := CSVFile(path, sampleRecords); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	ds, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	return ds
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := CSVFile(path, sampleRecords); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	ds, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if ds.Len() != len(sampleRecords) {
		t.Errorf("expected %d records, got %d", len(sampleRecords), ds.Len())
	}
	if v, ok := ds.Value("Singapore", 2020); !ok || v != 9.9 {
		t.Errorf("expected Singapore 9.9, got %v (ok=%v)", v, ok)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, "data.csv", sampleRecords); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var payload struct {
		Source  string `json:"source"`
		Count   int    `json:"count"`
		Records []struct {
			Country string  `json:"country"`
			Year    int     `json:"year"`
			CO2     float64 `json:"co2_per_capita"`
		} `json:"records"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if payload.Source != "data.csv" {
		t.Errorf("expected source data.csv, got %s", payload.Source)
	}
	if payload.Count != 3 || len(payload.Records) != 3 {
		t.Errorf("expected 3 records, got count=%d len=%d", payload.Count, len(payload.Records))
	}
	if payload.Records[0].Country != "Indonesia" || payload.Records[0].CO2 != 1.8 {
		t.Errorf("unexpected first record: %+v", payload.Records[0])
	}
}

func TestCanvasToSVG(t *testing.T) {
	canvas := viz.NewCanvas(10, 5)
	canvas.Set(3, 3)

	svg := CanvasToSVG(canvas, 4.0)
	if !strings.Contains(svg, "<svg") {
		t.Error("expected svg header")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("expected at least one dot for the set pixel")
	}

	if CanvasToSVG(nil, 4.0) != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestMapSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.svg")
	if err := MapSVG(path, sampleRecords, 80, 24, 4.0); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("expected closed svg document")
	}
}

func TestWorkbook(t *testing.T) {
	ds := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if err := Workbook(path, ds); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Records": false, "By_Year": false, "By_Country": false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing sheet %s", name)
		}
	}

	country, err := f.GetCellValue("Records", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if country != "Indonesia" {
		t.Errorf("expected Indonesia in first record row, got %q", country)
	}

	top, err := f.GetCellValue("By_Year", "G2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if top != "Singapore" {
		t.Errorf("expected Singapore as highest emitter, got %q", top)
	}
}

func TestChartPNGs(t *testing.T) {
	ds := sampleDataset(t)
	dir := t.TempDir()

	linePath := filepath.Join(dir, "line.png")
	if err := LineChartPNG(linePath, ds, 2020); err != nil {
		t.Fatalf("line chart failed: %v", err)
	}

	barPath := filepath.Join(dir, "bar.png")
	if err := BarChartPNG(barPath, ds.FilterByYear(2020), 2020); err != nil {
		t.Fatalf("bar chart failed: %v", err)
	}

	for _, p := range []string{linePath, barPath} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}
