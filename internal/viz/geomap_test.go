package viz

import (
	"strings"
	"testing"

	"github.com/Anastasyalesnussa/aseanco2/internal/dataset"
)

func TestMapLabelsCountries(t *testing.T) {
	records := []dataset.EmissionRecord{
		{Country: "Indonesia", Year: 2020, CO2PerCapita: 1.8},
		{Country: "Singapore", Year: 2020, CO2PerCapita: 9.9},
	}

	out := Map(records, 80, 24)
	if out == "" {
		t.Fatal("expected map output")
	}
	if !strings.Contains(out, "Indonesia 1.8") {
		t.Error("expected Indonesia label with value")
	}
	if !strings.Contains(out, "Singapore 9.9") {
		t.Error("expected Singapore label with value")
	}
}

func TestMapUnknownCountryListed(t *testing.T) {
	records := []dataset.EmissionRecord{
		{Country: "Singapore", Year: 2020, CO2PerCapita: 9.9},
		{Country: "Atlantis", Year: 2020, CO2PerCapita: 3.0},
	}

	out := Map(records, 80, 24)
	if !strings.Contains(out, "Atlantis") {
		t.Error("expected unmapped country to be listed")
	}
}

func TestMapEmpty(t *testing.T) {
	if out := Map(nil, 80, 24); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestProjection(t *testing.T) {
	subW, subH := 160, 96

	for country := range map[string]bool{"Indonesia": true, "Myanmar": true, "Singapore": true} {
		c, ok := dataset.CountryCoord(country)
		if !ok {
			t.Fatalf("missing coord for %s", country)
		}
		x := projectLon(c.Lon, subW)
		y := projectLat(c.Lat, subH)
		if x < 0 || x >= subW {
			t.Errorf("%s: x=%d out of [0,%d)", country, x, subW)
		}
		if y < 0 || y >= subH {
			t.Errorf("%s: y=%d out of [0,%d)", country, y, subH)
		}
	}

	// North maps above south on screen
	my, _ := dataset.CountryCoord("Myanmar")
	id, _ := dataset.CountryCoord("Indonesia")
	if projectLat(my.Lat, subH) >= projectLat(id.Lat, subH) {
		t.Error("Myanmar should project above Indonesia")
	}
}

func TestOverlayClipped(t *testing.T) {
	rows := [][]rune{[]rune("....."), []rune(".....")}

	overlay(rows, 0, 2, "ab")
	if string(rows[0]) != "..ab." {
		t.Errorf("unexpected row: %s", string(rows[0]))
	}

	// Clipping at the right edge and out-of-range rows are no-ops
	overlay(rows, 1, 4, "xyz")
	if string(rows[1]) != "....x" {
		t.Errorf("unexpected clipped row: %s", string(rows[1]))
	}
	overlay(rows, 5, 0, "zz")
}
