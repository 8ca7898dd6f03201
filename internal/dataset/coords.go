package dataset

// Coord is a country centroid in degrees.
type Coord struct {
	Lat float64
	Lon float64
}

// Centroids for the ten ASEAN members, used by the map view when the source
// file carries no latitude/longitude columns.
var countryCoords = map[string]Coord{
	"Indonesia":   {-0.7893, 113.9213},
	"Malaysia":    {4.2105, 101.9758},
	"Thailand":    {15.8700, 100.9925},
	"Vietnam":     {14.0583, 108.2772},
	"Philippines": {12.8797, 121.7740},
	"Singapore":   {1.3521, 103.8198},
	"Myanmar":     {21.9162, 95.9560},
	"Cambodia":    {12.5657, 104.9910},
	"Laos":        {19.8563, 102.4955},
	"Brunei":      {4.5353, 114.7277},
}

// Alternate spellings seen in upstream exports.
var countryAlias = map[string]string{
	"Viet Nam":          "Vietnam",
	"Lao PDR":           "Laos",
	"Brunei Darussalam": "Brunei",
	"Burma":             "Myanmar",
}

// CountryCoord returns the centroid for a country, resolving known alternate
// spellings. Unknown countries report ok=false.
func CountryCoord(country string) (Coord, bool) {
	if canonical, aliased := countryAlias[country]; aliased {
		country = canonical
	}
	c, ok := countryCoords[country]
	return c, ok
}
