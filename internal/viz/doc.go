// Package viz renders the dashboard's three views in the terminal.
//
//   - [LineChart]: per-country emission trends on a shared year axis
//   - [BarChart]: single-year country ranking with scaled bars
//   - [Map]: braille bubble map of the ASEAN region
//   - [Canvas]: Braille-based pixel canvas backing the map view
//
// Theme selection with built-in color schemes; all renderers consult
// [CurrentTheme].
package viz
