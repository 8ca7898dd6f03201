// Package dataset loads and filters the ASEAN CO2-per-capita table.
//
// A [Dataset] is built once from a CSV or XLSX file and treated as read-only
// for the rest of the session. Filtering a year or a country never fails on
// empty results; schema problems surface as [*LoadError] at load time.
package dataset
