package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Anastasyalesnussa/aseanco2/internal/config"
	"github.com/Anastasyalesnussa/aseanco2/internal/dataset"
	"github.com/Anastasyalesnussa/aseanco2/internal/export"
	"github.com/Anastasyalesnussa/aseanco2/internal/stats"
	"github.com/Anastasyalesnussa/aseanco2/internal/tui"
	"github.com/Anastasyalesnussa/aseanco2/internal/viz"
)

var (
	dataFile   string
	configFile string
	themeName  string
	preset     string
	// Chart dimensions for stdout renderings
	chartWidth  int
	chartHeight int
	// Output directory for report files
	outDir string
)

// main registers commands and flags and launches the interactive dashboard
// when no subcommand is given. It exits with status 1 if command execution
// returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "aseanco2",
		Short: "ASEAN CO2 emissions per capita dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataFile, "data", config.DefaultData, "dataset file (csv or xlsx)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	yearsCmd := &cobra.Command{
		Use:   "years",
		Short: "list years in the dataset",
		RunE:  listYears,
	}

	countriesCmd := &cobra.Command{
		Use:   "countries",
		Short: "list countries in the dataset",
		RunE:  listCountries,
	}

	tableCmd := &cobra.Command{
		Use:   "table [year]",
		Short: "list records for a year",
		Args:  cobra.ExactArgs(1),
		RunE:  tableYear,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [country]",
		Short: "plot a country's emission series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotCountry,
	}
	plotCmd.Flags().IntVar(&chartWidth, "width", config.DefaultWidth, "chart width")
	plotCmd.Flags().IntVar(&chartHeight, "height", 15, "chart height")

	barCmd := &cobra.Command{
		Use:   "bar [year]",
		Short: "bar chart comparison for a year",
		Args:  cobra.ExactArgs(1),
		RunE:  barYear,
	}
	barCmd.Flags().IntVar(&chartWidth, "width", config.DefaultWidth, "chart width")

	mapCmd := &cobra.Command{
		Use:   "map [year]",
		Short: "bubble map for a year",
		Args:  cobra.ExactArgs(1),
		RunE:  mapYear,
	}
	mapCmd.Flags().IntVar(&chartWidth, "width", config.DefaultWidth, "map width")
	mapCmd.Flags().IntVar(&chartHeight, "height", config.DefaultHeight, "map height")

	statsCmd := &cobra.Command{
		Use:   "stats [year|country]",
		Short: "summary statistics for a year or country",
		Args:  cobra.ExactArgs(1),
		RunE:  statsArg,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [year]",
		Short: "export a year's records to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [year]",
		Short: "export a year's records to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	reportCmd := &cobra.Command{
		Use:   "report [year]",
		Short: "write PNG charts, SVG map, and XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  writeReport,
	}
	reportCmd.Flags().StringVar(&outDir, "out", "report", "output directory")

	rootCmd.AddCommand(yearsCmd, countriesCmd, tableCmd, plotCmd, barCmd, mapCmd, statsCmd, exportCSVCmd, exportJSONCmd, reportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig layers preset, config file, and flags, lowest to highest.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		tmp := *p
		cfg = &tmp
	}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	if cmd.Flags().Changed("data") || cfg.Data == "" {
		cfg.Data = dataFile
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}

	viz.SetTheme(cfg.Theme)
	return cfg, nil
}

func loadDataset(cmd *cobra.Command) (*dataset.Dataset, *config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	ds, err := dataset.Load(cfg.Data)
	if err != nil {
		return nil, nil, err
	}
	return ds, cfg, nil
}

func parseYear(arg string) (int, error) {
	year, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("bad year %q: %w", arg, err)
	}
	return year, nil
}

func listYears(cmd *cobra.Command, args []string) error {
	ds, _, err := loadDataset(cmd)
	if err != nil {
		return err
	}
	for _, y := range ds.YearList() {
		fmt.Println(y)
	}
	return nil
}

func listCountries(cmd *cobra.Command, args []string) error {
	ds, _, err := loadDataset(cmd)
	if err != nil {
		return err
	}
	for _, c := range ds.Countries() {
		fmt.Println(c)
	}
	return nil
}

func tableYear(cmd *cobra.Command, args []string) error {
	ds, _, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	year, err := parseYear(args[0])
	if err != nil {
		return err
	}

	records := ds.FilterByYear(year)
	if len(records) == 0 {
		fmt.Printf("no records for %d\n", year)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COUNTRY\tYEAR\tCO2/CAPITA")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%d\t%.2f\n", r.Country, r.Year, r.CO2PerCapita)
	}
	return w.Flush()
}

func plotCountry(cmd *cobra.Command, args []string) error {
	ds, _, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	country := args[0]
	series := ds.FilterByCountry(country)
	if len(series) == 0 {
		return fmt.Errorf("no records for country: %s (known: %v)", country, ds.Countries())
	}

	data := make([]float64, len(series))
	for i, r := range series {
		data[i] = r.CO2PerCapita
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption(fmt.Sprintf("%s CO2 per capita, %d-%d (tons)",
			country, series[0].Year, series[len(series)-1].Year)),
	)
	fmt.Println(graph)

	s := stats.SummarizeCountry(country, series)
	fmt.Printf("\nchange: %+.2f (%+.1f%%)  peak: %.2f in %d  trend: %+.4f tons/yr\n",
		s.Change, s.PercentChange, s.PeakValue, s.PeakYear, s.TrendSlope)

	return nil
}

func barYear(cmd *cobra.Command, args []string) error {
	ds, _, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	year, err := parseYear(args[0])
	if err != nil {
		return err
	}

	records := ds.FilterByYear(year)
	if len(records) == 0 {
		fmt.Printf("no records for %d\n", year)
		return nil
	}

	fmt.Printf("CO2 emission per capita (%d)\n\n", year)
	fmt.Print(viz.BarChart(records, chartWidth))
	return nil
}

func mapYear(cmd *cobra.Command, args []string) error {
	ds, _, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	year, err := parseYear(args[0])
	if err != nil {
		return err
	}

	records := ds.FilterByYear(year)
	if len(records) == 0 {
		fmt.Printf("no records for %d\n", year)
		return nil
	}

	fmt.Printf("CO2 emissions per capita — %d\n\n", year)
	fmt.Print(viz.Map(records, chartWidth, chartHeight))
	return nil
}

func statsArg(cmd *cobra.Command, args []string) error {
	ds, _, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	if year, err := strconv.Atoi(args[0]); err == nil {
		s := stats.SummarizeYear(year, ds.FilterByYear(year))
		if s.Count == 0 {
			fmt.Printf("no records for %d\n", year)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "year\t%d\n", s.Year)
		fmt.Fprintf(w, "countries\t%d\n", s.Count)
		fmt.Fprintf(w, "mean\t%.3f\n", s.Mean)
		fmt.Fprintf(w, "min\t%.3f\t%s\n", s.Min, s.BottomCountry)
		fmt.Fprintf(w, "max\t%.3f\t%s\n", s.Max, s.TopCountry)
		fmt.Fprintf(w, "total\t%.3f\n", s.Total)
		return w.Flush()
	}

	country := args[0]
	series := ds.FilterByCountry(country)
	if len(series) == 0 {
		return fmt.Errorf("no records for country: %s (known: %v)", country, ds.Countries())
	}

	s := stats.SummarizeCountry(country, series)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "country\t%s\n", s.Country)
	fmt.Fprintf(w, "span\t%d-%d\n", s.FirstYear, s.LastYear)
	fmt.Fprintf(w, "first\t%.3f\n", s.FirstValue)
	fmt.Fprintf(w, "last\t%.3f\n", s.LastValue)
	fmt.Fprintf(w, "change\t%+.3f (%+.1f%%)\n", s.Change, s.PercentChange)
	fmt.Fprintf(w, "peak\t%.3f in %d\n", s.PeakValue, s.PeakYear)
	fmt.Fprintf(w, "trend\t%+.4f tons/yr\n", s.TrendSlope)
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	ds, _, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	year, err := parseYear(args[0])
	if err != nil {
		return err
	}

	return export.WriteCSV(os.Stdout, ds.FilterByYear(year))
}

func exportJSON(cmd *cobra.Command, args []string) error {
	ds, cfg, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	year, err := parseYear(args[0])
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, cfg.Data, ds.FilterByYear(year))
}

func writeReport(cmd *cobra.Command, args []string) error {
	ds, _, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	year, err := parseYear(args[0])
	if err != nil {
		return err
	}
	year = ds.ClampYear(year)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	records := ds.FilterByYear(year)

	linePath := filepath.Join(outDir, "trends.png")
	if err := export.LineChartPNG(linePath, ds, year); err != nil {
		return fmt.Errorf("line chart: %w", err)
	}

	barPath := filepath.Join(outDir, fmt.Sprintf("comparison_%d.png", year))
	if err := export.BarChartPNG(barPath, records, year); err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}

	mapPath := filepath.Join(outDir, fmt.Sprintf("map_%d.svg", year))
	if err := export.MapSVG(mapPath, records, config.DefaultWidth, config.DefaultHeight, 4.0); err != nil {
		return fmt.Errorf("map: %w", err)
	}

	xlsxPath := filepath.Join(outDir, "report.xlsx")
	if err := export.Workbook(xlsxPath, ds); err != nil {
		return fmt.Errorf("workbook: %w", err)
	}

	fmt.Println("report files:")
	for _, p := range []string{linePath, barPath, mapPath, xlsxPath} {
		fmt.Printf("  %s\n", p)
	}
	return nil
}
