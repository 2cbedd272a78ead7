package main

import (
	"fmt"
	"log"
	"os"

	"github.com/anrid/inflation-stats/pkg/config"
	"github.com/anrid/inflation-stats/pkg/stats"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagDatabase  string
	flagPrincipal float64
	flagDebug     bool
)

var rootCmd = &cobra.Command{
	Use:   "show",
	Short: "Compare how inflation ate savings in two countries",
	RunE:  runShow,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "TOML config file")
	rootCmd.Flags().StringVar(&flagDatabase, "db", "", "Database file (overrides config)")
	rootCmd.Flags().Float64VarP(&flagPrincipal, "principal", "p", 0, "Amount saved (overrides config)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Dump tracker state")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDatabase != "" {
		cfg.Data.Database = flagDatabase
	}
	if flagPrincipal != 0 {
		cfg.Projection.Principal = flagPrincipal
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	datasets, err := loadDatasets(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report := stats.NewReport(out)

	tracker := stats.NewRateTracker(datasets[0].Country)
	if flagDebug {
		tracker.SetLogger(log.New(cmd.ErrOrStderr(), "", 0))
	}

	pc := cfg.Projection
	var outcomes []stats.Outcome

	for i, d := range datasets {
		if i > 0 {
			// Reuse the tracker for the next country.
			tracker.Clear()
			report.PrintData(tracker)
			tracker.Rename(d.Country)
		}

		d.Fill(tracker)
		if flagDebug {
			spew.Fdump(cmd.ErrOrStderr(), tracker.Entries())
		}

		report.PrintData(tracker)
		report.PrintExtremes(tracker)

		p := tracker.FutureValue(pc.Principal, pc.StartYear, pc.EndYear)
		p.Value = stats.Round2(p.Value)
		report.PrintProjection(pc.Principal, pc.StartYear, pc.EndYear, p)

		outcomes = append(outcomes, stats.Outcome{Country: d.Country, Value: p.Value})
	}

	report.PrintVerdict(outcomes[0], outcomes[1])
	return nil
}

// loadDatasets returns the configured countries from the database, or the
// built-in data when no database has been created yet.
func loadDatasets(cfg config.Config) ([]*stats.Dataset, error) {
	db, found, err := stats.LoadIfExists(cfg.Data.Database)
	if err != nil {
		return nil, err
	}
	if !found {
		db = stats.NewDatabase()
		for _, d := range stats.BuiltinDatasets() {
			db.Put(d)
		}
	}
	if flagDebug {
		db.Info(os.Stderr)
	}

	var out []*stats.Dataset
	for _, country := range cfg.Data.Countries {
		d, ok := db.Find(country)
		if !ok {
			return nil, fmt.Errorf("no data for '%s', run the create command in `cmd/create` first", country)
		}
		out = append(out, d)
	}
	return out, nil
}
