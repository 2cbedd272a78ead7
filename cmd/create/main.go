package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/anrid/inflation-stats/pkg/config"
	"github.com/anrid/inflation-stats/pkg/stats"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagDatabase string
	flagFile     string
	flagURL      string
)

var rootCmd = &cobra.Command{
	Use:   "create",
	Short: "Build the inflation rate database",
	Long: "Import yearly inflation rates from an XLS/XLSX table (local file or URL)\n" +
		"into the JSON database. Without a source the bundled data is stored.",
	RunE: runCreate,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "TOML config file")
	rootCmd.Flags().StringVar(&flagDatabase, "db", "", "Database file (overrides config)")
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Local XLS/XLSX file with yearly rates")
	rootCmd.Flags().StringVarP(&flagURL, "url", "u", "", "URL of an XLS/XLSX file with yearly rates")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	if flagFile != "" && flagURL != "" {
		return errors.New("use either --file or --url, not both")
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDatabase != "" {
		cfg.Data.Database = flagDatabase
	}

	db, found, err := stats.LoadIfExists(cfg.Data.Database)
	if err != nil {
		return err
	}
	if !found {
		db = stats.NewDatabase()
	}

	var source *stats.File
	switch {
	case flagFile != "":
		source = &stats.File{URL: flagFile, Title: filepath.Base(flagFile)}
		err = source.ReadContent()
	case flagURL != "":
		source = &stats.File{URL: flagURL, Title: filepath.Base(flagURL)}
		err = source.DownloadContent()
	}
	if err != nil {
		return err
	}

	if source == nil {
		for _, d := range stats.BuiltinDatasets() {
			db.Put(d)
		}
	} else {
		datasets, err := stats.ExtractDatasets(source, cfg.Data.Countries...)
		if err != nil {
			return err
		}
		for _, d := range datasets {
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %d - %d\n", d.Country, d.StartYear, d.EndYear()-1)
			db.Put(d)
		}
		db.Sources = append(db.Sources, source)
	}

	db.Updated = time.Now()
	if err := db.Save(cfg.Data.Database); err != nil {
		return err
	}

	db.Info(cmd.OutOrStdout())
	return nil
}
