// Package config loads the inflation-stats settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all inflation-stats configuration.
type Config struct {
	Projection ProjectionConfig `toml:"projection"`
	Data       DataConfig       `toml:"data"`
}

// ProjectionConfig describes the sum being saved and the saving period.
// EndYear is exclusive.
type ProjectionConfig struct {
	Principal float64 `toml:"principal"`
	StartYear int     `toml:"start_year"`
	EndYear   int     `toml:"end_year"`
}

// DataConfig says where the rate data lives and which countries to compare.
type DataConfig struct {
	Database  string   `toml:"database"`
	Countries []string `toml:"countries"`
}

// Default returns the reference Czech / Slovak comparison.
func Default() Config {
	return Config{
		Projection: ProjectionConfig{
			Principal: 5_000_000,
			StartYear: 1993,
			EndYear:   2023,
		},
		Data: DataConfig{
			Database:  filepath.Join(os.TempDir(), "inflation-stats.json"),
			Countries: []string{"Czech Republic", "Slovak Republic"},
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Projection.Principal <= 0 {
		return fmt.Errorf("projection.principal must be positive, got %v", c.Projection.Principal)
	}
	if len(c.Data.Countries) != 2 {
		return fmt.Errorf("data.countries must name exactly two countries, got %d", len(c.Data.Countries))
	}
	if c.Data.Database == "" {
		return errors.New("data.database must not be empty")
	}
	return nil
}
