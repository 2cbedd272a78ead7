package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Projection.Principal != 5_000_000 || cfg.Projection.StartYear != 1993 || cfg.Projection.EndYear != 2023 {
		t.Fatalf("unexpected defaults: %+v", cfg.Projection)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[projection]
principal = 1000.0
start_year = 2000

[data]
database = "/var/lib/rates.json"
countries = ["Austria", "Hungary"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{
		Projection: ProjectionConfig{Principal: 1000, StartYear: 2000, EndYear: 2023},
		Data:       DataConfig{Database: "/var/lib/rates.json", Countries: []string{"Austria", "Hungary"}},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[projection\n", "parsing config"},
		{"principal", "[projection]\nprincipal = -1.0\n", "principal must be positive"},
		{"countries", "[data]\ncountries = [\"Austria\"]\n", "exactly two countries"},
		{"database", "[data]\ndatabase = \"\"\n", "database must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}
