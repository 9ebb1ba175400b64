package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/typeglass/fontcompare/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fontcompare.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading and validation
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
root: /projects/specimen
fontPaths:
  - /opt/fonts
  - /srv/fonts
include: "^Noto"
exclude: "Mono$"
ppi: 150
variants: true
fallback: true
workers: 4
`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Root != "/projects/specimen" {
		t.Errorf("Root = %q", cfg.Root)
	}
	if len(cfg.FontPaths) != 2 || cfg.FontPaths[0] != "/opt/fonts" {
		t.Errorf("FontPaths = %v", cfg.FontPaths)
	}
	if cfg.Include != "^Noto" || cfg.Exclude != "Mono$" {
		t.Errorf("filters = %q / %q", cfg.Include, cfg.Exclude)
	}
	if cfg.PPI != 150 || !cfg.Variants || !cfg.Fallback || cfg.Workers != 4 {
		t.Errorf("options = %+v", cfg)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig("")
	if !errors.Is(err, config.ErrEmptyConfigName) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_UnknownField(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "root: /x\nbogus: true\n")
	_, err := config.LoadConfig(path)
	if !errors.Is(err, config.ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"negative ppi", "ppi: -10\n"},
		{"negative workers", "workers: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.content)
			if _, err := config.LoadConfig(path); err == nil {
				t.Error("LoadConfig() accepted an invalid value")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	if err := config.DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error: %v", err)
	}

	bad := &config.Config{PPI: -1}
	if err := bad.Validate(); err == nil {
		t.Error("Validate() accepted a negative ppi")
	}
}
