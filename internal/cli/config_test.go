package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tessellate/mosaic/pkg/errors"
	"github.com/tessellate/mosaic/pkg/masonry"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	// Missing file falls back to defaults.
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != masonry.DefaultConfig() {
		t.Errorf("missing config should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "[layout]\ngap = 20.0\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Gap != 20 {
		t.Errorf("Gap = %v, want 20", cfg.Gap)
	}
	// Unset keys keep their defaults.
	if cfg.MinColumnWidth != masonry.DefaultMinColumnWidth {
		t.Errorf("MinColumnWidth = %v, want default", cfg.MinColumnWidth)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeConfig(t, "[layout\ngap = ")

	_, err := loadConfig(path)
	if err == nil {
		t.Fatal("expected error for malformed TOML")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %q, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestLoadConfigNormalizes(t *testing.T) {
	path := writeConfig(t, "[layout]\ngap = -5.0\nmin_column_width = -1.0\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Gap != 0 {
		t.Errorf("negative gap should clamp to 0, got %v", cfg.Gap)
	}
	if cfg.MinColumnWidth != masonry.DefaultMinColumnWidth {
		t.Errorf("non-positive column width should reset to default, got %v", cfg.MinColumnWidth)
	}
}

func TestResolveConfigOverride(t *testing.T) {
	path := writeConfig(t, "[layout]\ngap = 20.0\n")

	cfg, err := resolveConfig(path, func(cfg *masonry.Config) {
		cfg.Gap = 4
	})
	if err != nil {
		t.Fatalf("resolveConfig() error: %v", err)
	}
	if cfg.Gap != 4 {
		t.Errorf("flag override should win, got gap %v", cfg.Gap)
	}
}
