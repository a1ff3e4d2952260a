package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tessellate/mosaic/pkg/errors"
	"github.com/tessellate/mosaic/pkg/masonry"
)

// fileConfig is the on-disk configuration shape (~/.config/mosaic/config.toml).
//
//	[layout]
//	min_column_width = 240.0
//	gap = 12.0
//	buffer = 1000.0
//	pagination_threshold = 500.0
type fileConfig struct {
	Layout masonry.Config `toml:"layout"`
}

// loadConfig reads the config file at path and returns the layout
// parameters with defaults filled in. A missing file is not an error;
// defaults are returned.
func loadConfig(path string) (masonry.Config, error) {
	cfg := masonry.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	fc := fileConfig{Layout: cfg}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return fc.Layout.Normalize(), nil
}

// resolveConfig loads the user config (explicit path, or the XDG default
// when flagPath is empty) and applies flag overrides on top. A flag that
// was not changed keeps the config file's value.
func resolveConfig(flagPath string, override func(cfg *masonry.Config)) (masonry.Config, error) {
	path := flagPath
	if path == "" {
		if p, err := configPath(); err == nil {
			path = p
		}
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return cfg, err
	}
	if override != nil {
		override(&cfg)
	}
	return cfg.Normalize(), nil
}
