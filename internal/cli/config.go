// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvmatrix/matrixio"
)

// Config is the content of the --config TOML file.
//
//	separator    = ", "
//	precision    = 3
//	wrap_by_row  = false
//	default_mode = "column"
type Config struct {
	Separator   string `toml:"separator"`    // value separator for printed lines
	Precision   int    `toml:"precision"`    // decimals for floats, -1 for shortest
	WrapByRow   bool   `toml:"wrap_by_row"`  // linear order used by walk --order linear
	DefaultMode string `toml:"default_mode"` // traversal used by show without --mode
}

// defaultConfig mirrors the matrix and matrixio defaults.
func defaultConfig() Config {
	return Config{
		Separator:   matrixio.DefaultSeparator,
		Precision:   matrixio.DefaultPrecision,
		WrapByRow:   true,
		DefaultMode: "row",
	}
}

// loadConfig decodes path over the defaults. An empty path returns the
// defaults. Unknown keys are logged as warnings and otherwise ignored.
func loadConfig(path string, logger *log.Logger) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "file", path, "key", key.String())
	}
	if cfg.Precision < -1 {
		return cfg, fmt.Errorf("config %s: precision %d must be >= -1", path, cfg.Precision)
	}
	if _, err = matrixio.ParseTraversal(cfg.DefaultMode, 0); err != nil {
		return cfg, fmt.Errorf("config %s: default_mode: %w", path, err)
	}
	logger.Debug("loaded config", "file", path, "separator", cfg.Separator, "precision", cfg.Precision,
		"wrap_by_row", cfg.WrapByRow, "default_mode", cfg.DefaultMode)

	return cfg, nil
}

// writeOptions converts the config into matrixio writer options.
func (c Config) writeOptions() []matrixio.Option {
	return []matrixio.Option{
		matrixio.WithSeparator(c.Separator),
		matrixio.WithPrecision(c.Precision),
	}
}

func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the config stored in ctx, or the defaults.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return defaultConfig()
}
