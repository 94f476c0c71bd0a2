// Package config handles planecast configuration loading and management.
package config

import "fmt"

// Output formats accepted by OutputConfig.Format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds all planecast settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OutputConfig controls how cast results are printed.
type OutputConfig struct {
	Format     string `yaml:"format"`      // text or yaml
	ShowMisses bool   `yaml:"show_misses"` // also print ray/plane pairs that do not intersect
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Output: OutputConfig{
			Format:     FormatText,
			ShowMisses: false,
		},
	}
}

// Validate reports settings that cannot be honoured.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Output.Format, FormatText, FormatYAML)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
