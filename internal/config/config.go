package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/M-D-Ai-Academy-LLC/open-agent-system/pkg/models"
)

// Config represents the settings for a single invocation. It is
// constructed once from environment and CLI input and treated as
// immutable by every downstream component.
type Config struct {
	InputPath  string `mapstructure:"input_path"`  // file to analyze
	OutputFile string `mapstructure:"output_file"` // output file path, stdout if empty
	Format     string `mapstructure:"format"`      // output format: json, text
	Debug      bool   `mapstructure:"debug"`       // enable debug logging
}

// Format is the output serialization format.
type Format int

const (
	FormatJSON Format = iota
	FormatText
)

// LoadConfig loads configuration from environment variables and defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("format", "json")
	v.SetDefault("output_file", "")
	v.SetDefault("debug", false)

	// Read environment variables (FILESTAT_DEBUG=1 enables debug mode)
	v.SetEnvPrefix("FILESTAT")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseFormat validates a format name against the closed format set.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return FormatJSON, &models.ArgumentError{
			Message: fmt.Sprintf("--format must be one of: json, text (got: %s)", name),
		}
	}
}

// GetFormat returns the format enum value.
func (c *Config) GetFormat() Format {
	switch c.Format {
	case "text":
		return FormatText
	default:
		return FormatJSON
	}
}
