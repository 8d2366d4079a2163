package contract

import (
	"fmt"

	"github.com/gitpulse/gitpulse/schema"
)

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Path        string `mapstructure:"path"`
	URL         string `mapstructure:"url"`
	JSON        bool   `mapstructure:"json"`
	OutputFile  string `mapstructure:"output-file"`
	ParquetFile string `mapstructure:"parquet"`
	Color       string `mapstructure:"color"`
	Width       int    `mapstructure:"width"`
}

// Config holds the runtime configuration for an analysis.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath    string
	URL         string
	Output      schema.OutputMode
	OutputFile  string
	// OutputAppend makes writers append to OutputFile instead of
	// truncating it. Set by the combined run so its sections share one
	// file; never set from user input.
	OutputAppend bool
	ParquetFile  string
	Color        bool
	Width        int
}

// ProcessAndValidate turns raw input into a validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.RepoPath = input.Path
	if cfg.RepoPath == "" {
		cfg.RepoPath = "."
	}
	cfg.URL = input.URL

	cfg.Output = schema.TextOut
	if input.JSON {
		cfg.Output = schema.JSONOut
	}
	cfg.OutputFile = input.OutputFile
	cfg.ParquetFile = input.ParquetFile

	colorEnabled, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.Color = colorEnabled

	if input.Width < 0 {
		return fmt.Errorf("invalid --width value: %d", input.Width)
	}
	cfg.Width = input.Width

	return nil
}
