// Package config loads codegauge settings from a config file, environment
// variables and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"

	"github.com/phobologic/codegauge/internal/lang"
	"github.com/phobologic/codegauge/internal/logging"
	"github.com/phobologic/codegauge/internal/report"
	"github.com/phobologic/codegauge/internal/rules"
)

// FileName is the config file searched for in the working directory.
const FileName = ".codegauge.yaml"

const (
	configName = ".codegauge"
	configType = "yaml"
	envPrefix  = "CODEGAUGE"
)

// Defaults.
const (
	DefaultMaxFileSize = "1 MB"
	DefaultFormat      = report.FormatText
	DefaultLogLevel    = "warn"
)

// Sentinel validation errors.
var (
	ErrInvalidThreshold = errors.New("invalid threshold")
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrInvalidSize      = errors.New("invalid file size")
	ErrInvalidWorkers   = errors.New("invalid worker count")
)

// Config is the top-level configuration.
type Config struct {
	Thresholds rules.Thresholds `mapstructure:"thresholds" yaml:"thresholds"`
	Analysis   AnalysisConfig   `mapstructure:"analysis" yaml:"analysis"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// AnalysisConfig controls which files are analyzed and how.
type AnalysisConfig struct {
	Languages   []string `mapstructure:"languages" yaml:"languages"`
	MaxFileSize string   `mapstructure:"max_file_size" yaml:"max_file_size"`
	Workers     int      `mapstructure:"workers" yaml:"workers"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format       string `mapstructure:"format" yaml:"format"`
	MaxFunctions int    `mapstructure:"max_functions" yaml:"max_functions"`
	Color        bool   `mapstructure:"color" yaml:"color"`
}

// LoggingConfig controls diagnostic output on stderr.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Thresholds: rules.Defaults(),
		Analysis:   AnalysisConfig{Languages: []string{}, MaxFileSize: DefaultMaxFileSize},
		Output:     OutputConfig{Format: DefaultFormat, Color: true},
		Logging:    LoggingConfig{Level: DefaultLogLevel, Format: logging.FormatText},
	}
}

// Load reads configuration from path, or from FileName in dir when path is
// empty. A missing config file is not an error.
func Load(path, dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		if dir == "" {
			dir = "."
		}
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("thresholds.long_function", d.Thresholds.LongFunction)
	v.SetDefault("thresholds.many_params", d.Thresholds.ManyParams)
	v.SetDefault("thresholds.high_complexity", d.Thresholds.HighComplexity)

	v.SetDefault("analysis.languages", d.Analysis.Languages)
	v.SetDefault("analysis.max_file_size", d.Analysis.MaxFileSize)
	v.SetDefault("analysis.workers", d.Analysis.Workers)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.max_functions", d.Output.MaxFunctions)
	v.SetDefault("output.color", d.Output.Color)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	th := c.Thresholds
	for _, f := range []struct {
		name string
		n    int
	}{
		{"long_function", th.LongFunction},
		{"many_params", th.ManyParams},
		{"high_complexity", th.HighComplexity},
	} {
		if f.n < 0 {
			return fmt.Errorf("%w: %s must not be negative (got %d)", ErrInvalidThreshold, f.name, f.n)
		}
	}

	for _, name := range c.Analysis.Languages {
		if _, ok := lang.Lookup(name); !ok {
			return fmt.Errorf("%w: %q", lang.ErrUnsupportedLanguage, name)
		}
	}
	if _, err := c.MaxFileSizeBytes(); err != nil {
		return err
	}
	if c.Analysis.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Analysis.Workers)
	}

	if c.Output.Format != "" && !report.IsFormat(c.Output.Format) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, c.Output.Format, strings.Join(report.Formats, ", "))
	}
	if c.Output.MaxFunctions < 0 {
		return fmt.Errorf("%w: max_functions must not be negative", ErrInvalidThreshold)
	}

	if c.Logging.Level != "" {
		if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
			return err
		}
	}
	return logging.ValidateFormat(c.Logging.Format)
}

// MaxFileSizeBytes parses Analysis.MaxFileSize ("1 MB", "512KiB", "2000000").
// An empty value means the default.
func (c *Config) MaxFileSizeBytes() (uint64, error) {
	s := c.Analysis.MaxFileSize
	if s == "" {
		s = DefaultMaxFileSize
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return n, nil
}
