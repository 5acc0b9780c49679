// Package config loads codeseq settings from defaults, a config file, the
// environment and command-line flags through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by codeseq.
const EnvPrefix = "CODESEQ"

// Config represents the complete codeseq configuration
type Config struct {
	Limit  LimitConfig  `mapstructure:"limit"`
	Run    RunConfig    `mapstructure:"run"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// LimitConfig bounds the work done for a single query
type LimitConfig struct {
	// MaxLength is the longest digit string that is enumerated (default: 30).
	// Longer strings report a count of zero.
	MaxLength int `mapstructure:"max_length"`
	// MaxOutputBytes bounds the solution text of one query, 0 = unbounded
	MaxOutputBytes int `mapstructure:"max_output_bytes"`
}

// RunConfig controls how a stream of records is processed
type RunConfig struct {
	// Parallel is the number of queries solved at once (default: 1)
	Parallel int `mapstructure:"parallel"`
	// KeepGoing reports malformed records and continues instead of stopping
	KeepGoing bool `mapstructure:"keep_going"`
}

// OutputConfig controls what is printed besides the answers
type OutputConfig struct {
	Banner  bool   `mapstructure:"banner"`
	Summary bool   `mapstructure:"summary"`
	Report  string `mapstructure:"report"`
	TUI     bool   `mapstructure:"tui"`
}

// LogConfig controls diagnostic logging on stderr
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Limit: LimitConfig{
			MaxLength:      30,
			MaxOutputBytes: 512 << 20,
		},
		Run: RunConfig{
			Parallel: 1,
		},
		Output: OutputConfig{
			Banner: true,
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("limit.max_length", defaults.Limit.MaxLength)
	v.SetDefault("limit.max_output_bytes", defaults.Limit.MaxOutputBytes)

	v.SetDefault("run.parallel", defaults.Run.Parallel)
	v.SetDefault("run.keep_going", defaults.Run.KeepGoing)

	v.SetDefault("output.banner", defaults.Output.Banner)
	v.SetDefault("output.summary", defaults.Output.Summary)
	v.SetDefault("output.report", defaults.Output.Report)
	v.SetDefault("output.tui", defaults.Output.TUI)

	v.SetDefault("log.verbose", defaults.Log.Verbose)
}

// New returns a viper instance with defaults, environment binding and the
// config file search path set up. An empty file means: look for codeseq.yaml
// (or another extension viper reads) in the working directory and in ConfigDir.
// No config type is set while searching, otherwise viper would also accept an
// extensionless "codeseq", which is the name of the binary itself.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("codeseq")
		v.AddConfigPath(".")
		v.AddConfigPath(ConfigDir())
	}

	return v
}

// Load reads the config file (if any) and decodes v into a validated Config.
// A missing config file is not an error unless it was named explicitly.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || v.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Limit.MaxLength <= 0 {
		errs = append(errs, fmt.Errorf("limit.max_length must be positive, got %d", c.Limit.MaxLength))
	}

	if c.Limit.MaxOutputBytes < 0 {
		errs = append(errs, fmt.Errorf("limit.max_output_bytes must not be negative, got %d", c.Limit.MaxOutputBytes))
	}

	if c.Run.Parallel <= 0 {
		errs = append(errs, fmt.Errorf("run.parallel must be positive, got %d", c.Run.Parallel))
	}

	return errors.Join(errs...)
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "codeseq")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".codeseq"
	}

	return filepath.Join(home, ".config", "codeseq")
}
