// Package config loads the apetag command line configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/apetag"
)

// FileName is the name of the configuration file in the home directory.
const FileName = ".apetag.yaml"

// Config represents the apetag command line configuration.
type Config struct {
	// CheckShadow overrides the shadow tag default. When unset, it is
	// inferred from each file name.
	CheckShadow  *bool   `yaml:"check_shadow,omitempty"`
	BackupSuffix string  `yaml:"backup_suffix,omitempty"`
	Verify       bool    `yaml:"verify"`
	Logging      Logging `yaml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: Logging{
			Level: "warn",
		},
	}
}

// DefaultPath returns $HOME/.apetag.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// LoadConfig loads configuration from the specified path. Fields missing
// from the file keep their defaults. A missing file is an error wrapping
// fs.ErrNotExist.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file does not exist: %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// LoadOrDefault loads the file at configPath, falling back to the defaults
// when it does not exist.
func LoadOrDefault(configPath string) (*Config, error) {
	config, err := LoadConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return config, err
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the values that cannot be checked by decoding alone.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// TagOptions returns the options for opening tags.
func (c *Config) TagOptions(logger *zap.Logger) []apetag.Option {
	opts := []apetag.Option{apetag.WithLogger(logger)}
	if c.CheckShadow != nil {
		opts = append(opts, apetag.WithShadowCheck(*c.CheckShadow))
	}
	return opts
}

// CommitOptions returns the options for writing tags.
func (c *Config) CommitOptions() []apetag.CommitOption {
	var opts []apetag.CommitOption
	if c.BackupSuffix != "" {
		opts = append(opts, apetag.WithBackup(c.BackupSuffix))
	}
	if c.Verify {
		opts = append(opts, apetag.WithVerify())
	}
	return opts
}

// NewLogger builds a logger writing to stderr at the configured level.
// The level "off" disables logging.
func (l Logging) NewLogger() (*zap.Logger, error) {
	level, err := parseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	if *level == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(*level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// parseLevel returns nil for "off".
func parseLevel(text string) (*zapcore.Level, error) {
	if text == "off" {
		return nil, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(text)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", text, err)
	}
	return &level, nil
}
