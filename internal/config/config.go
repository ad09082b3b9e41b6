// Package config loads the daemon configuration. The file is YAML; every
// field has a default so an empty file, or no file at all, yields a working
// single-host setup.
//
// Config file locations (priority order):
//  1. $NETEMD_CONFIG
//  2. ./netemd.yaml
//  3. /etc/netemd/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the daemon's top-level configuration.
type Config struct {
	GRPC    ListenConfig  `yaml:"grpc"`
	TLV     ListenConfig  `yaml:"tlv"`
	Metrics ListenConfig  `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
	Limits  LimitsConfig  `yaml:"limits"`
	Tracing TracingConfig `yaml:"tracing"`
}

// ListenConfig names one listening socket. Disabled sockets are skipped at
// startup; the gRPC listener cannot be disabled.
type ListenConfig struct {
	Listen   string `yaml:"listen"`
	Disabled bool   `yaml:"disabled"`
}

type LogConfig struct {
	Level     string `yaml:"level"`  // debug, info, warn, error
	Format    string `yaml:"format"` // json or text
	AddSource bool   `yaml:"add_source"`
}

// LimitsConfig bounds resource consumption per daemon instance.
type LimitsConfig struct {
	// MaxNamespaces caps namespaces across all sessions; 0 means unlimited.
	MaxNamespaces int `yaml:"max_namespaces"`
	// EventQueue is the per-subscriber event buffer; a subscriber that
	// falls this far behind is disconnected.
	EventQueue int `yaml:"event_queue"`
}

type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Exporter    string  `yaml:"exporter"` // stdout | otlp
	Endpoint    string  `yaml:"endpoint"` // used when exporter is otlp
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load finds and parses the config file, or returns defaults if none is
// found. The second return value is the path actually used, empty for
// defaults.
func Load() (*Config, string, error) {
	path := findPath()
	if path == "" {
		return Default(), "", nil
	}
	cfg, err := LoadFromPath(path)
	return cfg, path, err
}

// LoadFromPath parses the config file at path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findPath() string {
	if p := os.Getenv("NETEMD_CONFIG"); p != "" {
		return p
	}
	for _, p := range []string{"./netemd.yaml", "/etc/netemd/config.yaml"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c *Config) applyDefaults() {
	if c.GRPC.Listen == "" {
		c.GRPC.Listen = ":50051"
	}
	if c.TLV.Listen == "" {
		c.TLV.Listen = ":4038"
	}
	if c.Metrics.Listen == "" {
		c.Metrics.Listen = ":9090"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Limits.EventQueue == 0 {
		c.Limits.EventQueue = 64
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "netemd"
	}
	if c.Tracing.Exporter == "" {
		c.Tracing.Exporter = "stdout"
	}
	if c.Tracing.SampleRatio == 0 {
		c.Tracing.SampleRatio = 1.0
	}
}

// Validate rejects configurations the daemon cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.GRPC.Disabled {
		errs = append(errs, errors.New("grpc listener cannot be disabled"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if c.Limits.MaxNamespaces < 0 {
		errs = append(errs, fmt.Errorf("max_namespaces %d is negative", c.Limits.MaxNamespaces))
	}
	if c.Limits.EventQueue < 1 {
		errs = append(errs, fmt.Errorf("event_queue %d is below 1", c.Limits.EventQueue))
	}
	switch c.Tracing.Exporter {
	case "stdout", "otlp", "otlpgrpc":
	default:
		errs = append(errs, fmt.Errorf("unknown tracing exporter %q", c.Tracing.Exporter))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("sample_ratio %v outside [0, 1]", c.Tracing.SampleRatio))
	}
	return errors.Join(errs...)
}
