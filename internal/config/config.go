// Package config loads the calc-mcp configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"gopkg.in/yaml.v3"
)

// Defaults applied to fields the configuration file leaves empty.
// A negative max_sessions lifts the session limit.
const (
	DefaultLogLevel    = "info"
	DefaultTransport   = types.TransportStdio
	DefaultAddress     = ":8080"
	DefaultMaxSessions = 64
)

// Default returns the configuration used when no file is given
func Default() types.Config {
	cfg := types.Config{}
	applyDefaults(&cfg)
	return cfg
}

// Load reads a YAML configuration file. An empty path yields the defaults.
func Load(path string) (types.Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return types.Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration, rejecting unknown fields
func Parse(data []byte) (types.Config, error) {
	var cfg types.Config

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return types.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// Validate checks field values
func Validate(cfg types.Config) error {
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	switch cfg.Transport {
	case types.TransportStdio, types.TransportSSE:
	default:
		return fmt.Errorf("invalid transport %q: expected %s or %s", cfg.Transport, types.TransportStdio, types.TransportSSE)
	}
	if cfg.Transport == types.TransportSSE && cfg.Address == "" {
		return errors.New("address is required for the sse transport")
	}
	return nil
}

// ParseLogLevel converts a level name into a slog level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: expected debug, info, warn or error", level)
	}
}

func applyDefaults(cfg *types.Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Transport == "" {
		cfg.Transport = DefaultTransport
	}
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if cfg.MaxSessions == 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.ResetOnError == nil {
		resetOnError := true
		cfg.ResetOnError = &resetOnError
	}
}
