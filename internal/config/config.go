// Package config loads the infotrace CLI configuration: built-in defaults,
// overlaid by an optional YAML file, overlaid by INFOTRACE_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/infotrace/bench"
	"github.com/katalvlaran/infotrace/hamilton"
	"github.com/katalvlaran/infotrace/lz"
)

// Environment variable names.
const (
	EnvLZWindowSize      = "INFOTRACE_LZ_WINDOW_SIZE"
	EnvLZLookaheadSize   = "INFOTRACE_LZ_LOOKAHEAD_SIZE"
	EnvHamiltonMaxCycles = "INFOTRACE_HAMILTON_MAX_CYCLES"
	EnvBenchIterations   = "INFOTRACE_BENCH_ITERATIONS"
	EnvBenchDataSize     = "INFOTRACE_BENCH_DATA_SIZE"
	EnvBenchSeed         = "INFOTRACE_BENCH_SEED"
	EnvLogLevel          = "INFOTRACE_LOG_LEVEL"
	EnvPlaybackDelay     = "INFOTRACE_PLAYBACK_DELAY"
)

const (
	defaultBenchDataSize = 1000
	defaultLogLevel      = "info"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root configuration.
type Config struct {
	LZ       LZConfig       `yaml:"lz"`
	Hamilton HamiltonConfig `yaml:"hamilton"`
	Bench    BenchConfig    `yaml:"bench"`
	Logging  LoggingConfig  `yaml:"logging"`
	Playback PlaybackConfig `yaml:"playback"`
}

// LZConfig configures the dictionary matcher.
type LZConfig struct {
	WindowSize    int `yaml:"window_size"`
	LookaheadSize int `yaml:"lookahead_size"`
}

// HamiltonConfig configures cycle search.
type HamiltonConfig struct {
	MaxCycles       int  `yaml:"max_cycles"`
	UniqueRotations bool `yaml:"unique_rotations"`
}

// BenchConfig configures the benchmark harness.
type BenchConfig struct {
	Iterations int   `yaml:"iterations"`
	DataSize   int   `yaml:"data_size"`
	Seed       int64 `yaml:"seed"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// PlaybackConfig configures step-by-step output.
type PlaybackConfig struct {
	// Delay is the pause between printed steps; 0 prints at once.
	Delay time.Duration `yaml:"delay"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		LZ: LZConfig{
			WindowSize:    lz.DefaultWindowSize,
			LookaheadSize: lz.DefaultLookaheadSize,
		},
		Hamilton: HamiltonConfig{
			MaxCycles: hamilton.DefaultMaxCycles,
		},
		Bench: BenchConfig{
			Iterations: bench.DefaultIterations,
			DataSize:   defaultBenchDataSize,
		},
		Logging: LoggingConfig{Level: defaultLogLevel},
	}
}

// Load reads path over the defaults. A missing file is not an error.
// An empty path skips the file. Environment overrides apply in every case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.LZ.WindowSize < 1:
		return fmt.Errorf("%w: lz.window_size=%d", ErrInvalid, c.LZ.WindowSize)
	case c.LZ.LookaheadSize < 1:
		return fmt.Errorf("%w: lz.lookahead_size=%d", ErrInvalid, c.LZ.LookaheadSize)
	case c.Hamilton.MaxCycles < 1:
		return fmt.Errorf("%w: hamilton.max_cycles=%d", ErrInvalid, c.Hamilton.MaxCycles)
	case c.Bench.Iterations < 1:
		return fmt.Errorf("%w: bench.iterations=%d", ErrInvalid, c.Bench.Iterations)
	case c.Bench.DataSize < 2:
		return fmt.Errorf("%w: bench.data_size=%d", ErrInvalid, c.Bench.DataSize)
	case c.Playback.Delay < 0:
		return fmt.Errorf("%w: playback.delay=%s", ErrInvalid, c.Playback.Delay)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level=%q", ErrInvalid, c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies INFOTRACE_* variables that are set and non-empty.
func (c *Config) applyEnvOverrides() error {
	ints := []struct {
		name string
		dst  *int
	}{
		{EnvLZWindowSize, &c.LZ.WindowSize},
		{EnvLZLookaheadSize, &c.LZ.LookaheadSize},
		{EnvHamiltonMaxCycles, &c.Hamilton.MaxCycles},
		{EnvBenchIterations, &c.Bench.Iterations},
		{EnvBenchDataSize, &c.Bench.DataSize},
	}
	for _, v := range ints {
		if s := os.Getenv(v.name); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("%w: %s=%q", ErrInvalid, v.name, s)
			}
			*v.dst = n
		}
	}

	if s := os.Getenv(EnvBenchSeed); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvBenchSeed, s)
		}
		c.Bench.Seed = n
	}
	if s := os.Getenv(EnvLogLevel); s != "" {
		c.Logging.Level = s
	}
	if s := os.Getenv(EnvPlaybackDelay); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvPlaybackDelay, s)
		}
		c.Playback.Delay = d
	}

	return nil
}
