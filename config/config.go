// Package config holds the runtime configuration. Without any
// configuration file or environment variables the defaults reproduce
// the plain clear window: a green 1000x600 window using webgpu.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Backend string

const (
	BackendWebGPU Backend = "webgpu"
	BackendOpenGL Backend = "opengl"

	// BackendAuto uses webgpu if an adapter is available, OpenGL otherwise.
	BackendAuto Backend = "auto"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Config struct {
	Window Window `yaml:"window"`

	Backend Backend `yaml:"backend"`

	// empty for the default clear color, otherwise "#rrggbb", "#rrggbbaa"
	// or a svg color name
	ClearColor string `yaml:"clear_color"`

	// one of "default", "low" or "high"
	PowerPreference      string `yaml:"power_preference"`
	ForceFallbackAdapter bool   `yaml:"force_fallback_adapter"`

	ReconfigureOnResize bool   `yaml:"reconfigure_on_resize"`
	MaxAcquireRetries   int    `yaml:"max_acquire_retries"`
	MaxTextureDimension uint32 `yaml:"max_texture_dimension"`

	LogLevel     string `yaml:"log_level"`
	WGPULogLevel string `yaml:"wgpu_log_level"`

	// one of "", "cpu" or "mem"
	Profile string `yaml:"profile"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  1000,
			Height: 600,
			Title:  "clearwindow",
		},
		Backend:             BackendWebGPU,
		PowerPreference:     "default",
		MaxAcquireRetries:   3,
		MaxTextureDimension: 8192,
		LogLevel:            "info",
	}
}

// Load reads a yaml file on top of the defaults. Keys missing in the
// file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	fp, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}

	defer fp.Close()

	dec := yaml.NewDecoder(fp)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config %q: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides values from environment variables using lookup,
// which is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if value, ok := lookup("PULSE_LOG_LEVEL"); ok {
		c.LogLevel = value
	}

	if value, ok := lookup("WGPU_LOG_LEVEL"); ok {
		c.WGPULogLevel = value
	}

	if value, ok := lookup("PULSE_BACKEND"); ok {
		c.Backend = Backend(strings.ToLower(value))
	}

	if value, ok := lookup("PULSE_PROFILE"); ok {
		c.Profile = strings.ToLower(value)
	}

	if value, ok := lookup("WGPU_FORCE_FALLBACK_ADAPTER"); ok {
		force, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parse WGPU_FORCE_FALLBACK_ADAPTER: %w", err)
		}

		c.ForceFallbackAdapter = force
	}

	return nil
}

// FromEnvironment loads the file named by PULSE_CONFIG, if set, and applies
// the environment overrides on top.
func FromEnvironment() (Config, error) {
	cfg := Default()

	if path, ok := os.LookupEnv("PULSE_CONFIG"); ok && path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height))
	}

	switch c.Backend {
	case BackendWebGPU, BackendOpenGL, BackendAuto:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}

	switch c.PowerPreference {
	case "", "default", "low", "high":
	default:
		errs = append(errs, fmt.Errorf("unknown power preference %q", c.PowerPreference))
	}

	switch c.Profile {
	case "", "cpu", "mem":
	default:
		errs = append(errs, fmt.Errorf("unknown profile mode %q", c.Profile))
	}

	if c.MaxAcquireRetries < 1 {
		errs = append(errs, errors.New("max_acquire_retries must be at least 1"))
	}

	if c.MaxTextureDimension == 0 {
		errs = append(errs, errors.New("max_texture_dimension must not be zero"))
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Level returns the slog level of LogLevel, falling back to info.
func (c Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return level
}

func parseLevel(text string) (slog.Level, error) {
	if text == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(text)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", text, err)
	}

	return level, nil
}
