// Package config loads the server settings from an optional YAML file and
// the IMAGE_GEOMETRY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/image-geometry-mcp/internal/backend"
	"github.com/ironsheep/image-geometry-mcp/internal/imaging"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfig   = "IMAGE_GEOMETRY_CONFIG"
	EnvLogLevel = "IMAGE_GEOMETRY_LOG_LEVEL"
	EnvEngine   = "IMAGE_GEOMETRY_ENGINE"
	EnvFilter   = "IMAGE_GEOMETRY_FILTER"
	EnvTessdata = "IMAGE_GEOMETRY_TESSDATA"
)

// Config holds the server settings.
type Config struct {
	// LogLevel is one of debug, info, warn or error. Only debug changes
	// what is logged.
	LogLevel string `yaml:"log_level"`

	// Engine and Filter are the defaults for tools that take none.
	Engine string `yaml:"engine"`
	Filter string `yaml:"filter"`

	Background   string `yaml:"background"`
	OverlayColor string `yaml:"overlay_color"`

	// MaxPixels caps the area of images produced by resize and extent.
	MaxPixels int `yaml:"max_pixels"`

	OCR  OCRConfig  `yaml:"ocr"`
	Vips VipsConfig `yaml:"vips"`
}

// OCRConfig configures Tesseract.
type OCRConfig struct {
	Language       string `yaml:"language"`
	TessdataPrefix string `yaml:"tessdata_prefix"`
}

// VipsConfig configures libvips. Zero values leave the libvips defaults.
type VipsConfig struct {
	Enabled       bool `yaml:"enabled"`
	Concurrency   int  `yaml:"concurrency"`
	MaxCacheMemMB int  `yaml:"max_cache_mem_mb"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:     "info",
		Engine:       backend.DefaultEngine,
		Filter:       string(backend.DefaultFilter),
		Background:   "#FFFFFF",
		OverlayColor: "#FF0000",
		MaxPixels:    imaging.DefaultMaxPixels,
		OCR: OCRConfig{
			Language: "eng",
		},
	}
}

// Load reads path over the defaults, applies the environment and validates
// the result. An empty path skips the file; a path that does not exist is
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment. getenv is os.Getenv
// outside of tests.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvEngine); v != "" {
		c.Engine = v
	}
	if v := getenv(EnvFilter); v != "" {
		c.Filter = v
	}
	if v := getenv(EnvTessdata); v != "" {
		c.OCR.TessdataPrefix = v
	}
}

// Validate checks enumerated fields and colors.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.Engine = strings.ToLower(c.Engine)
	c.Filter = strings.ToLower(c.Filter)

	var errs []error
	if !contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level %q must be one of %v", c.LogLevel, logLevels))
	}
	if !contains(backend.KnownEngines(), c.Engine) {
		errs = append(errs, fmt.Errorf("engine %q must be one of %v", c.Engine, backend.KnownEngines()))
	}
	if f, err := backend.ParseFilter(c.Filter); err != nil {
		errs = append(errs, fmt.Errorf("filter %q must be one of %v", c.Filter, backend.Filters()))
	} else {
		c.Filter = string(f)
	}
	if _, err := imaging.ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background %q: %w", c.Background, err))
	}
	if _, err := imaging.ParseColor(c.OverlayColor); err != nil {
		errs = append(errs, fmt.Errorf("overlay_color %q: %w", c.OverlayColor, err))
	}
	if c.MaxPixels <= 0 {
		errs = append(errs, fmt.Errorf("max_pixels %d must be positive", c.MaxPixels))
	}
	if c.Vips.Concurrency < 0 || c.Vips.MaxCacheMemMB < 0 {
		errs = append(errs, errors.New("vips settings must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Debug reports whether debug logging is on.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
