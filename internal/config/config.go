// Package config holds the shell's window and runtime settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"sageflow/internal/infrastructure/logging"
	"sageflow/internal/window"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// parseBoolEnv reads an environment variable and parses it as a boolean.
// Returns the parsed value and a boolean indicating if the variable was present.
// Supports true/false, 1/0, yes/no, on/off, t/f, y/n (case-insensitive).
func parseBoolEnv(key string) (bool, bool) {
	value := os.Getenv(key)
	if value == "" {
		return false, false
	}

	if parsed, err := strconv.ParseBool(value); err == nil {
		return parsed, true
	}

	switch strings.ToLower(value) {
	case "yes", "y", "on":
		return true, true
	case "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// Config holds the host shell configuration
type Config struct {
	// AppName is the short name used in dialog titles
	AppName     string `json:"appName" yaml:"appName"`
	ProductName string `json:"productName" yaml:"productName"`

	// MainWindow is the logical name the main window is registered under
	MainWindow string `json:"mainWindow" yaml:"mainWindow"`
	Title      string `json:"title" yaml:"title"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	MinWidth   int    `json:"minWidth" yaml:"minWidth"`
	MinHeight  int    `json:"minHeight" yaml:"minHeight"`

	// StartHidden keeps the window hidden until the startup sequence shows it
	StartHidden bool `json:"startHidden" yaml:"startHidden"`
	AlwaysOnTop bool `json:"alwaysOnTop" yaml:"alwaysOnTop"`

	Environment string `json:"environment" yaml:"environment"` // development, production, test
	LogLevel    string `json:"logLevel" yaml:"logLevel"`
}

// DefaultConfig returns the production configuration
func DefaultConfig() *Config {
	return &Config{
		AppName:     "SageFlow",
		ProductName: "SageFlow Accounting",

		MainWindow:  window.MainWindowName,
		Title:       "SageFlow Accounting",
		Width:       1280,
		Height:      800,
		MinWidth:    1024,
		MinHeight:   640,
		StartHidden: true,
		AlwaysOnTop: false,

		Environment: "production",
		LogLevel:    "info",
	}
}

// DevelopmentConfig returns a configuration for local development
func DevelopmentConfig() *Config {
	config := DefaultConfig()
	config.Title = "SageFlow Accounting (dev)"
	config.Environment = "development"
	config.LogLevel = "debug"
	return config
}

// TestConfig returns a configuration for tests
func TestConfig() *Config {
	config := DefaultConfig()
	config.Environment = "test"
	config.LogLevel = "error"
	return config
}

// ConfigForEnvironment returns the configuration for the given environment
func ConfigForEnvironment(env string) *Config {
	switch env {
	case "development", "dev":
		return DevelopmentConfig()
	case "test":
		return TestConfig()
	default:
		return DefaultConfig()
	}
}

// EnvironmentFromEnv returns SAGEFLOW_ENV, defaulting to production
func EnvironmentFromEnv() string {
	if env := os.Getenv("SAGEFLOW_ENV"); env != "" {
		return env
	}
	return "production"
}

// Load builds the configuration for SAGEFLOW_ENV with environment overrides applied
func Load() (*Config, error) {
	config := ConfigForEnvironment(EnvironmentFromEnv())
	if err := config.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromEnvironment applies SAGEFLOW_* overrides
func (c *Config) LoadFromEnvironment() error {
	if logLevel := os.Getenv("SAGEFLOW_LOG_LEVEL"); logLevel != "" {
		if _, err := logging.ParseLevel(logLevel); err != nil {
			return fmt.Errorf("SAGEFLOW_LOG_LEVEL: %w", err)
		}
		c.LogLevel = logLevel
	}

	if alwaysOnTop, present := parseBoolEnv("SAGEFLOW_ALWAYS_ON_TOP"); present {
		c.AlwaysOnTop = alwaysOnTop
	}

	if width := os.Getenv("SAGEFLOW_WINDOW_WIDTH"); width != "" {
		if val, err := strconv.Atoi(width); err == nil && val > 0 {
			c.Width = val
		}
	}

	if height := os.Getenv("SAGEFLOW_WINDOW_HEIGHT"); height != "" {
		if val, err := strconv.Atoi(height); err == nil && val > 0 {
			c.Height = val
		}
	}

	return nil
}

// Validate validates the configuration parameters
func (c *Config) Validate() error {
	if c.AppName == "" {
		return fmt.Errorf("appName cannot be empty")
	}

	if c.MainWindow == "" {
		return fmt.Errorf("mainWindow cannot be empty")
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}

	if c.MinWidth < 0 || c.MinHeight < 0 {
		return fmt.Errorf("minimum window size cannot be negative, got %dx%d", c.MinWidth, c.MinHeight)
	}

	if c.MinWidth > c.Width || c.MinHeight > c.Height {
		return fmt.Errorf("minimum window size %dx%d exceeds window size %dx%d", c.MinWidth, c.MinHeight, c.Width, c.Height)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("logLevel: %w", err)
	}

	return nil
}

// Logger returns a structured logger at the configured level
func (c *Config) Logger() logging.Logger {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		level = logging.LevelInfo
	}
	return logging.NewLogger(level)
}

// RuntimeLogLevel maps the configured level to the Wails runtime log level
func (c *Config) RuntimeLogLevel() wailslogger.LogLevel {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return wailslogger.INFO
	}
	switch level {
	case logging.LevelDebug:
		return wailslogger.DEBUG
	case logging.LevelWarn:
		return wailslogger.WARNING
	case logging.LevelError:
		return wailslogger.ERROR
	default:
		return wailslogger.INFO
	}
}

// Clone returns a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// IsDevelopment reports whether this is a development configuration
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsTest reports whether this is a test configuration
func (c *Config) IsTest() bool {
	return c.Environment == "test"
}

// IsProduction reports whether this is a production configuration
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
