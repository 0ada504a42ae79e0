package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"calc/internal/domain"
)

// maxPrecision is the most fractional digits a float64 can meaningfully show.
const maxPrecision = 17

var (
	// ErrInvalidConfig is returned by Validate for out-of-range settings.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds runtime wiring options.
type Config struct {
	MaxLength int    `yaml:"max_length"` // display width, e.g. 20
	Precision int    `yaml:"precision"`  // fractional digits before trimming, e.g. 10
	LogLevel  string `yaml:"log_level"`  // debug|info|warn|error
}

// DefaultConfig returns the standard calculator settings.
func DefaultConfig() Config {
	return Config{
		MaxLength: domain.MaxDisplayLength,
		Precision: domain.DefaultPrecision,
		LogLevel:  "warn",
	}
}

// LoadConfig returns DefaultConfig overlaid with the YAML file at path. An
// empty path yields the defaults; a named file that does not exist is an
// error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := readFile(path)
	if err != nil {
		return cfg, err
	}
	if b == nil {
		return cfg, fmt.Errorf("config %s: %w", path, os.ErrNotExist)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.MaxLength < 1 {
		return fmt.Errorf("%w: max_length must be at least 1, got %d", ErrInvalidConfig, c.MaxLength)
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("%w: precision must be within [0, %d], got %d", ErrInvalidConfig, maxPrecision, c.Precision)
	}
	return nil
}

// readFile reads the file at path; a missing file returns (nil, nil).
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
