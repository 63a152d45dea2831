package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/aocutil/markup"
)

// defaultMaxSetSize keeps enumerations at or below 10! (3,628,800) results.
const defaultMaxSetSize = 10

var (
	// ErrSetTooLarge is returned when a requested enumeration exceeds max_set_size.
	ErrSetTooLarge = errors.New("cli: set too large")

	// ErrBadConfig is returned for unreadable or invalid configuration files.
	ErrBadConfig = errors.New("cli: invalid config")
)

// Config holds the settings that a TOML file or flags may supply.
//
//	max_set_size = 9
//	color        = "never"
//	verbose      = true
type Config struct {
	MaxSetSize int    `toml:"max_set_size"`
	Color      string `toml:"color"`
	Verbose    bool   `toml:"verbose"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		MaxSetSize: defaultMaxSetSize,
		Color:      markup.ColorAuto.String(),
	}
}

// LoadConfig reads path on top of DefaultConfig. Unknown keys are rejected
// so that typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrBadConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrBadConfig, path, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MaxSetSize < 0 {
		return fmt.Errorf("%w: max_set_size must be >= 0, got %d", ErrBadConfig, c.MaxSetSize)
	}
	if _, err := markup.ParseColorMode(c.Color); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return nil
}

// checkSetSize enforces the factorial guard for an n-element enumeration.
func (c Config) checkSetSize(n int) error {
	if n > c.MaxSetSize {
		return fmt.Errorf("%w: %d elements exceeds max_set_size %d", ErrSetTooLarge, n, c.MaxSetSize)
	}

	return nil
}
