package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/pterm/pterm"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrEmptyName       = errors.New("player names can't be empty")
)

// Config is read from the environment
type Config struct {
	PlayerName   string `env:"MYB_PLAYER_NAME,default=User"`
	OpponentName string `env:"MYB_OPPONENT_NAME,default=Computer"`
	// Seed for the session's random source. Zero seeds from the clock.
	Seed     int64  `env:"MYB_SEED,default=0"`
	LogLevel string `env:"MYB_LOG_LEVEL,default=warn"`
}

// Load decodes a Config from the environment, applying defaults for
// anything unset.
func Load() (Config, error) {
	var cfg Config
	err := envdecode.Decode(&cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	cfg.PlayerName = strings.TrimSpace(cfg.PlayerName)
	cfg.OpponentName = strings.TrimSpace(cfg.OpponentName)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.PlayerName == "" || c.OpponentName == "" {
		return ErrEmptyName
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the pterm log level named by LogLevel
func (c Config) Level() pterm.LogLevel {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return pterm.LogLevelWarn
	}
	return level
}

func ParseLogLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled", "none":
		return pterm.LogLevelDisabled, nil
	}
	return pterm.LogLevelDisabled, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
}
