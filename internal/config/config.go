// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"time"

	"pomobar/internal/stage"
	"pomobar/internal/theme"
)

type (
	// Config holds all configuration settings
	Config struct {
		Work          StageConfig        `mapstructure:"work"`
		ShortBreak    StageConfig        `mapstructure:"short_break"`
		LongBreak     StageConfig        `mapstructure:"long_break"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// StageConfig holds the settings for one stage type. An empty
	// Color defers to the resolved theme palette.
	StageConfig struct {
		Duration time.Duration `mapstructure:"duration"`
		Message  string        `mapstructure:"message"`
		Icon     string        `mapstructure:"icon"`
		Color    string        `mapstructure:"color"`
	}

	// SettingsConfig holds cycle-level settings
	SettingsConfig struct {
		LongBreakInterval int    `mapstructure:"long_break_interval"`
		Cmd               string `mapstructure:"cmd"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		Background string `mapstructure:"background"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Fmt(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Sequence expands the configured stage types into one full cycle:
// (work, short break) repeated interval-1 times, then work and the
// long break.
func (c *Config) Sequence(pal theme.Palette) (stage.Sequence, error) {
	work := c.Work.definition("Work", pal.Success)
	short := c.ShortBreak.definition("Short break", pal.Neutral)
	long := c.LongBreak.definition("Long break", pal.Neutral)

	var defs []stage.Definition

	for i := 0; i < c.Settings.LongBreakInterval-1; i++ {
		defs = append(defs, work, short)
	}

	defs = append(defs, work, long)

	return stage.NewSequence(defs)
}

func (sc StageConfig) definition(
	name, fallbackColor string,
) stage.Definition {
	color := sc.Color
	if color == "" {
		color = fallbackColor
	}

	return stage.Definition{
		Name:     name,
		Message:  sc.Message,
		Icon:     sc.Icon,
		Color:    color,
		Duration: sc.Duration,
	}
}
