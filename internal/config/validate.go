package config

import (
	"regexp"
	"strings"
)

var (
	// Valid long break intervals.
	minLongBreakInterval = 1
	maxLongBreakInterval = 10

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its
// fields.
func (c *Config) Validate() error {
	stages := []struct {
		name string
		sc   StageConfig
	}{
		{"work", c.Work},
		{"short break", c.ShortBreak},
		{"long break", c.LongBreak},
	}

	for _, s := range stages {
		if err := validateStageConfig(s.sc, s.name); err != nil {
			return err
		}
	}

	return c.validateSettings()
}

func validateStageConfig(sc StageConfig, stageType string) error {
	if sc.Duration <= 0 {
		return errInvalidDuration.Fmt(stageType, sc.Duration)
	}

	if strings.TrimSpace(sc.Message) == "" {
		return errEmptyMsg.Fmt(stageType)
	}

	if sc.Color != "" && !hexColorRegex.MatchString(sc.Color) {
		return errInvalidColor.Fmt(stageType, sc.Color)
	}

	return nil
}

func (c *Config) validateSettings() error {
	if c.Settings.LongBreakInterval < minLongBreakInterval ||
		c.Settings.LongBreakInterval > maxLongBreakInterval {
		return errInvalidLongBreakInterval.Fmt(
			minLongBreakInterval,
			maxLongBreakInterval,
		)
	}

	if c.Display.Background != "" &&
		!hexColorRegex.MatchString(c.Display.Background) {
		return errInvalidColor.Fmt("background", c.Display.Background)
	}

	return nil
}
