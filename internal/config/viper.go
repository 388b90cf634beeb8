package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyWorkDuration       = "work.duration"
	keyWorkMessage        = "work.message"
	keyWorkIcon           = "work.icon"
	keyWorkColor          = "work.color"
	keyShortBreakDuration = "short_break.duration"
	keyShortBreakMessage  = "short_break.message"
	keyShortBreakIcon     = "short_break.icon"
	keyShortBreakColor    = "short_break.color"
	keyLongBreakDuration  = "long_break.duration"
	keyLongBreakMessage   = "long_break.message"
	keyLongBreakIcon      = "long_break.icon"
	keyLongBreakColor     = "long_break.color"
	keyLongBreakInterval  = "settings.long_break_interval"
	keyCmd                = "settings.cmd"
	keyNotifyEnabled      = "notifications.enabled"
	keyBackground         = "display.background"
)

// WithViperConfig returns an Option that loads configuration from
// Viper, writing the default config file on first run.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Fmt(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Fmt(err)
		}

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyWorkDuration, "25m")
	v.SetDefault(keyWorkMessage, "Focus on your task")
	v.SetDefault(keyWorkIcon, "\U0001F345")
	v.SetDefault(keyWorkColor, "")
	v.SetDefault(keyShortBreakDuration, "5m")
	v.SetDefault(keyShortBreakMessage, "Take a breather")
	v.SetDefault(keyShortBreakIcon, "☕")
	v.SetDefault(keyShortBreakColor, "")
	v.SetDefault(keyLongBreakDuration, "15m")
	v.SetDefault(keyLongBreakMessage, "Take a long break")
	v.SetDefault(keyLongBreakIcon, "\U0001F334")
	v.SetDefault(keyLongBreakColor, "")
	v.SetDefault(keyLongBreakInterval, 4)
	v.SetDefault(keyCmd, "")
	v.SetDefault(keyNotifyEnabled, true)
	v.SetDefault(keyBackground, "")
}
