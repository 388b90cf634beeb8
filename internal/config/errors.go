package config

import "pomobar/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error: %v",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed: %v",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed: %v",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be greater than zero, got %v",
	}

	errEmptyMsg = &apperr.Error{
		Message: "%s message cannot be empty",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidLongBreakInterval = &apperr.Error{
		Message: "long break interval must be between %d and %d work sessions",
	}
)
