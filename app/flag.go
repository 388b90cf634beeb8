package app

import "github.com/urfave/cli/v2"

var (
	stateFileFlag = &cli.StringFlag{
		Name:    "state-file",
		Aliases: []string{"f"},
		Usage:   "Override the path to the cycle state file",
	}

	workFlag = &cli.UintFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes (default: 25)",
	}

	shortBreakFlag = &cli.UintFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (default: 5)",
	}

	longBreakFlag = &cli.UintFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (default: 15)",
	}

	longBreakIntervalFlag = &cli.UintFlag{
		Name:    "long-break-interval",
		Aliases: []string{"int"},
		Usage:   "The number of work stages before a long break (default: 4)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a stage ends",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug logs to the log file",
	}
)
