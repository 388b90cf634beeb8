// Package app defines the pomobar command-line application
package app

import (
	"github.com/urfave/cli/v2"

	"pomobar/internal/config"
	"pomobar/internal/pathutil"
)

// Get retrieves the pomobar app instance.
func Get() *cli.App {
	pomobarApp := &cli.App{
		Name: "pomobar",
		Usage: `
		Pomobar renders a pomodoro timer as a status bar block. The bar
		re-executes it on every poll and click: left click toggles the
		pause, middle click restarts the current stage, and right click
		skips to the next stage.`,
		UsageText:            "[OPTIONS] [STATE_FILE]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			stateFileFlag,
			workFlag,
			shortBreakFlag,
			longBreakFlag,
			longBreakIntervalFlag,
			disableNotificationFlag,
			debugFlag,
		},
		Action: tickAction,
		Before: beforeAction,
	}

	return pomobarApp
}

func beforeAction(ctx *cli.Context) error {
	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	initLogger(ctx.Bool("debug"))

	return nil
}
