package app

import (
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"

	"pomobar/internal/button"
	"pomobar/internal/config"
	"pomobar/internal/cycle"
	"pomobar/internal/i3bar"
	"pomobar/internal/notify"
	"pomobar/internal/osutil"
	"pomobar/internal/pathutil"
	"pomobar/internal/store"
	"pomobar/internal/theme"
)

// firstNonEmptyString returns its first non-empty argument, or "" if
// all arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// tickAction runs one tick of the cycle: load the persisted state,
// advance it, persist the result, and emit either the status line or
// a stage-change notification.
func tickAction(ctx *cli.Context) error {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
	)
	if err != nil {
		return err
	}

	applyFlagOverrides(ctx, cfg)

	pal, err := theme.Load(themeResolver())
	if err != nil {
		return err
	}

	seq, err := cfg.Sequence(pal)
	if err != nil {
		return err
	}

	btn, envStateFile := button.FromEnv()

	statePath := firstNonEmptyString(
		ctx.Args().First(),
		ctx.String("state-file"),
		envStateFile,
		pathutil.StateFilePath(),
	)

	st := store.NewFileStore(statePath)

	now := time.Now()

	prev := st.Load(now)

	next, out := cycle.Advance(prev, seq, pal, now, btn)

	err = st.Save(next)
	if err != nil {
		return err
	}

	slog.Debug("tick",
		slog.Int("stage", next.Stage),
		slog.Bool("paused", next.Paused()),
		slog.Bool("boundary", out.Boundary()),
	)

	if out.Boundary() {
		// No status line on a boundary tick: the bar picks up the new
		// stage on its next poll.
		sendNotification(cfg, out.Notification)
		runBoundaryCmd(cfg.Settings.Cmd)

		return nil
	}

	block := i3bar.Block{
		FullText:   out.Text,
		ShortText:  out.ShortText,
		Color:      out.Color,
		Background: cfg.Display.Background,
	}

	return block.Emit(ctx.App.Writer)
}

// themeResolver picks the X resource database when its query tool is
// available and falls back to the built-in defaults otherwise.
func themeResolver() theme.Resolver {
	if _, err := exec.LookPath("xrescat"); err != nil {
		return theme.Static{}
	}

	return theme.XResources{}
}

// dispatcher is swapped out in tests.
var dispatcher notify.Dispatcher = notify.Desktop{}

func sendNotification(cfg *config.Config, n *cycle.Notification) {
	if !cfg.Notifications.Enabled {
		return
	}

	err := dispatcher.Notify(n.Title, n.Body)
	if err != nil {
		slog.Error("unable to display notification",
			slog.Any("error", err),
		)
	}
}

// runBoundaryCmd executes the configured hook command when a stage
// ends. Hook failures are logged, never fatal.
func runBoundaryCmd(boundaryCmd string) {
	if boundaryCmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(boundaryCmd)
	if err != nil {
		slog.Error("unable to parse cmd option", slog.Any("error", err))
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	err = cmd.Run()
	if err != nil {
		slog.Error("boundary command failed", slog.Any("error", err))
	}
}

func applyFlagOverrides(ctx *cli.Context, cfg *config.Config) {
	if ctx.Uint("work") > 0 {
		cfg.Work.Duration = time.Duration(ctx.Uint("work")) * time.Minute
	}

	if ctx.Uint("short-break") > 0 {
		cfg.ShortBreak.Duration = time.Duration(
			ctx.Uint("short-break"),
		) * time.Minute
	}

	if ctx.Uint("long-break") > 0 {
		cfg.LongBreak.Duration = time.Duration(
			ctx.Uint("long-break"),
		) * time.Minute
	}

	if ctx.Uint("long-break-interval") > 0 {
		cfg.Settings.LongBreakInterval = int(ctx.Uint("long-break-interval"))
	}

	if ctx.Bool("disable-notification") {
		cfg.Notifications.Enabled = false
	}
}

// editConfigAction handles the edit-config command.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
