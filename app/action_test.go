package app

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"

	"pomobar/internal/config"
	"pomobar/internal/cycle"
	"pomobar/internal/notify"
)

type fakeDispatcher struct {
	titles []string
	bodies []string
}

func (f *fakeDispatcher) Notify(title, message string) error {
	f.titles = append(f.titles, title)
	f.bodies = append(f.bodies, message)

	return nil
}

func swapDispatcher(t *testing.T, d notify.Dispatcher) {
	t.Helper()

	prev := dispatcher
	dispatcher = d

	t.Cleanup(func() { dispatcher = prev })
}

func TestSendNotification(t *testing.T) {
	fake := &fakeDispatcher{}
	swapDispatcher(t, fake)

	cfg := &config.Config{
		Notifications: config.NotificationConfig{Enabled: true},
	}

	n := &cycle.Notification{Title: "Pomodoro", Body: "W Focus on your task"}

	sendNotification(cfg, n)

	assert.Equal(t, []string{"Pomodoro"}, fake.titles)
	assert.Equal(t, []string{"W Focus on your task"}, fake.bodies)
}

func TestSendNotificationDisabled(t *testing.T) {
	fake := &fakeDispatcher{}
	swapDispatcher(t, fake)

	cfg := &config.Config{
		Notifications: config.NotificationConfig{Enabled: false},
	}

	sendNotification(cfg, &cycle.Notification{Title: "Pomodoro"})

	assert.Empty(t, fake.titles)
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "b", firstNonEmptyString("", "b", "c"))
	assert.Equal(t, "", firstNonEmptyString("", ""))
}

func testContext(t *testing.T, args []string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)

	for _, f := range []cli.Flag{
		workFlag,
		shortBreakFlag,
		longBreakFlag,
		longBreakIntervalFlag,
		disableNotificationFlag,
	} {
		if err := f.Apply(set); err != nil {
			t.Fatal(err)
		}
	}

	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}

	return cli.NewContext(Get(), set, nil)
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := &config.Config{
		Work:          config.StageConfig{Duration: 25 * time.Minute},
		ShortBreak:    config.StageConfig{Duration: 5 * time.Minute},
		LongBreak:     config.StageConfig{Duration: 15 * time.Minute},
		Settings:      config.SettingsConfig{LongBreakInterval: 4},
		Notifications: config.NotificationConfig{Enabled: true},
	}

	ctx := testContext(t, []string{
		"--work", "50",
		"--long-break-interval", "2",
		"--disable-notification",
	})

	applyFlagOverrides(ctx, cfg)

	assert.Equal(t, 50*time.Minute, cfg.Work.Duration)
	assert.Equal(t, 5*time.Minute, cfg.ShortBreak.Duration)
	assert.Equal(t, 2, cfg.Settings.LongBreakInterval)
	assert.False(t, cfg.Notifications.Enabled)
}
