// Package notify dispatches desktop notifications
package notify

import "github.com/gen2brain/beeep"

// Dispatcher sends a desktop notification.
type Dispatcher interface {
	Notify(title, message string) error
}

// Desktop dispatches through the session's notification daemon.
type Desktop struct{}

func (Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}
