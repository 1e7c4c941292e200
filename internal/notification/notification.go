// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	_ "embed"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/swatch/internal/errors"
	"github.com/zhubert/swatch/internal/logger"
)

//go:embed icon.png
var icon []byte

// Title is the application name shown by desktop notifications.
const Title = "Swatch"

var notifier = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	if err := notifier(title, message, icon); err != nil {
		log.Warn("failed to send notification", "error", err)
		return errors.NotificationFailed(title, err)
	}
	return nil
}

// Copied announces that code was written to the clipboard.
func Copied(code string) error {
	return Send(CopiedTitle, CopiedMessage(code))
}

// Notification titles shared with the in-app flash messages.
const (
	CopiedTitle     = "Copied to clipboard"
	ColorAddedTitle = "Custom color added"
)

// CopiedMessage is the body of the copy notification.
func CopiedMessage(code string) string {
	return code + " has been copied to your clipboard."
}

// ColorAddedMessage is the body of the custom color notification.
func ColorAddedMessage(name string) string {
	return name + " has been added to the color palette."
}
