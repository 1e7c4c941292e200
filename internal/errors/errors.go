// Package errors provides structured error types for swatch.
// Every error carries the operation that failed and a Kind the UI uses to
// decide how loudly to report it.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.Function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindClipboard
	KindNotification
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindClipboard:
		return "clipboard error"
	case KindNotification:
		return "notification error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for swatch.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
//
// With no underlying error the context message becomes the error.
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Palette errors

func FamilyNotFound(name string) error {
	return E(Op("viewer.SelectColor"), KindNotFound, fmt.Sprintf("color family %q not found", name))
}

func ShadeNotFound(family, shade string) error {
	return E(Op("viewer.SelectShade"), KindNotFound, fmt.Sprintf("shade %q is not visible in %s", shade, family))
}

func InvalidShadeCount(input string, err error) error {
	return E(Op("viewer.SetShadeCountText"), KindInvalid, fmt.Sprintf("%q is not a number", input), err)
}

// Clipboard errors

func ClipboardFailed(err error) error {
	return E(Op("clipboard.WriteText"), KindClipboard, "failed to write to system clipboard", err)
}

// Notification errors

func NotificationFailed(title string, err error) error {
	return E(Op("notification.Send"), KindNotification, fmt.Sprintf("failed to send %q", title), err)
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
