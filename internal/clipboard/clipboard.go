// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/swatch/internal/errors"
	"github.com/zhubert/swatch/internal/logger"
)

// Backend is the platform clipboard. The default uses golang.design/x/clipboard;
// tests swap it out with SetBackend.
type Backend struct {
	Init  func() error
	Write func(text string)
}

func defaultBackend() Backend {
	return Backend{
		Init: clipboard.Init,
		Write: func(text string) {
			clipboard.Write(clipboard.FmtText, []byte(text))
		},
	}
}

var (
	mu          sync.Mutex
	backend     = defaultBackend()
	initialized bool
)

// SetBackend replaces the platform clipboard. Intended for tests.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
	initialized = false
}

// ResetBackend restores the platform clipboard.
func ResetBackend() {
	SetBackend(defaultBackend())
}

// Init initializes the clipboard. It is safe to call multiple times; a
// failed initialization is retried on the next call.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := backend.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		return errors.ClipboardFailed(err)
	}
	initialized = true
	logger.WithComponent("clipboard").Debug("initialized")
	return nil
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	backend.Write(text)
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// Writer writes text to a clipboard.
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(text string) error

// WriteText calls f(text).
func (f WriterFunc) WriteText(text string) error { return f(text) }

// System is the Writer backed by the package-level clipboard.
var System Writer = WriterFunc(WriteText)
