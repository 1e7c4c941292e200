package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/swatch/internal/clipboard"
	"github.com/zhubert/swatch/internal/config"
	"github.com/zhubert/swatch/internal/notification"
	"github.com/zhubert/swatch/internal/palette"
	"github.com/zhubert/swatch/internal/ui"
	"github.com/zhubert/swatch/internal/viewer"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)

	viewer *viewer.Viewer
	header *ui.Header
	footer *ui.Footer
	panel  *ui.Panel
	modal  *ui.Modal
	ctx    *ui.ViewContext

	// styles is rebuilt whenever the viewer's mode changes
	styles ui.Styles

	clipboard clipboard.Writer
	notify    func(title, message string) error

	width  int
	height int
}

// ClipboardResultMsg reports the outcome of a system clipboard write.
// Code is the exact text that was written.
type ClipboardResultMsg struct {
	Code string
	Err  error
}

// Option customizes a Model at construction.
type Option func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(w clipboard.Writer) Option {
	return func(m *Model) { m.clipboard = w }
}

// WithNotifier replaces the desktop notification sender.
func WithNotifier(fn func(title, message string) error) Option {
	return func(m *Model) { m.notify = fn }
}

// WithViewerOptions overrides the startup options read from the config.
func WithViewerOptions(opts viewer.Options) Option {
	return func(m *Model) { m.viewer = viewer.New(palette.Default(), opts) }
}

// New creates a new app model
func New(cfg *config.Config, version string, opts ...Option) *Model {
	m := &Model{
		config:    cfg,
		version:   version,
		viewer:    viewer.New(palette.Default(), cfg.ViewerOptions()),
		header:    ui.NewHeader(),
		footer:    ui.NewFooter(),
		panel:     ui.NewPanel(),
		modal:     ui.NewModal(),
		ctx:       ui.NewViewContext(),
		clipboard: clipboard.System,
		notify:    notification.Send,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.rebuildStyles()
	m.updateSizes()
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Viewer returns the palette viewer driven by this model.
func (m *Model) Viewer() *viewer.Viewer {
	return m.viewer
}

// rebuildStyles derives styles from the viewer's current mode and refreshes
// the header indicators.
func (m *Model) rebuildStyles() {
	m.styles = ui.NewStyles(ui.ThemeFor(m.viewer.Mode()))
	m.header.SetModes(m.viewer.Layout(), m.viewer.Mode())
}
