package ui

import (
	"sync"

	"github.com/zhubert/swatch/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	PanelWidth    int

	mu sync.Mutex
}

// NewViewContext returns a ViewContext sized for the minimum terminal.
func NewViewContext() *ViewContext {
	v := &ViewContext{
		HeaderHeight: HeaderHeight,
		FooterHeight: FooterHeight,
	}
	v.UpdateTerminalSize(MinTerminalWidth, MinTerminalHeight)
	return v
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	// Content area is everything between header and footer
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	v.PanelWidth = width
	if v.PanelWidth > MaxPanelWidth {
		v.PanelWidth = MaxPanelWidth
	}

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"panelWidth", v.PanelWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders and padding
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize - PanelPaddingWidth
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
