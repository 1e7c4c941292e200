// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// PanelPaddingWidth is the horizontal padding inside the panel (Padding(0, 1))
	PanelPaddingWidth = 2

	// MaxPanelWidth keeps the panel readable on very wide terminals
	MaxPanelWidth = 120

	// MinTerminalWidth and MinTerminalHeight clamp layout math
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// SwatchHeight is the number of content lines in a grid swatch
	SwatchHeight = 3

	// StackedSwatchHeight is the number of content lines in a stacked swatch
	StackedSwatchHeight = 1

	// SwatchFrame is the border around each swatch, both axes
	SwatchFrame = 2

	// PreviewHeight is the height of the color preview block
	PreviewHeight = 2
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalFrameWidth is the border plus horizontal padding of ModalStyle
	ModalFrameWidth = 2 + 4

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 64

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 44
)

// Flash messages
const (
	// DefaultFlashDuration is how long a flash stays in the footer
	DefaultFlashDuration = 3 * time.Second

	// FlashTickInterval is how often an active flash checks for expiry
	FlashTickInterval = 500 * time.Millisecond
)
