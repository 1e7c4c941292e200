// Package ui provides the visual components of the Swatch palette viewer.
//
// # Layout
//
//	┌─────────────────────────────────────────────┐
//	│ Header (title, layout and theme indicators) │
//	├─────────────────────────────────────────────┤
//	│ Select Color        Number of Shades        │
//	│ ┌────┐┌────┐┌────┐┌────┐┌────┐┌────┐        │
//	│ │ 50 ││100 ││200 ││300 ││400 ││500 │  ...   │
//	│ └────┘└────┘└────┘└────┘└────┘└────┘        │
//	│ Color Code          Color Preview           │
//	│ New Color Name      New Color Value         │
//	├─────────────────────────────────────────────┤
//	│ Footer (shortcuts or flash message)         │
//	└─────────────────────────────────────────────┘
//
// # Themes
//
// There is no global theme. ThemeFor maps a viewer mode to a Theme, NewStyles
// derives every lipgloss style from it, and the resulting Styles value is
// passed to each View method. Toggling the mode rebuilds Styles.
//
// Each Theme carries the Tailwind variable table used to fill swatches.
// Families without a variable (custom colors) render unstyled.
//
// # Components
//
// ViewContext: per-model layout calculations derived from the terminal size.
//
// Header: title with a gradient plus the current layout and theme.
//
// Panel: the selector, shade count, swatches, color code, preview and the
// custom color draft.
//
// Swatches: the grid or stacked rendering of the visible shades.
//
// Footer: key bindings, replaced by a flash message while one is showing.
//
// Modal: container for the dialogs in the modals subpackage.
package ui
