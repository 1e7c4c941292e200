package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/swatch/internal/keys"
	"github.com/zhubert/swatch/internal/logger"
	"github.com/zhubert/swatch/internal/ui"
	"github.com/zhubert/swatch/internal/ui/modals"
	"github.com/zhubert/swatch/internal/viewer"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "c", "right")
	Aliases     []string                            // Other keys that run the same handler
	DisplayKey  string                              // Display name in help (e.g., "→/l"); defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// matches reports whether key triggers s.
func (s Shortcut) matches(key string) bool {
	if s.Key == key {
		return true
	}
	for _, alias := range s.Aliases {
		if alias == key {
			return true
		}
	}
	return false
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryShades  = "Shades"
	CategoryColors  = "Colors"
	CategoryView    = "View"
	CategoryGeneral = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryShades,
	CategoryColors,
	CategoryView,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Shades
	{
		Key:         keys.Right,
		Aliases:     []string{"l"},
		DisplayKey:  "→/l",
		Description: "Next shade",
		Category:    CategoryShades,
		Handler:     moveShade(1),
	},
	{
		Key:         keys.Left,
		Aliases:     []string{"h"},
		DisplayKey:  "←/h",
		Description: "Previous shade",
		Category:    CategoryShades,
		Handler:     moveShade(-1),
	},
	{
		Key:         keys.Down,
		Aliases:     []string{"j"},
		DisplayKey:  "↓/j",
		Description: "Shade below",
		Category:    CategoryShades,
		Handler:     shortcutShadeBelow,
	},
	{
		Key:         keys.Up,
		Aliases:     []string{"k"},
		DisplayKey:  "↑/k",
		Description: "Shade above",
		Category:    CategoryShades,
		Handler:     shortcutShadeAbove,
	},
	{
		Key:         keys.Home,
		DisplayKey:  "Home",
		Description: "First shade",
		Category:    CategoryShades,
		Handler:     moveShade(-viewer.MaxShadeCount),
	},
	{
		Key:         keys.End,
		DisplayKey:  "End",
		Description: "Last shade",
		Category:    CategoryShades,
		Handler:     moveShade(viewer.MaxShadeCount),
	},
	{
		Key:         "+",
		Aliases:     []string{"="},
		Description: "Show one more shade",
		Category:    CategoryShades,
		Handler:     adjustShadeCount(1),
	},
	{
		Key:         "-",
		Description: "Show one fewer shade",
		Category:    CategoryShades,
		Handler:     adjustShadeCount(-1),
	},
	{
		Key:         "#",
		Description: "Type the number of shades",
		Category:    CategoryShades,
		Handler:     shortcutShadeCount,
	},

	// Colors
	{
		Key:         "]",
		Description: "Next color",
		Category:    CategoryColors,
		Handler:     cycleColor(1),
	},
	{
		Key:         "[",
		Description: "Previous color",
		Category:    CategoryColors,
		Handler:     cycleColor(-1),
	},
	{
		Key:         "f",
		Description: "Pick a color",
		Category:    CategoryColors,
		Handler:     shortcutPickColor,
	},
	{
		Key:         "a",
		Description: "Add a custom color",
		Category:    CategoryColors,
		Handler:     shortcutAddColor,
	},

	// View
	{
		Key:         "g",
		Description: "Toggle grid/stacked layout",
		Category:    CategoryView,
		Handler:     shortcutToggleLayout,
	},
	{
		Key:         "t",
		Description: "Toggle light/dark theme",
		Category:    CategoryView,
		Handler:     shortcutToggleTheme,
	},

	// General
	{
		Key:         "c",
		Aliases:     []string{"y"},
		DisplayKey:  "c/y",
		Description: "Copy color code",
		Category:    CategoryGeneral,
		Handler:     shortcutCopy,
		Condition:   func(m *Model) bool { return m.viewer.Shade() != "" },
	},
	{
		Key:         "q",
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid an initialization cycle
// (shortcutHelp reads ShortcutRegistry)
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but handled outside the registry.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "Esc", Description: "Dismiss notification", Category: CategoryGeneral},
	{DisplayKey: "Ctrl+C", Description: "Quit from anywhere", Category: CategoryGeneral},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	return s.Condition == nil || s.Condition(m)
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or its condition failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	log := logger.WithComponent("shortcuts")

	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if !s.matches(key) {
			continue
		}
		if !m.isShortcutApplicable(s) {
			log.Debug("condition failed", "key", key)
			return m, nil, false
		}
		log.Debug("executing", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that
// are applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	for _, s := range registry {
		if !m.isShortcutApplicable(s) {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:     displayKey(s),
			Desc:    s.Description,
			Trigger: s.Key,
		})
	}

	for _, s := range displayOnly {
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey(s),
			Desc: s.Description,
		})
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

func displayKey(s Shortcut) string {
	if s.DisplayKey != "" {
		return s.DisplayKey
	}
	return s.Key
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func moveShade(delta int) func(m *Model) (tea.Model, tea.Cmd) {
	return func(m *Model) (tea.Model, tea.Cmd) {
		m.viewer.MoveShade(delta)
		return m, nil
	}
}

// gridStep is how far up/down moves: one row in the grid, one shade when stacked.
func (m *Model) gridStep() int {
	if m.viewer.Layout() == viewer.LayoutStacked {
		return 1
	}
	return max(ui.SwatchesFor(m.viewer, m.panel.InnerWidth()).GridColumns(), 1)
}

func shortcutShadeBelow(m *Model) (tea.Model, tea.Cmd) {
	m.viewer.MoveShade(m.gridStep())
	return m, nil
}

func shortcutShadeAbove(m *Model) (tea.Model, tea.Cmd) {
	m.viewer.MoveShade(-m.gridStep())
	return m, nil
}

func adjustShadeCount(delta int) func(m *Model) (tea.Model, tea.Cmd) {
	return func(m *Model) (tea.Model, tea.Cmd) {
		m.viewer.SetShadeCount(m.viewer.ShadeCount() + delta)
		return m, nil
	}
}

func shortcutShadeCount(m *Model) (tea.Model, tea.Cmd) {
	state := modals.NewShadeCountState(m.viewer.ShadeCount(), viewer.MaxShadeCount, m.styles.Modals())
	m.modal.Show(state)
	return m, state.Input.Focus()
}

func cycleColor(delta int) func(m *Model) (tea.Model, tea.Cmd) {
	return func(m *Model) (tea.Model, tea.Cmd) {
		m.viewer.CycleColor(delta)
		return m, nil
	}
}

func shortcutPickColor(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewFamilyPickerState(m.viewer.Families(), m.viewer.Color(), m.styles.Modals()))
	return m, nil
}

func shortcutAddColor(m *Model) (tea.Model, tea.Cmd) {
	name, value := m.viewer.Draft()
	m.modal.Show(modals.NewAddColorState(name, value, m.styles.Modals()))
	return m, nil
}

func shortcutToggleLayout(m *Model) (tea.Model, tea.Cmd) {
	m.viewer.ToggleLayout()
	m.rebuildStyles()
	return m, nil
}

func shortcutToggleTheme(m *Model) (tea.Model, tea.Cmd) {
	m.viewer.ToggleMode()
	m.rebuildStyles()
	return m, nil
}

func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	return m, m.copyCurrentCode()
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(ShortcutRegistry[:len(ShortcutRegistry):len(ShortcutRegistry)], helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpStateFromSections(sections, m.styles.Modals()))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m.quit()
}
