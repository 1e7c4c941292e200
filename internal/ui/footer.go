package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType is the severity of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// Icon returns the glyph shown before a flash of this type
func (t FlashType) Icon() string {
	switch t {
	case FlashSuccess:
		return "✓"
	case FlashWarning:
		return "⚠"
	case FlashError:
		return "✕"
	default:
		return "ℹ"
	}
}

func (t FlashType) String() string {
	switch t {
	case FlashSuccess:
		return "success"
	case FlashWarning:
		return "warning"
	case FlashError:
		return "error"
	default:
		return "info"
	}
}

// FlashMessage is a transient notification shown in place of the key bindings
type FlashMessage struct {
	ID        string
	Title     string
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true once the message has been shown for its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// FlashTickMsg asks the app to check whether the flash has expired
type FlashTickMsg struct{}

// FlashTick returns a command that sends a FlashTickMsg after FlashTickInterval
func FlashTick() tea.Cmd {
	return tea.Tick(FlashTickInterval, func(time.Time) tea.Msg {
		return FlashTickMsg{}
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	flashMessage *FlashMessage
}

// DefaultBindings are the bindings shown when no flash is active
var DefaultBindings = []KeyBinding{
	{Key: "←/→", Desc: "shade"},
	{Key: "[/]", Desc: "color"},
	{Key: "c", Desc: "copy"},
	{Key: "g", Desc: "layout"},
	{Key: "t", Desc: "theme"},
	{Key: "a", Desc: "add color"},
	{Key: "?", Desc: "help"},
	{Key: "q", Desc: "quit"},
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: DefaultBindings,
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows an untitled flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows an untitled flash message for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.SetNotice("", text, flashType, d)
}

// SetNotice shows a titled flash message for d and returns it. A new notice
// replaces any notice still on screen.
func (f *Footer) SetNotice(title, text string, flashType FlashType, d time.Duration) *FlashMessage {
	f.flashMessage = &FlashMessage{
		ID:        uuid.NewString(),
		Title:     title,
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
	return f.flashMessage
}

// Flash returns the active flash message, or nil
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// ClearFlash dismisses the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash returns whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired dismisses an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View(st Styles) string {
	var content string
	if f.flashMessage != nil {
		content = f.renderFlash(st)
	} else {
		var parts []string
		for _, b := range f.bindings {
			key := st.FooterKey.Render(b.Key)
			desc := st.FooterDesc.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
		content = strings.Join(parts, " "+st.FooterSep.Render("·")+" ")
	}

	if f.width > 0 {
		// Leave room for the footer padding
		content = ansi.Truncate(content, f.width-2, "…")
		return st.Footer.Width(f.width).Render(content)
	}
	return st.Footer.Render(content)
}

func (f *Footer) renderFlash(st Styles) string {
	msg := f.flashMessage

	style := st.FlashInfo
	switch msg.Type {
	case FlashSuccess:
		style = st.FlashSuccess
	case FlashWarning:
		style = st.FlashWarning
	case FlashError:
		style = st.FlashError
	}

	line := style.Render(msg.Type.Icon() + " ")
	if msg.Title != "" {
		line += st.FlashTitle.Render(msg.Title) + st.FooterDesc.Render(" · ")
	}
	return line + style.Render(msg.Text)
}
