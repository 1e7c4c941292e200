package app

import (
	stderrors "errors"
	"testing"

	"github.com/zhubert/swatch/internal/keys"
	"github.com/zhubert/swatch/internal/ui"
	"github.com/zhubert/swatch/internal/ui/modals"
)

func TestCopy_WritesExactCode(t *testing.T) {
	tests := []struct {
		name      string
		clipErr   error
		wantType  ui.FlashType
		wantTitle string
	}{
		{"write succeeds", nil, ui.FlashSuccess, "Copied to clipboard"},
		{"write fails", stderrors.New("no display"), ui.FlashWarning, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, clip, _ := testModel(t, testConfig(t))
			clip.err = tt.clipErr
			if err := m.Viewer().SelectColor("blue"); err != nil {
				t.Fatal(err)
			}

			m, cmd := sendKey(m, "c")
			res := clipboardResult(t, runCmd(cmd))

			if len(clip.writes) != 1 || clip.writes[0] != "blue-500" {
				t.Fatalf("clipboard writes = %q, want [blue-500]", clip.writes)
			}
			if res.Code != "blue-500" {
				t.Errorf("result code = %q", res.Code)
			}

			m.Update(res)
			flash := m.footer.Flash()
			if flash == nil {
				t.Fatal("expected a notification")
			}
			if flash.Type != tt.wantType || flash.Title != tt.wantTitle {
				t.Errorf("flash = %v %q, want %v %q", flash.Type, flash.Title, tt.wantType, tt.wantTitle)
			}
		})
	}
}

func TestCopy_SuccessMessage(t *testing.T) {
	m, _, _ := testModelWithSize(t, 100, 40)
	m.Update(ClipboardResultMsg{Code: "blue-500"})

	flash := m.footer.Flash()
	if flash == nil {
		t.Fatal("expected a notification")
	}
	if flash.Text != "blue-500 has been copied to your clipboard." {
		t.Errorf("flash text = %q", flash.Text)
	}
	if flash.Duration != ui.DefaultFlashDuration {
		t.Errorf("duration = %v, want %v", flash.Duration, ui.DefaultFlashDuration)
	}
}

func TestCopy_CustomColor(t *testing.T) {
	m, clip, _ := testModelWithSize(t, 100, 40)
	if _, ok := m.addCustomColor("teal", "123 45 67"); !ok {
		t.Fatal("addCustomColor failed")
	}
	if err := m.Viewer().SelectColor("teal"); err != nil {
		t.Fatal(err)
	}

	_, cmd := sendKey(m, "y")
	runCmd(cmd)
	if len(clip.writes) != 1 || clip.writes[0] != "teal-123 45 67" {
		t.Errorf("clipboard writes = %q", clip.writes)
	}
}

func TestCopy_DesktopNotification(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    int
	}{
		{"enabled", true, 1},
		{"disabled", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.SetNotificationsEnabled(tt.enabled)
			m, _, notifier := testModel(t, cfg)

			_, cmd := m.Update(ClipboardResultMsg{Code: "rose-50"})
			runCmd(cmd)

			if len(notifier.titles) != tt.want {
				t.Fatalf("got %d desktop notifications, want %d", len(notifier.titles), tt.want)
			}
			if tt.want > 0 && notifier.messages[0] != "rose-50 has been copied to your clipboard." {
				t.Errorf("message = %q", notifier.messages[0])
			}
		})
	}
}

func TestAddCustomColor_ViaModal(t *testing.T) {
	m, _, _ := testModelWithSize(t, 100, 40)
	m.Viewer().SetDraft("teal", "123 45 67")

	m, _ = sendKey(m, "a")
	m, _ = sendKey(m, "enter")

	if m.modal.IsVisible() {
		t.Error("modal should close after adding")
	}
	if !m.Viewer().Palette().Has("teal") {
		t.Fatal("teal should be in the palette")
	}
	if name, value := m.Viewer().Draft(); name != "" || value != "" {
		t.Errorf("draft should be cleared, got %q/%q", name, value)
	}
	flash := m.footer.Flash()
	if flash == nil || flash.Title != "Custom color added" ||
		flash.Text != "teal has been added to the color palette." {
		t.Errorf("flash = %+v", flash)
	}
}

func TestAddCustomColor_OverwritesFamily(t *testing.T) {
	m, _, _ := testModelWithSize(t, 100, 40)
	if _, ok := m.addCustomColor("rose", "999"); !ok {
		t.Fatal("addCustomColor failed")
	}

	shades, _ := m.Viewer().Palette().Shades("rose")
	if len(shades) != 1 || shades[0] != "999" {
		t.Errorf("rose shades = %v, want [999]", shades)
	}
	if m.Viewer().Code() != "rose-999" {
		t.Errorf("Code() = %q", m.Viewer().Code())
	}
}

func TestAddCustomColor_IncompleteDraft(t *testing.T) {
	tests := []struct {
		name, draftName, draftValue string
	}{
		{"empty name", "", "x"},
		{"empty value", "x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, notifier := testModelWithSize(t, 100, 40)
			m.config.SetNotificationsEnabled(true)
			m.Viewer().SetDraft(tt.draftName, tt.draftValue)
			families := len(m.Viewer().Families())

			m, _ = sendKey(m, "a")
			m, cmd := sendKey(m, "enter")

			if cmd != nil {
				t.Error("incomplete draft should produce no command")
			}
			if !m.modal.IsVisible() || m.modal.GetError() == "" {
				t.Error("modal should stay open with an error")
			}
			if m.footer.HasFlash() || len(notifier.titles) != 0 {
				t.Error("incomplete draft should not notify")
			}
			if len(m.Viewer().Families()) != families {
				t.Error("palette changed")
			}
			if n, v := m.Viewer().Draft(); n != tt.draftName || v != tt.draftValue {
				t.Errorf("draft changed to %q/%q", n, v)
			}
		})
	}
}

func TestCopy_FailureMessage(t *testing.T) {
	m, _, notifier := testModelWithSize(t, 100, 40)
	m.config.SetNotificationsEnabled(true)

	_, cmd := m.Update(ClipboardResultMsg{Code: "blue-500", Err: stderrors.New("no display")})
	runCmd(cmd)

	flash := m.footer.Flash()
	if flash == nil || flash.Type != ui.FlashWarning {
		t.Fatalf("flash = %+v, want warning", flash)
	}
	if flash.Text != "blue-500 was only sent to the terminal clipboard." {
		t.Errorf("flash text = %q", flash.Text)
	}
	if len(notifier.titles) != 0 {
		t.Error("a failed copy should not send a desktop notification")
	}
}

func TestAddCustomColor_TypedIntoModal(t *testing.T) {
	m, _, _ := testModelWithSize(t, 100, 40)

	m, _ = sendKey(m, "a")
	if _, ok := m.modal.State.(*modals.AddColorState); !ok {
		t.Fatalf("expected add color form, got %T", m.modal.State)
	}
	m = typeText(m, "teal")
	m = sendKeySettled(m, keys.Tab)
	m = typeText(m, "123 45 67")

	state := m.modal.State.(*modals.AddColorState)
	if name, value := state.GetValues(); name != "teal" || value != "123 45 67" {
		t.Fatalf("form values = %q/%q, want teal/123 45 67", name, value)
	}

	m, _ = sendKey(m, keys.Enter)
	if m.modal.IsVisible() {
		t.Error("modal should close after adding")
	}
	shades, ok := m.Viewer().Palette().Shades("teal")
	if !ok || len(shades) != 1 || shades[0] != "123 45 67" {
		t.Errorf("teal shades = %v, %v; want [123 45 67]", shades, ok)
	}
}
