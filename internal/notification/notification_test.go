package notification

import (
	"bytes"
	stderrors "errors"
	"os"
	"testing"

	"github.com/zhubert/swatch/internal/errors"
	"github.com/zhubert/swatch/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
		icon    any
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
		icon    any
	}{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{
			name:    "successful notification",
			title:   "Test Title",
			message: "Test Message",
		},
		{
			name:        "notification error",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     stderrors.New("notification failed"),
			expectError: true,
		},
		{
			name:    "empty message",
			title:   "Title",
			message: "",
		},
		{
			name:    "unicode content",
			title:   "通知",
			message: "🎨 rose-500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError {
				if !errors.Is(err, errors.KindNotification) {
					t.Errorf("expected KindNotification error, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}

			call := mock.calls[0]
			if call.title != tt.title {
				t.Errorf("title = %q, want %q", call.title, tt.title)
			}
			if call.message != tt.message {
				t.Errorf("message = %q, want %q", call.message, tt.message)
			}
			// Verify icon is the embedded PNG bytes
			iconBytes, ok := call.icon.([]byte)
			if !ok {
				t.Errorf("icon type = %T, want []byte", call.icon)
			} else if !bytes.HasPrefix(iconBytes, []byte("\x89PNG")) {
				t.Error("icon is not the embedded PNG")
			}
		})
	}
}

func TestCopied(t *testing.T) {
	tests := []struct {
		code            string
		expectedMessage string
	}{
		{"blue-500", "blue-500 has been copied to your clipboard."},
		{"teal-123 45 67", "teal-123 45 67 has been copied to your clipboard."},
		{"rose-", "rose- has been copied to your clipboard."},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			mock := &mockNotification{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := Copied(tt.code); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != "Copied to clipboard" {
				t.Errorf("title = %q", mock.calls[0].title)
			}
			if mock.calls[0].message != tt.expectedMessage {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.expectedMessage)
			}
		})
	}
}

func TestSend_ColorAdded(t *testing.T) {
	mock := &mockNotification{err: stderrors.New("notification system unavailable")}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	err := Send(ColorAddedTitle, ColorAddedMessage("teal"))
	if err == nil {
		t.Error("expected error but got nil")
	}
	if len(mock.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.calls))
	}
	if mock.calls[0].title != "Custom color added" {
		t.Errorf("title = %q", mock.calls[0].title)
	}
	if mock.calls[0].message != "teal has been added to the color palette." {
		t.Errorf("message = %q", mock.calls[0].message)
	}
}

func TestResetNotifier(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	ResetNotifier()

	// The mock must no longer receive calls. Swap in a second mock so no
	// real notification is sent.
	second := &mockNotification{}
	SetNotifier(second.notify)
	defer ResetNotifier()

	_ = Send("title", "message")
	if len(mock.calls) != 0 {
		t.Errorf("reset notifier still used, got %d calls", len(mock.calls))
	}
	if len(second.calls) != 1 {
		t.Errorf("expected 1 call on replacement notifier, got %d", len(second.calls))
	}
}
