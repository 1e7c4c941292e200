package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteList_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := writeList(&buf, []string{"blue"}, 11, false); err != nil {
		t.Fatalf("writeList: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want heading plus 11 shades:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Blue" {
		t.Errorf("heading = %q, want Blue", lines[0])
	}
	if lines[6] != "blue-500   #3b82f6" {
		t.Errorf("row = %q", lines[6])
	}
}

func TestWriteList_ShadeCount(t *testing.T) {
	var buf bytes.Buffer
	if err := writeList(&buf, []string{"rose", "green"}, 2, false); err != nil {
		t.Fatalf("writeList: %v", err)
	}

	want := "Rose\nrose-50    #fff1f2\nrose-100   #ffe4e6\n\nGreen\ngreen-50   #f0fdf4\ngreen-100  #dcfce7\n"
	if buf.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteList_ColorAddsSwatch(t *testing.T) {
	var plain, colored bytes.Buffer
	writeList(&plain, []string{"pink"}, 1, false)
	writeList(&colored, []string{"pink"}, 1, true)

	if !strings.Contains(colored.String(), "pink-50") {
		t.Errorf("colored output lost the code:\n%s", colored.String())
	}
	if len(colored.String()) <= len(plain.String()) {
		t.Error("colored output should carry a swatch before each row")
	}
}
