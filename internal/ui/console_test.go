package ui

import (
	"bytes"
	"testing"
)

func TestConsoleEmojiToggle(t *testing.T) {
	var buf bytes.Buffer
	c := NewWithEmoji(&buf, false)
	c.Success("Added environment 'prod'")
	c.Warn("Environment already exists")
	c.Header("🌍", "Environments")

	want := "[ok] Added environment 'prod'\n[warn] Environment already exists\nEnvironments\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestConsoleWithEmoji(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	c.Success("done")
	c.Error("boom")
	c.Block("table")

	want := "✅ done\n✗ boom\ntable\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}
