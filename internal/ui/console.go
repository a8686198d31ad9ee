// Where: cli/internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emojis, indentation, and structure across commands.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out, EmojiEnabled: true}
}

// NewWithEmoji creates a new Console with explicit emoji settings.
func NewWithEmoji(out io.Writer, enabled bool) *Console {
	return &Console{Out: out, EmojiEnabled: enabled}
}

// Header prints a section header with an emoji.
// Example: 🌍 Environments
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
}

// Section prints a blank line, then a header, so consecutive tables stay apart.
func (c *Console) Section(emoji, title string) {
	fmt.Fprintln(c.Out)
	c.Header(emoji, title)
}

// Item prints a key-value item with indentation.
// Example:    Key: Value.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-18s %v\n", key+":", value)
}

// Block writes pre-rendered text, making sure it ends with a newline.
func (c *Console) Block(text string) {
	if text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(c.Out, text)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	prefix := c.emojiPrefix("✅")
	if prefix == "" {
		prefix = "[ok] "
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, msg)
}

// Info prints an info message.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s\n", msg)
}

// Warn prints a warning message with an emoji.
func (c *Console) Warn(msg string) {
	prefix := c.emojiPrefix("⚠️")
	if prefix == "" {
		prefix = "[warn] "
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, msg)
}

// Error prints a failure message.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "✗ %s\n", msg)
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}
