package source

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Sink delivers rendered report content somewhere outside the terminal.
type Sink interface {
	Write(content string) error
}

// Clipboard copies content to the system clipboard.
type Clipboard struct {
	write func(string) error
}

// NewClipboard creates a Clipboard sink backed by the system clipboard.
func NewClipboard() *Clipboard {
	if clipboard.Unsupported {
		return &Clipboard{write: func(string) error {
			return fmt.Errorf("clipboard is not supported on this system")
		}}
	}
	return &Clipboard{write: clipboard.WriteAll}
}

// Write copies content. Blank content is rejected so an empty clipboard is
// never mistaken for a report.
func (c *Clipboard) Write(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("nothing to copy")
	}
	if err := c.write(content); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}
