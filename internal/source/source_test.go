package source

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipboardWrite(t *testing.T) {
	var got string
	c := &Clipboard{write: func(s string) error {
		got = s
		return nil
	}}

	assert.NoError(t, c.Write("report"))
	assert.Equal(t, "report", got)
}

func TestClipboardRejectsBlank(t *testing.T) {
	called := false
	c := &Clipboard{write: func(string) error {
		called = true
		return nil
	}}

	assert.Error(t, c.Write("  \n"))
	assert.False(t, called)
}

func TestClipboardWrapsError(t *testing.T) {
	boom := errors.New("boom")
	c := &Clipboard{write: func(string) error { return boom }}

	err := c.Write("report")
	assert.ErrorIs(t, err, boom)
}
