package nvim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenAddressPrefersNVIM(t *testing.T) {
	t.Setenv("NVIM", "/tmp/a.sock")
	t.Setenv("NVIM_LISTEN_ADDRESS", "/tmp/b.sock")
	assert.Equal(t, "/tmp/a.sock", ListenAddress())

	t.Setenv("NVIM", "")
	assert.Equal(t, "/tmp/b.sock", ListenAddress())
}

func TestNewWithoutAddress(t *testing.T) {
	t.Setenv("NVIM", "")
	t.Setenv("NVIM_LISTEN_ADDRESS", "")

	_, err := New()
	assert.Error(t, err)
}

func TestProcessSequentially(t *testing.T) {
	ok, failed := processSequentially([]string{"a", "bad", "c"}, func(s string) bool {
		return s != "bad"
	})
	assert.Equal(t, []string{"a", "c"}, ok)
	assert.Equal(t, []string{"bad"}, failed)
}
