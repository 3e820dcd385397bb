package nvim

import (
	"fmt"
	"os"

	"github.com/neovim/go-client/nvim"
)

// Manager handles the connection to a running Neovim instance.
type Manager struct {
	nvim *nvim.Nvim
}

// ListenAddress returns the socket of the Neovim the user is working in.
// $NVIM is set inside :terminal buffers; NVIM_LISTEN_ADDRESS is the older name.
func ListenAddress() string {
	if addr := os.Getenv("NVIM"); addr != "" {
		return addr
	}
	return os.Getenv("NVIM_LISTEN_ADDRESS")
}

// New connects to the running Neovim instance.
func New() (*Manager, error) {
	addr := ListenAddress()
	if addr == "" {
		return nil, fmt.Errorf("no running Neovim found: set $NVIM or $NVIM_LISTEN_ADDRESS")
	}
	v, err := nvim.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Neovim at %s: %w", addr, err)
	}
	return &Manager{nvim: v}, nil
}

// Close disconnects from Neovim.
func (m *Manager) Close() {
	if m.nvim != nil {
		m.nvim.Close()
	}
}

// OpenFiles opens each path in its own buffer and reports which succeeded.
func (m *Manager) OpenFiles(paths []string) (opened, failed []string) {
	return processSequentially(paths, func(path string) bool {
		var escaped string
		if err := m.nvim.Call("fnameescape", &escaped, path); err != nil {
			return false
		}
		return m.nvim.Command("edit "+escaped) == nil
	})
}

// processSequentially runs fn over items in order, splitting them by outcome.
func processSequentially(items []string, fn func(string) bool) (succeeded, failed []string) {
	for _, item := range items {
		if fn(item) {
			succeeded = append(succeeded, item)
		} else {
			failed = append(failed, item)
		}
	}
	return succeeded, failed
}
