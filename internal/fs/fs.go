package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver joins relative paths onto a fixed base directory.
type PathResolver struct {
	baseDir string
}

// NewPathResolver creates a PathResolver rooted at baseDir. An empty baseDir
// means the directory holding the running executable.
func NewPathResolver(baseDir string) (*PathResolver, error) {
	if baseDir == "" {
		dir, err := ExecutableDir()
		if err != nil {
			return nil, err
		}
		return &PathResolver{baseDir: dir}, nil
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("invalid base directory '%s': %w", baseDir, err)
	}
	return &PathResolver{baseDir: abs}, nil
}

// BaseDir returns the absolute base directory.
func (r *PathResolver) BaseDir() string {
	return r.baseDir
}

// Resolve returns the absolute path of relativePath under the base directory.
// Forward slashes in relativePath are converted for the host OS.
func (r *PathResolver) Resolve(relativePath string) string {
	return filepath.Join(r.baseDir, filepath.FromSlash(relativePath))
}

// ExecutableDir returns the directory containing the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("could not locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Exists reports whether path can be stat'ed. Any stat failure, not only
// "does not exist", counts as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadText reads the whole file at path as a string.
func ReadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read '%s': %w", path, err)
	}
	return string(content), nil
}
