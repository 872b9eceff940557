package platform

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pkg/browser"
)

// DesktopShell opens URLs and folders with the user's default applications.
type DesktopShell struct{}

// NewDesktopShell silences the launched programs' output, which would
// otherwise be written over the terminal UI.
func NewDesktopShell() DesktopShell {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return DesktopShell{}
}

func (DesktopShell) OpenURL(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open url %s: %w", url, err)
	}
	return nil
}

// Reveal opens the directory containing path in the file manager.
func (DesktopShell) Reveal(path string) error {
	dir := filepath.Dir(path)
	if err := browser.OpenFile(dir); err != nil {
		return fmt.Errorf("reveal %s: %w", dir, err)
	}
	return nil
}
