// Package platform adapts operating-system services: native file dialogs,
// the filesystem, the desktop shell and the clipboard.
package platform

import "context"

// Dialogs picks paths with native file dialogs. Cancellation yields an
// empty path and a nil error.
type Dialogs interface {
	PickFile(ctx context.Context) (string, error)
	PickSavePath(ctx context.Context, defaultExt string) (string, error)
}

// Files reads and writes whole text files.
type Files interface {
	ReadText(path string) ([]byte, error)
	WriteText(path, text string) error
}

// Shell hands URLs and paths to the desktop environment.
type Shell interface {
	OpenURL(url string) error
	Reveal(path string) error
}

// Clipboard holds copied text.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}
