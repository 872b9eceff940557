package session

import (
	_ "embed"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bethropolis/multitab/internal/content"
	"github.com/bethropolis/multitab/internal/utils"
)

// ID identifies a Buffer for its whole lifetime, independent of its tab index.
type ID = uuid.UUID

//go:embed sample.go.txt
var sampleText string

// Buffer is one open document.
type Buffer struct {
	ID       ID
	Path     string // empty until the buffer is first saved or opened from disk
	Content  *content.Content
	Modified bool
}

// Empty creates a path-less, unmodified, empty buffer.
func Empty() *Buffer {
	return &Buffer{ID: uuid.New(), Content: content.New()}
}

// FromText creates an unmodified buffer holding text loaded from path.
func FromText(path, text string) *Buffer {
	return &Buffer{ID: uuid.New(), Path: path, Content: content.WithText(text)}
}

// Sample creates the startup buffer: embedded example source, no path, modified.
func Sample() *Buffer {
	b := &Buffer{ID: uuid.New(), Content: content.WithText(NormalizeText(sampleText))}
	b.Modified = true
	return b
}

// Text returns the full buffer text.
func (b *Buffer) Text() string {
	return b.Content.Text()
}

// CursorPosition returns the 0-based cursor line and column.
func (b *Buffer) CursorPosition() (line, col int) {
	return b.Content.CursorPosition()
}

// Perform applies a to the content and reports whether it was an edit.
func (b *Buffer) Perform(a content.Action) bool {
	b.Content.Perform(a)
	if a.IsEdit() {
		b.Modified = true
		return true
	}
	return false
}

// MarkSaved records a successful write to path.
func (b *Buffer) MarkSaved(path string) {
	b.Path = path
	b.Modified = false
}

// Title is the tab label: the file name or "New file", with "*" when modified.
func (b *Buffer) Title() string {
	title := "New file"
	if b.Path != "" {
		title = filepath.Base(b.Path)
	}
	if b.Modified {
		title += "*"
	}
	return title
}

// Extension returns the path extension without the dot, or "" for path-less buffers.
func (b *Buffer) Extension() string {
	return utils.Extension(b.Path)
}
