package platform

import (
	"sync"

	"github.com/atotto/clipboard"
)

// SystemClipboard uses the desktop clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps copied text inside the process.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *MemoryClipboard) Read() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *MemoryClipboard) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

// NewClipboard picks the system clipboard when useSystem is set and it is
// available, and the in-process clipboard otherwise.
func NewClipboard(useSystem bool) Clipboard {
	if useSystem && !clipboard.Unsupported {
		return SystemClipboard{}
	}
	return &MemoryClipboard{}
}
