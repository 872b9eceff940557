// Package session holds the ordered set of open buffers and the current tab.
package session

import (
	"fmt"

	"github.com/bethropolis/multitab/internal/content"
	"github.com/bethropolis/multitab/internal/logger"
)

// Session is the ordered list of open buffers plus the current index.
// It is not safe for concurrent use; a single goroutine owns it.
type Session struct {
	buffers []*Buffer
	current int
	err     error
}

// SaveRequest is a snapshot of a buffer to be written.
// Path is empty when a save dialog must pick the target.
type SaveRequest struct {
	BufferID ID
	Path     string
	Text     string
}

// New creates a session holding first, or an empty buffer when first is nil.
func New(first *Buffer) *Session {
	if first == nil {
		first = Empty()
	}
	return &Session{buffers: []*Buffer{first}}
}

// assertCurrent panics when the current index is out of bounds.
func (s *Session) assertCurrent() {
	if s.current < 0 || s.current >= len(s.buffers) {
		panic(fmt.Sprintf("session: current index %d out of bounds (len %d)", s.current, len(s.buffers)))
	}
}

// New appends an empty buffer and makes it current.
func (s *Session) New() {
	s.assertCurrent()
	s.buffers = append(s.buffers, Empty())
	s.current = len(s.buffers) - 1
	logger.DebugTagf("session", "New: %d buffers, current %d", len(s.buffers), s.current)
}

// Open appends an unmodified buffer holding text loaded from path and makes it current.
func (s *Session) Open(path, text string) *Buffer {
	s.assertCurrent()
	b := FromText(path, text)
	s.buffers = append(s.buffers, b)
	s.current = len(s.buffers) - 1
	logger.DebugTagf("session", "Open %q: %d buffers, current %d", path, len(s.buffers), s.current)
	return b
}

// Edit applies a to the current buffer. Only edit actions mark it modified.
// Any recorded error is cleared.
func (s *Session) Edit(a content.Action) {
	s.assertCurrent()
	s.buffers[s.current].Perform(a)
	s.err = nil
}

// PrepareSave snapshots the current buffer for writing. With saveAs, or when
// the buffer has no path yet, the returned Path is empty.
func (s *Session) PrepareSave(saveAs bool) SaveRequest {
	s.assertCurrent()
	b := s.buffers[s.current]
	req := SaveRequest{BufferID: b.ID, Text: b.Text()}
	if !saveAs {
		req.Path = b.Path
	}
	return req
}

// Saved records a successful write of buffer id to path. It reports false
// when the buffer has been closed in the meantime.
func (s *Session) Saved(id ID, path string) bool {
	i, ok := s.Find(id)
	if !ok {
		logger.Warnf("Session: save of closed buffer %s to %q ignored", id, path)
		return false
	}
	s.buffers[i].MarkSaved(path)
	return true
}

// Close closes the current buffer.
func (s *Session) Close() {
	s.assertCurrent()
	s.closeAt(s.current)
}

// CloseIndex closes the buffer at i.
func (s *Session) CloseIndex(i int) {
	s.assertCurrent()
	if i < 0 || i >= len(s.buffers) {
		logger.Warnf("Session: CloseIndex(%d) out of range (len %d)", i, len(s.buffers))
		return
	}
	s.closeAt(i)
}

// closeAt applies the close policy. Closing a tab other than the current one
// moves focus to tab 0 before removing it. Closing the current tab at 0 moves
// focus to len-2. The only buffer is reset in place, never removed.
func (s *Session) closeAt(i int) {
	switch {
	case i != s.current:
		s.current = 0
		s.remove(i)
	case s.current != 0:
		s.current = 0
		s.remove(i)
	case len(s.buffers) == 1:
		s.buffers[0] = Empty()
	default:
		s.current = len(s.buffers) - 2
		s.remove(0)
	}
	logger.DebugTagf("session", "Close %d: %d buffers, current %d", i, len(s.buffers), s.current)
}

func (s *Session) remove(i int) {
	copy(s.buffers[i:], s.buffers[i+1:])
	s.buffers[len(s.buffers)-1] = nil
	s.buffers = s.buffers[:len(s.buffers)-1]
}

// SelectFile makes buffer i current. Callers pass indices taken from the tab list.
func (s *Session) SelectFile(i int) {
	s.current = i
}

// Fail records err as the most recent error, replacing any earlier one.
func (s *Session) Fail(err error) {
	s.err = err
}

// ClearError forgets the recorded error.
func (s *Session) ClearError() {
	s.err = nil
}

// Err returns the most recent error, or nil.
func (s *Session) Err() error {
	return s.err
}

// Current returns the current buffer.
func (s *Session) Current() *Buffer {
	s.assertCurrent()
	return s.buffers[s.current]
}

func (s *Session) CurrentIndex() int {
	return s.current
}

// Buffers returns the open buffers in tab order. The slice must not be modified.
func (s *Session) Buffers() []*Buffer {
	return s.buffers
}

func (s *Session) Len() int {
	return len(s.buffers)
}

// Find returns the index of the buffer with id.
func (s *Session) Find(id ID) (int, bool) {
	for i, b := range s.buffers {
		if b.ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindPath returns the index of the first buffer backed by path.
func (s *Session) FindPath(path string) (int, bool) {
	if path == "" {
		return -1, false
	}
	for i, b := range s.buffers {
		if b.Path == path {
			return i, true
		}
	}
	return -1, false
}
