// Package content implements the text-content handle owned by each open
// document: line storage, cursor, selection and edit actions.
package content

import (
	"github.com/rivo/uniseg"

	"github.com/bethropolis/multitab/internal/buffer"
	"github.com/bethropolis/multitab/internal/logger"
	"github.com/bethropolis/multitab/internal/types"
)

// Content is a mutable text document with a cursor and an optional selection.
type Content struct {
	buf     buffer.Buffer
	cursor  types.Position
	anchor  *types.Position // selection anchor, nil when nothing is selected
	goalCol int             // column kept across vertical moves, -1 when unset
	version uint64
}

// New creates an empty Content.
func New() *Content {
	return &Content{buf: buffer.NewSliceBuffer(), goalCol: -1}
}

// WithText creates a Content holding text with the cursor at the start.
func WithText(text string) *Content {
	return &Content{buf: buffer.NewSliceBufferFromText(text), goalCol: -1}
}

// Text returns the full document text.
func (c *Content) Text() string {
	return string(c.buf.Bytes())
}

func (c *Content) Lines() [][]byte {
	return c.buf.Lines()
}

func (c *Content) LineCount() int {
	return c.buf.LineCount()
}

// Cursor returns the cursor position.
func (c *Content) Cursor() types.Position {
	return c.cursor
}

// CursorPosition returns the 0-based line and column of the cursor.
func (c *Content) CursorPosition() (line, col int) {
	return c.cursor.Line, c.cursor.Col
}

// Version increases with every applied edit.
func (c *Content) Version() uint64 {
	return c.version
}

// Selection returns the ordered selection range, if any.
func (c *Content) Selection() (start, end types.Position, ok bool) {
	if c.anchor == nil || *c.anchor == c.cursor {
		return types.Position{}, types.Position{}, false
	}
	start, end = types.Ordered(*c.anchor, c.cursor)
	return start, end, true
}

// SelectedText returns the selected text, or "" when nothing is selected.
func (c *Content) SelectedText() string {
	start, end, ok := c.Selection()
	if !ok {
		return ""
	}
	return string(c.buf.Slice(start, end))
}

// Perform applies an action.
func (c *Content) Perform(a Action) {
	switch a.Kind {
	case ActionMove:
		c.anchor = nil
		c.move(a.Motion, a.Count)
	case ActionSelect:
		if c.anchor == nil {
			anchor := c.cursor
			c.anchor = &anchor
		}
		c.move(a.Motion, a.Count)
	case ActionSelectAll:
		anchor := types.Position{}
		c.anchor = &anchor
		last := c.buf.LineCount() - 1
		c.cursor = types.Position{Line: last, Col: c.buf.LineLen(last)}
		c.goalCol = -1
	case ActionClick:
		c.anchor = nil
		c.cursor = c.buf.Clamp(a.Pos)
		c.goalCol = -1
	case ActionInsert:
		c.replaceSelection(string(a.Rune))
	case ActionNewLine:
		c.replaceSelection("\n")
	case ActionPaste:
		c.replaceSelection(a.Text)
	case ActionBackspace:
		c.deleteBackward()
	case ActionDelete:
		c.deleteForward()
	default:
		logger.Warnf("Content: unknown action kind %d", a.Kind)
	}
}

// replaceSelection deletes any selection and inserts text at the cursor.
func (c *Content) replaceSelection(text string) {
	c.deleteSelection()
	if text == "" {
		return
	}
	end, err := c.buf.Insert(c.cursor, []byte(text))
	if err != nil {
		logger.Warnf("Content: insert failed: %v", err)
		return
	}
	c.cursor = end
	c.goalCol = -1
	c.version++
}

// deleteSelection removes the selected range and reports whether it did.
func (c *Content) deleteSelection() bool {
	start, end, ok := c.Selection()
	c.anchor = nil
	if !ok {
		return false
	}
	c.deleteRange(start, end)
	return true
}

func (c *Content) deleteRange(start, end types.Position) {
	if err := c.buf.Delete(start, end); err != nil {
		logger.Warnf("Content: delete failed: %v", err)
		return
	}
	c.cursor = start
	c.goalCol = -1
	c.version++
}

func (c *Content) deleteBackward() {
	if c.deleteSelection() {
		return
	}
	prev := c.prevBoundary(c.cursor)
	if prev != c.cursor {
		c.deleteRange(prev, c.cursor)
	}
}

func (c *Content) deleteForward() {
	if c.deleteSelection() {
		return
	}
	next := c.nextBoundary(c.cursor)
	if next != c.cursor {
		c.deleteRange(c.cursor, next)
	}
}

func (c *Content) move(m Motion, count int) {
	if count <= 0 {
		count = DefaultPageSize
	}
	switch m {
	case MotionLeft:
		c.cursor = c.prevBoundary(c.cursor)
		c.goalCol = -1
	case MotionRight:
		c.cursor = c.nextBoundary(c.cursor)
		c.goalCol = -1
	case MotionUp:
		c.vertical(-1)
	case MotionDown:
		c.vertical(1)
	case MotionPageUp:
		c.vertical(-count)
	case MotionPageDown:
		c.vertical(count)
	case MotionHome:
		c.cursor.Col = 0
		c.goalCol = -1
	case MotionEnd:
		c.cursor.Col = c.buf.LineLen(c.cursor.Line)
		c.goalCol = -1
	case MotionDocumentStart:
		c.cursor = types.Position{}
		c.goalCol = -1
	case MotionDocumentEnd:
		last := c.buf.LineCount() - 1
		c.cursor = types.Position{Line: last, Col: c.buf.LineLen(last)}
		c.goalCol = -1
	}
}

func (c *Content) vertical(delta int) {
	if c.goalCol < 0 {
		c.goalCol = c.cursor.Col
	}
	line := c.cursor.Line + delta
	if line < 0 {
		line = 0
	}
	if last := c.buf.LineCount() - 1; line > last {
		line = last
	}
	c.cursor = c.buf.Clamp(types.Position{Line: line, Col: c.goalCol})
}

// prevBoundary returns the start of the grapheme cluster before pos, or the
// end of the previous line when pos is at a line start.
func (c *Content) prevBoundary(pos types.Position) types.Position {
	if pos.Col == 0 {
		if pos.Line == 0 {
			return pos
		}
		return types.Position{Line: pos.Line - 1, Col: c.buf.LineLen(pos.Line - 1)}
	}
	prev := 0
	for _, b := range c.clusterBounds(pos.Line) {
		if b >= pos.Col {
			break
		}
		prev = b
	}
	return types.Position{Line: pos.Line, Col: prev}
}

// nextBoundary returns the end of the grapheme cluster after pos, or the
// start of the next line when pos is at a line end.
func (c *Content) nextBoundary(pos types.Position) types.Position {
	if pos.Col >= c.buf.LineLen(pos.Line) {
		if pos.Line >= c.buf.LineCount()-1 {
			return pos
		}
		return types.Position{Line: pos.Line + 1}
	}
	for _, b := range c.clusterBounds(pos.Line) {
		if b > pos.Col {
			return types.Position{Line: pos.Line, Col: b}
		}
	}
	return pos
}

// clusterBounds lists the rune indices at which grapheme clusters start on a
// line, followed by the line's rune count.
func (c *Content) clusterBounds(line int) []int {
	text, err := c.buf.Line(line)
	if err != nil {
		return []int{0}
	}
	bounds := []int{0}
	idx := 0
	gr := uniseg.NewGraphemes(string(text))
	for gr.Next() {
		idx += len(gr.Runes())
		bounds = append(bounds, idx)
	}
	return bounds
}
