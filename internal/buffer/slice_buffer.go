// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/multitab/internal/types"
	"github.com/bethropolis/multitab/internal/utils"
)

// SliceBuffer stores text as a slice of lines without their trailing newline.
// It always holds at least one (possibly empty) line.
type SliceBuffer struct {
	lines [][]byte
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines: [][]byte{{}},
	}
}

// NewSliceBufferFromText creates a SliceBuffer holding text.
// Lines are split on '\n' only; callers normalise line endings first.
func NewSliceBufferFromText(text string) *SliceBuffer {
	parts := bytes.Split([]byte(text), []byte("\n"))
	lines := make([][]byte, len(parts))
	for i, part := range parts {
		line := make([]byte, len(part))
		copy(line, part)
		lines[i] = line
	}
	return &SliceBuffer{lines: lines}
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// LineLen returns the rune count of a line, or 0 for an invalid index.
func (sb *SliceBuffer) LineLen(index int) int {
	if index < 0 || index >= len(sb.lines) {
		return 0
	}
	return utf8.RuneCount(sb.lines[index])
}

// Bytes joins all lines with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	var buf bytes.Buffer
	for i, line := range sb.lines {
		buf.Write(line)
		if i < len(sb.lines)-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// Clamp moves pos onto the nearest valid position.
func (sb *SliceBuffer) Clamp(pos types.Position) types.Position {
	if pos.Line < 0 {
		return types.Position{}
	}
	if pos.Line >= len(sb.lines) {
		last := len(sb.lines) - 1
		return types.Position{Line: last, Col: sb.LineLen(last)}
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := sb.LineLen(pos.Line); pos.Col > n {
		pos.Col = n
	}
	return pos
}

// offset returns the byte offset of a clamped position on its line.
func (sb *SliceBuffer) offset(pos types.Position) int {
	return utils.RuneIndexToByteOffset(sb.lines[pos.Line], pos.Col)
}

// Insert inserts text at pos. Handles single and multiple lines.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.Position, error) {
	pos = sb.Clamp(pos)
	if len(text) == 0 {
		return pos, nil
	}

	current := sb.lines[pos.Line]
	at := sb.offset(pos)
	if at < 0 {
		return pos, fmt.Errorf("invalid insert position %d:%d", pos.Line, pos.Col)
	}

	head := append([]byte{}, current[:at]...)
	tail := append([]byte{}, current[at:]...)
	parts := bytes.Split(text, []byte("\n"))

	if len(parts) == 1 {
		sb.lines[pos.Line] = append(append(head, parts[0]...), tail...)
		return types.Position{Line: pos.Line, Col: pos.Col + utf8.RuneCount(parts[0])}, nil
	}

	newLines := make([][]byte, 0, len(parts))
	newLines = append(newLines, append(head, parts[0]...))
	for _, part := range parts[1 : len(parts)-1] {
		newLines = append(newLines, append([]byte{}, part...))
	}
	last := parts[len(parts)-1]
	newLines = append(newLines, append(append([]byte{}, last...), tail...))

	rest := append([][]byte{}, sb.lines[pos.Line+1:]...)
	sb.lines = append(append(sb.lines[:pos.Line], newLines...), rest...)

	return types.Position{Line: pos.Line + len(parts) - 1, Col: utf8.RuneCount(last)}, nil
}

// Delete removes text within [start, end). The range may be given in either order.
func (sb *SliceBuffer) Delete(start, end types.Position) error {
	start, end = types.Ordered(sb.Clamp(start), sb.Clamp(end))
	if start == end {
		return nil
	}

	startOff := sb.offset(start)
	endOff := sb.offset(end)
	if startOff < 0 || endOff < 0 {
		return fmt.Errorf("invalid delete range %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}

	merged := append(append([]byte{}, sb.lines[start.Line][:startOff]...), sb.lines[end.Line][endOff:]...)
	rest := append([][]byte{}, sb.lines[end.Line+1:]...)
	sb.lines = append(append(sb.lines[:start.Line], merged), rest...)
	return nil
}

// Slice returns a copy of the text within [start, end).
func (sb *SliceBuffer) Slice(start, end types.Position) []byte {
	start, end = types.Ordered(sb.Clamp(start), sb.Clamp(end))
	if start == end {
		return nil
	}
	if start.Line == end.Line {
		line := sb.lines[start.Line]
		return append([]byte{}, line[sb.offset(start):sb.offset(end)]...)
	}

	var out bytes.Buffer
	out.Write(sb.lines[start.Line][sb.offset(start):])
	for i := start.Line + 1; i < end.Line; i++ {
		out.WriteByte('\n')
		out.Write(sb.lines[i])
	}
	out.WriteByte('\n')
	out.Write(sb.lines[end.Line][:sb.offset(end)])
	return out.Bytes()
}

// Ensure SliceBuffer satisfies the Buffer interface.
var _ Buffer = (*SliceBuffer)(nil)
