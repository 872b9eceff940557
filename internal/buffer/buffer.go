// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/multitab/internal/types"

// Buffer defines the line storage behind a document's text content.
// File I/O lives outside the buffer; it only ever sees normalised text.
type Buffer interface {
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	LineLen(index int) int
	// Insert returns the position just past the inserted text.
	Insert(pos types.Position, text []byte) (types.Position, error)
	Delete(start, end types.Position) error
	Slice(start, end types.Position) []byte
	Bytes() []byte
	Clamp(pos types.Position) types.Position
}
