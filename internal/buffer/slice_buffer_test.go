package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/multitab/internal/types"
)

func pos(line, col int) types.Position {
	return types.Position{Line: line, Col: col}
}

func TestNewSliceBufferIsSingleEmptyLine(t *testing.T) {
	sb := NewSliceBuffer()

	assert.Equal(t, 1, sb.LineCount())
	assert.Empty(t, sb.Bytes())
}

func TestNewSliceBufferFromText(t *testing.T) {
	sb := NewSliceBufferFromText("one\ntwo\n")

	assert.Equal(t, 3, sb.LineCount())
	line, err := sb.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "two", string(line))
	assert.Equal(t, "one\ntwo\n", string(sb.Bytes()))

	_, err = sb.Line(3)
	assert.Error(t, err)
}

func TestInsertSingleLine(t *testing.T) {
	sb := NewSliceBufferFromText("hllo")

	end, err := sb.Insert(pos(0, 1), []byte("e"))
	require.NoError(t, err)

	assert.Equal(t, "hello", string(sb.Bytes()))
	assert.Equal(t, pos(0, 2), end)
}

func TestInsertMultiLine(t *testing.T) {
	sb := NewSliceBufferFromText("ab\ncd")

	end, err := sb.Insert(pos(0, 1), []byte("X\nYY\nZ"))
	require.NoError(t, err)

	assert.Equal(t, "aX\nYY\nZb\ncd", string(sb.Bytes()))
	assert.Equal(t, pos(2, 1), end)
	assert.Equal(t, 4, sb.LineCount())
}

func TestInsertClampsPosition(t *testing.T) {
	sb := NewSliceBufferFromText("ab")

	end, err := sb.Insert(pos(5, 9), []byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "ab!", string(sb.Bytes()))
	assert.Equal(t, pos(0, 3), end)
}

func TestInsertUnicode(t *testing.T) {
	sb := NewSliceBufferFromText("añb")

	_, err := sb.Insert(pos(0, 2), []byte("ü"))
	require.NoError(t, err)

	assert.Equal(t, "añüb", string(sb.Bytes()))
	assert.Equal(t, 4, sb.LineLen(0))
}

func TestDeleteWithinLine(t *testing.T) {
	sb := NewSliceBufferFromText("hello world")

	require.NoError(t, sb.Delete(pos(0, 5), pos(0, 11)))

	assert.Equal(t, "hello", string(sb.Bytes()))
}

func TestDeleteAcrossLines(t *testing.T) {
	sb := NewSliceBufferFromText("one\ntwo\nthree")

	require.NoError(t, sb.Delete(pos(2, 2), pos(0, 1)))

	assert.Equal(t, "oree", string(sb.Bytes()))
	assert.Equal(t, 1, sb.LineCount())
}

func TestDeleteJoinsLines(t *testing.T) {
	sb := NewSliceBufferFromText("ab\ncd")

	require.NoError(t, sb.Delete(pos(0, 2), pos(1, 0)))

	assert.Equal(t, "abcd", string(sb.Bytes()))
}

func TestDeleteEmptyRangeIsNoop(t *testing.T) {
	sb := NewSliceBufferFromText("abc")

	require.NoError(t, sb.Delete(pos(0, 1), pos(0, 1)))

	assert.Equal(t, "abc", string(sb.Bytes()))
}

func TestSlice(t *testing.T) {
	sb := NewSliceBufferFromText("one\ntwo\nthree")

	assert.Equal(t, "ne\ntwo\nth", string(sb.Slice(pos(0, 1), pos(2, 2))))
	assert.Equal(t, "wo", string(sb.Slice(pos(1, 3), pos(1, 1))))
	assert.Nil(t, sb.Slice(pos(1, 1), pos(1, 1)))
}

func TestClamp(t *testing.T) {
	sb := NewSliceBufferFromText("abc\nde")

	assert.Equal(t, pos(0, 0), sb.Clamp(pos(-1, 4)))
	assert.Equal(t, pos(0, 3), sb.Clamp(pos(0, 10)))
	assert.Equal(t, pos(1, 2), sb.Clamp(pos(7, 0)))
	assert.Equal(t, pos(1, 0), sb.Clamp(pos(1, -3)))
}
