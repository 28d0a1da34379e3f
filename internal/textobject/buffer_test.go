package textobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringBuffer_At_ReturnsRuneInRange(t *testing.T) {
	b := NewStringBuffer("héllo")

	r, ok := b.At(1)

	assert.True(t, ok)
	assert.Equal(t, 'é', r)
}

func TestStringBuffer_At_OutOfRangeReturnsFalse(t *testing.T) {
	b := NewStringBuffer("abc")

	_, ok := b.At(3)
	assert.False(t, ok)

	_, ok = b.At(-1)
	assert.False(t, ok)
}

func TestStringBuffer_Slice_ClampsBounds(t *testing.T) {
	b := NewStringBuffer("abc")

	assert.Equal(t, "abc", b.Slice(-2, 10))
	assert.Equal(t, "b", b.Slice(1, 2))
	assert.Equal(t, "", b.Slice(2, 1))
}

func TestStringBuffer_LineStart_FirstLine(t *testing.T) {
	b := NewStringBuffer("one\ntwo")

	assert.Equal(t, 0, b.LineStart(2))
}

func TestStringBuffer_LineStart_SecondLine(t *testing.T) {
	b := NewStringBuffer("one\ntwo")

	assert.Equal(t, 4, b.LineStart(5))
}

func TestStringBuffer_LineEnd_StopsAtNewline(t *testing.T) {
	b := NewStringBuffer("one\ntwo")

	assert.Equal(t, 3, b.LineEnd(1))
}

func TestStringBuffer_LineEnd_LastLineEndsAtBufferLength(t *testing.T) {
	b := NewStringBuffer("one\ntwo")

	assert.Equal(t, 7, b.LineEnd(5))
}

func TestStringBuffer_LineBounds_OffsetOnNewline(t *testing.T) {
	b := NewStringBuffer("one\ntwo")

	// The newline belongs to the first line.
	assert.Equal(t, 0, b.LineStart(3))
	assert.Equal(t, 3, b.LineEnd(3))
}

func TestStringBuffer_EmptyBuffer(t *testing.T) {
	b := NewStringBuffer("")

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.LineStart(0))
	assert.Equal(t, 0, b.LineEnd(0))
	assert.Equal(t, "", b.Slice(0, 5))
}
