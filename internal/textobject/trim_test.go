package textobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTrimSelection_ShrinksBothEdges(t *testing.T) {
	e := New(NewStringBuffer("a \t core \n b"))
	c := NewState(1)
	c.SetMark(11) // selection " \t core \n "

	require.NoError(t, e.TrimSelection(c))

	assert.Equal(t, Range{Start: 4, End: 8}, selRange(c))
}

func TestTrimSelection_NoSelectionIsNoOp(t *testing.T) {
	e := New(NewStringBuffer("  text  "))
	c := NewState(4)

	require.NoError(t, e.TrimSelection(c))

	assert.Equal(t, 4, c.Point())
	assert.False(t, c.SelectionActive())
}

func TestTrimSelection_WhitespaceOnlySelectionCollapses(t *testing.T) {
	e := New(NewStringBuffer("a    b"))
	c := NewState(1)
	c.SetMark(5)

	require.NoError(t, e.TrimSelection(c))

	assert.True(t, selRange(c).Empty())
}

func TestTrimSelection_AlreadyTrimmedIsNoOp(t *testing.T) {
	e := New(NewStringBuffer("  word  "))
	c := NewState(2)
	c.SetMark(6)

	require.NoError(t, e.TrimSelection(c))

	assert.Equal(t, Range{Start: 2, End: 6}, selRange(c))
}

func TestTrimSelection_Property_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching("[ \t\nab]{0,40}").Draw(t, "text")
		n := len([]rune(text))
		start := rapid.IntRange(0, n).Draw(t, "start")
		end := rapid.IntRange(0, n).Draw(t, "end")

		e := New(NewStringBuffer(text))
		c := NewState(start)
		c.SetMark(end)
		require.NoError(t, e.TrimSelection(c))
		once := selRange(c)

		require.NoError(t, e.TrimSelection(c))
		twice := selRange(c)

		require.Equal(t, once, twice)
	})
}
