package textobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectIndentBlock_ExactPrefixScanStopsAtShorterLine(t *testing.T) {
	// Block around "  y" extends up through "  x" and stops before " z",
	// even though "  w" below would also match: the scan halts at the
	// first non-matching line in each direction.
	text := "  x\n  y\n z\n  w"
	c, err := runOp(text, 6, (*Engine).SelectIndentBlock) // on 'y'

	require.NoError(t, err)
	r := selRange(c)
	assert.Equal(t, "  x\n  y", text[r.Start:r.End])
}

func TestSelectIndentBlock_ForwardExtension(t *testing.T) {
	text := "top\n  a\n  b\n  c\ntop2"
	c, err := runOp(text, 6, (*Engine).SelectIndentBlock) // on 'a'

	require.NoError(t, err)
	r := selRange(c)
	assert.Equal(t, "  a\n  b\n  c", text[r.Start:r.End])
}

func TestSelectIndentBlock_DeeperLinesStillMatchPrefix(t *testing.T) {
	// A more deeply indented line still begins with the block's prefix.
	text := "top\n  a\n    a2\n  b\ntop2"
	c, err := runOp(text, 6, (*Engine).SelectIndentBlock)

	require.NoError(t, err)
	r := selRange(c)
	assert.Equal(t, "  a\n    a2\n  b", text[r.Start:r.End])
}

func TestSelectIndentBlock_TabIndentDoesNotMatchSpaceIndent(t *testing.T) {
	// Literal-prefix semantics: a tab-indented line of the same visual
	// depth does not continue a space-indented block.
	text := "  a\n\tb\n  c"
	c, err := runOp(text, 2, (*Engine).SelectIndentBlock) // on 'a'

	require.NoError(t, err)
	r := selRange(c)
	assert.Equal(t, "  a", text[r.Start:r.End])
}

func TestSelectIndentBlock_NoIndentSelectsWholeBuffer(t *testing.T) {
	text := "top level\n  nested\nmore"
	c, err := runOp(text, 0, (*Engine).SelectIndentBlock)

	require.NoError(t, err)
	assert.Equal(t, Range{Start: 0, End: len(text)}, selRange(c))
}

func TestSelectIndentBlock_WhitespaceOnlyShorterLineTerminates(t *testing.T) {
	// The blank-ish line holds a single space, shorter than the two-space
	// prefix, so it cannot start with it and ends the block.
	text := "  a\n \n  b"
	c, err := runOp(text, 2, (*Engine).SelectIndentBlock)

	require.NoError(t, err)
	r := selRange(c)
	assert.Equal(t, "  a", text[r.Start:r.End])
}

func TestSelectIndentBlock_BlankCurrentLineSelectsWholeBuffer(t *testing.T) {
	text := "a\n\nb"
	c, err := runOp(text, 2, (*Engine).SelectIndentBlock) // on the blank line

	require.NoError(t, err)
	assert.Equal(t, Range{Start: 0, End: len(text)}, selRange(c))
}
