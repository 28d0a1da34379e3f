package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/textscope/internal/config"
	"github.com/zjrosen/textscope/internal/textobject"
)

func TestRunSelection_WordAtOffset(t *testing.T) {
	sel, err := runSelection(config.Defaults(), "hello world", 7, "word")

	require.NoError(t, err)
	assert.Equal(t, textobject.Range{Start: 6, End: 11}, sel)
}

func TestRunSelection_InnerParen(t *testing.T) {
	sel, err := runSelection(config.Defaults(), "f(a, b)", 3, "inner-paren")

	require.NoError(t, err)
	assert.Equal(t, textobject.Range{Start: 2, End: 6}, sel)
}

func TestRunSelection_UnknownObjectFails(t *testing.T) {
	_, err := runSelection(config.Defaults(), "text", 0, "outer-space")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown text object")
}

func TestRunSelection_FailedSelectorWrapsTaxonomyError(t *testing.T) {
	_, err := runSelection(config.Defaults(), "no pairs here", 4, "outer-paren")

	require.Error(t, err)
	assert.ErrorIs(t, err, textobject.ErrNoEnclosingPair)
}

func TestRunSelection_ConfigWordCharsExtendWords(t *testing.T) {
	cfg := config.Defaults()
	cfg.WordChars = "-"

	sel, err := runSelection(cfg, "foo-bar baz", 1, "word")

	require.NoError(t, err)
	assert.Equal(t, textobject.Range{Start: 0, End: 7}, sel)
}

func TestHighlightSelection_KeepsSurroundingLineText(t *testing.T) {
	cfg = config.Defaults()
	buf := textobject.NewStringBuffer("before target after")

	out := highlightSelection(buf, textobject.Range{Start: 7, End: 13})

	assert.Contains(t, out, "before ")
	assert.Contains(t, out, " after")
	assert.Contains(t, out, "target")
}
