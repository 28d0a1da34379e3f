package textobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOuterString_PointOnOpeningQuote(t *testing.T) {
	text := `say "hi" now`
	c, err := runOp(text, 4, (*Engine).SelectOuterString)

	require.NoError(t, err)
	r := selRange(c)
	assert.Equal(t, `"hi"`, text[r.Start:r.End])
}

func TestSelectInnerString_StripsQuotes(t *testing.T) {
	text := `say "hi" now`
	c, err := runOp(text, 4, (*Engine).SelectInnerString)

	require.NoError(t, err)
	assert.Equal(t, Range{Start: 5, End: 7}, selRange(c))
}

func TestSelectInnerString_EmptyStringCollapsesInsideQuote(t *testing.T) {
	text := `x "" y`
	c, err := runOp(text, 2, (*Engine).SelectInnerString)

	require.NoError(t, err)
	assert.Equal(t, 3, c.Point())
	assert.True(t, selRange(c).Empty())
}

func TestSelectOuterString_SingleQuotes(t *testing.T) {
	text := "a 'bc' d"
	c, err := runOp(text, 2, (*Engine).SelectOuterString)

	require.NoError(t, err)
	r := selRange(c)
	assert.Equal(t, "'bc'", text[r.Start:r.End])
}

func TestSelectOuterString_EscapedQuoteDoesNotClose(t *testing.T) {
	text := `"a\"b" x`
	c, err := runOp(text, 0, (*Engine).SelectOuterString)

	require.NoError(t, err)
	r := selRange(c)
	assert.Equal(t, `"a\"b"`, text[r.Start:r.End])
}

func TestSelectOuterString_NoContextFails(t *testing.T) {
	c, err := runOp("plain", 2, (*Engine).SelectOuterString)

	assert.ErrorIs(t, err, ErrNoStringContext)
	assert.False(t, c.SelectionActive())
	assert.Equal(t, 2, c.Point())
}

func TestSelectOuterString_UnterminatedStringFails(t *testing.T) {
	_, err := runOp(`say "oops`, 4, (*Engine).SelectOuterString)

	assert.ErrorIs(t, err, ErrNoStringContext)
}

func TestSelectOuterString_LexicalScannerLocatesStart(t *testing.T) {
	text := `v := "hello there"`
	open := strings.IndexRune(text, '"')
	inside := open + 4 // inside the literal, not on a quote
	buf := &lexBuffer{
		StringBuffer: NewStringBuffer(text),
		ctx: map[int]LexicalContext{
			inside: {InString: true, StringStart: open, Quote: '"'},
		},
	}
	e := New(buf)
	c := NewState(inside)

	require.NoError(t, e.SelectOuterString(c))

	r := selRange(c)
	assert.Equal(t, `"hello there"`, text[r.Start:r.End])
}

func TestSelectOuterString_DegradesWithoutLexicalScanner(t *testing.T) {
	// Inside a string but not on a quote: with no lexer the selector
	// cannot tell and must fail rather than guess.
	text := `v := "hello"`
	_, err := runOp(text, 8, (*Engine).SelectOuterString)

	assert.ErrorIs(t, err, ErrNoStringContext)
}

func TestSelectOuterString_LexicalScannerZeroQuoteFallsBackToBuffer(t *testing.T) {
	text := `'abc'`
	buf := &lexBuffer{
		StringBuffer: NewStringBuffer(text),
		ctx: map[int]LexicalContext{
			2: {InString: true, StringStart: 0},
		},
	}
	e := New(buf)
	c := NewState(2)

	require.NoError(t, e.SelectOuterString(c))

	assert.Equal(t, Range{Start: 0, End: 5}, selRange(c))
}
