package textobject

// Test helpers shared by the selector tests.

// runOp executes op against a fresh cursor placed at off and returns the
// cursor so tests can inspect the resulting point/mark pair.
func runOp(text string, off int, op func(*Engine, Cursor) error) (*State, error) {
	e := New(NewStringBuffer(text))
	c := NewState(off)
	err := op(e, c)
	return c, err
}

// selRange is a shorthand for the ordered selection of a cursor.
func selRange(c *State) Range {
	r, _ := Selection(c)
	return r
}

// lexBuffer is a StringBuffer that also reports canned lexical context,
// standing in for a host editor's lexer.
type lexBuffer struct {
	*StringBuffer
	ctx map[int]LexicalContext
}

func (b *lexBuffer) LexicalContext(off int) (LexicalContext, bool) {
	c, ok := b.ctx[off]
	return c, ok
}
