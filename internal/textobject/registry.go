package textobject

import "sort"

// Op applies a named selection operation to a cursor.
type Op func(e *Engine, c Cursor) error

// registry maps operation names to selectors, the way a host key-binding
// table would address them.
var registry = map[string]Op{
	"word":      (*Engine).SelectWord,
	"space":     (*Engine).SelectWithinSpace,
	"line":      (*Engine).SelectLine,
	"line-nl":   (*Engine).SelectLineWithNewline,
	"sentence":  (*Engine).SelectSentence,
	"paragraph": (*Engine).SelectParagraph,
	"buffer":    (*Engine).SelectBuffer,
	"indent":    (*Engine).SelectIndentBlock,
	"argument":  (*Engine).SelectArgument,
	"function":  (*Engine).SelectFunction,

	"outer-paren":   pairOp(Paren, false),
	"inner-paren":   pairOp(Paren, true),
	"outer-bracket": pairOp(Bracket, false),
	"inner-bracket": pairOp(Bracket, true),
	"outer-brace":   pairOp(Brace, false),
	"inner-brace":   pairOp(Brace, true),
	"outer-angle":   pairOp(Angle, false),
	"inner-angle":   pairOp(Angle, true),

	"outer-any":    (*Engine).SelectOuterAnyBracket,
	"inner-any":    (*Engine).SelectInnerAnyBracket,
	"outer-string": (*Engine).SelectOuterString,
	"inner-string": (*Engine).SelectInnerString,
}

func pairOp(p Pair, inner bool) Op {
	return func(e *Engine, c Cursor) error {
		if inner {
			return e.SelectInnerPair(c, p)
		}
		return e.SelectOuterPair(c, p)
	}
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Op, bool) {
	op, ok := registry[name]
	return op, ok
}

// Operations returns all registered operation names, sorted.
func Operations() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
