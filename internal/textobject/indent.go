package textobject

import "strings"

// SelectIndentBlock selects the contiguous run of lines whose leading
// whitespace starts with the current line's indentation prefix, matched
// literally rune-for-rune rather than by visual depth. A mixed tab/space
// line of the same visual width therefore does not continue the block.
// When the current line has no indentation the whole buffer is selected:
// top-level text has no natural indentation boundary.
func (e *Engine) SelectIndentBlock(c Cursor) error {
	n := e.buf.Len()
	p := clamp(c.Point(), 0, n)

	ls := e.buf.LineStart(p)
	le := e.buf.LineEnd(p)
	i := ls
	for i < le {
		r, _ := e.at(i)
		if r != ' ' && r != '\t' {
			break
		}
		i++
	}
	prefix := e.buf.Slice(ls, i)
	if prefix == "" {
		return e.SelectBuffer(c)
	}

	start := ls
	for start > 0 {
		prev := e.buf.LineStart(start - 1)
		if !e.lineHasPrefix(prev, prefix) {
			break
		}
		start = prev
	}

	end := le
	for end < n {
		next := end + 1
		if next > n {
			break
		}
		if next == n || !e.lineHasPrefix(next, prefix) {
			break
		}
		end = e.buf.LineEnd(next)
	}

	e.apply(c, Range{Start: start, End: end})
	return nil
}

// lineHasPrefix reports whether the line containing off begins with the
// literal prefix. A whitespace-only line shorter than the prefix cannot
// match and terminates the block.
func (e *Engine) lineHasPrefix(off int, prefix string) bool {
	ls := e.buf.LineStart(off)
	le := e.buf.LineEnd(off)
	line := e.buf.Slice(ls, le)
	return strings.HasPrefix(line, prefix)
}
