package textobject

// SelectArgument selects the call argument around point, bounded by the
// nearest separator or bracket in each direction and trimmed of
// surrounding whitespace. The scan is deliberately not nesting-aware: a
// comma inside a nested call counts as a boundary. Scans that reach the
// buffer edge clamp there.
func (e *Engine) SelectArgument(c Cursor) error {
	n := e.buf.Len()
	p := clamp(c.Point(), 0, n)

	start := p
	for start > 0 {
		r, _ := e.at(start - 1)
		if r == ',' || r == '(' || r == '[' || r == '{' {
			break
		}
		start--
	}
	end := p
	for end < n {
		r, _ := e.at(end)
		if r == ',' || r == ')' || r == ']' || r == '}' {
			break
		}
		end++
	}

	e.apply(c, e.trimRange(Range{Start: start, End: end}))
	return nil
}
