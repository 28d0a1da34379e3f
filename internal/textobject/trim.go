package textobject

// TrimSelection shrinks the active selection's edges inward past leading
// and trailing whitespace. A no-op when no selection is active; a
// whitespace-only selection collapses to an empty range.
func (e *Engine) TrimSelection(c Cursor) error {
	sel, ok := Selection(c)
	if !ok {
		return nil
	}
	e.apply(c, e.trimRange(sel))
	return nil
}

// trimRange returns r with spaces, tabs, and newlines stripped from both
// ends. Idempotent: trimming a trimmed range returns it unchanged.
func (e *Engine) trimRange(r Range) Range {
	start, end := ordered(r.Start, r.End)
	for start < end {
		ch, _ := e.at(start)
		if !trimRune(ch) {
			break
		}
		start++
	}
	for end > start {
		ch, _ := e.at(end - 1)
		if !trimRune(ch) {
			break
		}
		end--
	}
	return Range{Start: start, End: end}
}

func trimRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
