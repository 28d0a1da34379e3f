package textobject

// SelectWord selects the word at or after point. When point sits inside a
// word the whole word is covered; on whitespace the scan advances to the
// next word. Returns ErrNoWord when only non-word runes remain between
// point and the end of the buffer.
func (e *Engine) SelectWord(c Cursor) error {
	n := e.buf.Len()
	i := clamp(c.Point(), 0, n)

	for i < n {
		r, _ := e.at(i)
		if e.cls.IsWord(r) {
			break
		}
		i++
	}
	if i == n {
		return ErrNoWord
	}

	end := i
	for end < n {
		r, _ := e.at(end)
		if !e.cls.IsWord(r) {
			break
		}
		end++
	}
	start := end
	for start > 0 {
		r, _ := e.at(start - 1)
		if !e.cls.IsWord(r) {
			break
		}
		start--
	}

	e.apply(c, Range{Start: start, End: end})
	return nil
}

// SelectWithinSpace selects the run of non-whitespace runes around point,
// bounded by the nearest whitespace in each direction. Scans that run off
// the buffer clamp to its edges.
func (e *Engine) SelectWithinSpace(c Cursor) error {
	n := e.buf.Len()
	p := clamp(c.Point(), 0, n)

	start := p
	for start > 0 {
		r, _ := e.at(start - 1)
		if e.cls.IsSpace(r) {
			break
		}
		start--
	}
	end := p
	for end < n {
		r, _ := e.at(end)
		if e.cls.IsSpace(r) {
			break
		}
		end++
	}

	e.apply(c, Range{Start: start, End: end})
	return nil
}

// SelectLine selects from the first non-whitespace column of the current
// line to its end, excluding the trailing newline.
func (e *Engine) SelectLine(c Cursor) error {
	p := clamp(c.Point(), 0, e.buf.Len())
	le := e.buf.LineEnd(p)

	start := e.buf.LineStart(p)
	for start < le {
		r, _ := e.at(start)
		if r != ' ' && r != '\t' {
			break
		}
		start++
	}

	e.apply(c, Range{Start: start, End: le})
	return nil
}

// SelectLineWithNewline selects the whole current line including its
// trailing newline, so deleting the selection removes the line entirely.
// On the last line the selection ends at the buffer edge.
func (e *Engine) SelectLineWithNewline(c Cursor) error {
	p := clamp(c.Point(), 0, e.buf.Len())
	start := e.buf.LineStart(p)
	end := e.buf.LineEnd(p)
	if end < e.buf.Len() {
		end++ // include the newline
	}

	e.apply(c, Range{Start: start, End: end})
	return nil
}

// SelectSentence selects the sentence around point: backward to the
// previous sentence terminator or paragraph break, forward through the next
// terminator, then trimmed of surrounding whitespace.
func (e *Engine) SelectSentence(c Cursor) error {
	n := e.buf.Len()
	p := clamp(c.Point(), 0, n)

	start := p
	for start > 0 {
		r, _ := e.at(start - 1)
		if e.cls.IsSentenceEnd(r) {
			break
		}
		if r == '\n' {
			if prev, ok := e.at(start - 2); ok && prev == '\n' {
				break
			}
		}
		start--
	}

	end := p
	for end < n {
		r, _ := e.at(end)
		if r == '\n' {
			if next, ok := e.at(end + 1); ok && next == '\n' {
				break
			}
		}
		end++
		if e.cls.IsSentenceEnd(r) {
			break
		}
	}

	e.apply(c, e.trimRange(Range{Start: start, End: end}))
	return nil
}

// SelectParagraph selects the blank-line-delimited paragraph around point,
// trimmed of surrounding whitespace.
func (e *Engine) SelectParagraph(c Cursor) error {
	n := e.buf.Len()
	p := clamp(c.Point(), 0, n)

	start := e.buf.LineStart(p)
	for start > 0 {
		prev := e.buf.LineStart(start - 1)
		if e.blankLine(prev) {
			break
		}
		start = prev
	}

	end := e.buf.LineEnd(p)
	for end < n {
		next := end + 1
		if next >= n {
			end = n
			break
		}
		if e.blankLine(next) {
			break
		}
		end = e.buf.LineEnd(next)
	}

	e.apply(c, e.trimRange(Range{Start: start, End: end}))
	return nil
}

// SelectBuffer selects the entire buffer.
func (e *Engine) SelectBuffer(c Cursor) error {
	e.apply(c, Range{Start: 0, End: e.buf.Len()})
	return nil
}

// blankLine reports whether the line starting at off contains only spaces
// and tabs.
func (e *Engine) blankLine(off int) bool {
	ls := e.buf.LineStart(off)
	le := e.buf.LineEnd(off)
	for i := ls; i < le; i++ {
		r, _ := e.at(i)
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
