package textobject

// quoteRunes are the quote characters the string selector recognizes when
// no lexical scanner is available.
var quoteRunes = []rune{'"', '\''}

// SelectOuterString selects the quoted string around point, quotes
// included. When the buffer implements LexicalScanner the literal's start
// comes from the host's lexer; otherwise point must sit directly on a
// quote character, which is taken as the opening quote. Returns
// ErrNoStringContext when point is neither inside nor on a string.
func (e *Engine) SelectOuterString(c Cursor) error {
	r, err := e.stringRange(c.Point())
	if err != nil {
		return err
	}
	e.apply(c, r)
	return nil
}

// SelectInnerString selects the contents of the quoted string around
// point, stripping one quote rune from each end. An empty string yields an
// empty selection just inside the opening quote.
func (e *Engine) SelectInnerString(c Cursor) error {
	r, err := e.stringRange(c.Point())
	if err != nil {
		return err
	}
	e.apply(c, innerRange(r))
	return nil
}

// stringRange computes the outer range of the string literal around point.
func (e *Engine) stringRange(point int) (Range, error) {
	n := e.buf.Len()
	if n == 0 {
		return Range{}, ErrNoStringContext
	}
	point = clamp(point, 0, n-1)

	if scanner, ok := e.buf.(LexicalScanner); ok {
		if ctx, ok := scanner.LexicalContext(point); ok && ctx.InString {
			quote := ctx.Quote
			if quote == 0 {
				if r, ok := e.at(ctx.StringStart); ok {
					quote = r
				}
			}
			return e.closeQuote(ctx.StringStart, quote)
		}
	}

	r, _ := e.at(point)
	for _, q := range quoteRunes {
		if r == q && !e.escaped(point) {
			return e.closeQuote(point, q)
		}
	}
	return Range{}, ErrNoStringContext
}

// closeQuote scans forward from the opening quote at open for the first
// unescaped matching quote.
func (e *Engine) closeQuote(open int, quote rune) (Range, error) {
	for i := open + 1; i < e.buf.Len(); i++ {
		r, _ := e.at(i)
		if r == quote && !e.escaped(i) {
			return Range{Start: open, End: i + 1}, nil
		}
	}
	return Range{}, ErrNoStringContext
}

// escaped reports whether the rune at off is preceded by an odd number of
// backslashes.
func (e *Engine) escaped(off int) bool {
	count := 0
	for i := off - 1; i >= 0; i-- {
		r, _ := e.at(i)
		if r != '\\' {
			break
		}
		count++
	}
	return count%2 == 1
}
