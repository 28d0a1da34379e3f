package textobject

// Pair is an opening/closing delimiter pair. Nesting depth is never stored;
// it is recomputed by each scan.
type Pair struct {
	Open  rune
	Close rune
}

// Predefined delimiter pairs.
var (
	Paren   = Pair{Open: '(', Close: ')'}
	Bracket = Pair{Open: '[', Close: ']'}
	Brace   = Pair{Open: '{', Close: '}'}
	Angle   = Pair{Open: '<', Close: '>'}
)

// anyBrackets are the pairs tried by the any-bracket selectors.
var anyBrackets = []Pair{Paren, Bracket, Brace}

// findEnclosingPair locates the innermost pair enclosing point. The
// backward scan keeps a nesting counter: every Close passed enters a fully
// nested sibling pair that must be balanced by its Open before an
// unmatched Open can count as the enclosing delimiter. The scan is bounded
// by the buffer start and fails with ErrNoEnclosingPair instead of running
// past it. The returned range covers the delimiters: [open, close+1).
func findEnclosingPair(buf Buffer, point int, p Pair) (Range, error) {
	n := buf.Len()
	if n == 0 {
		return Range{}, ErrNoEnclosingPair
	}
	point = clamp(point, 0, n-1)

	open := -1
	if r, ok := buf.At(point); ok && r == p.Open {
		open = point
	} else {
		depth := 0
		for i := point - 1; i >= 0; i-- {
			r, _ := buf.At(i)
			switch r {
			case p.Close:
				depth++
			case p.Open:
				if depth == 0 {
					open = i
				}
				depth--
			}
			if open >= 0 {
				break
			}
		}
		if open < 0 {
			return Range{}, ErrNoEnclosingPair
		}
	}

	depth := 0
	for i := open; i < n; i++ {
		r, _ := buf.At(i)
		switch r {
		case p.Open:
			depth++
		case p.Close:
			depth--
			if depth == 0 {
				return Range{Start: open, End: i + 1}, nil
			}
		}
	}
	return Range{}, ErrNoEnclosingPair
}

// innerRange strips exactly one delimiter rune from each end of an outer
// pair range. An empty interior collapses to the empty range just inside
// the opening delimiter.
func innerRange(outer Range) Range {
	start := outer.Start + 1
	end := outer.End - 1
	if end < start {
		end = start
	}
	return Range{Start: start, End: end}
}

// SelectOuterPair selects the innermost enclosing pair around point,
// delimiters included.
func (e *Engine) SelectOuterPair(c Cursor, p Pair) error {
	r, err := findEnclosingPair(e.buf, c.Point(), p)
	if err != nil {
		return err
	}
	e.apply(c, r)
	return nil
}

// SelectInnerPair selects the interior of the innermost enclosing pair
// around point, stripping one delimiter rune from each end. Adjacent
// delimiters yield an empty selection just inside the opening one.
func (e *Engine) SelectInnerPair(c Cursor, p Pair) error {
	r, err := findEnclosingPair(e.buf, c.Point(), p)
	if err != nil {
		return err
	}
	e.apply(c, innerRange(r))
	return nil
}

// SelectOuterAnyBracket selects the smallest enclosing pair among (), [],
// and {}, delimiters included.
func (e *Engine) SelectOuterAnyBracket(c Cursor) error {
	r, err := e.anyBracketRange(c.Point())
	if err != nil {
		return err
	}
	e.apply(c, r)
	return nil
}

// SelectInnerAnyBracket selects the interior of the smallest enclosing
// pair among (), [], and {}.
func (e *Engine) SelectInnerAnyBracket(c Cursor) error {
	r, err := e.anyBracketRange(c.Point())
	if err != nil {
		return err
	}
	e.apply(c, innerRange(r))
	return nil
}

// anyBracketRange tries every bracket type and keeps the smallest match.
func (e *Engine) anyBracketRange(point int) (Range, error) {
	var best Range
	found := false
	for _, p := range anyBrackets {
		r, err := findEnclosingPair(e.buf, point, p)
		if err != nil {
			continue
		}
		if !found || r.Len() < best.Len() {
			best = r
			found = true
		}
	}
	if !found {
		return Range{}, ErrNoEnclosingPair
	}
	return best, nil
}

// SelectFunction selects the enclosing brace block extended back to the
// start of the line holding the opening brace, covering a function body
// together with its signature line.
func (e *Engine) SelectFunction(c Cursor) error {
	r, err := findEnclosingPair(e.buf, c.Point(), Brace)
	if err != nil {
		return err
	}
	r.Start = e.buf.LineStart(r.Start)
	e.apply(c, r)
	return nil
}
