package textobject

// Cursor is the live (point, mark) pair owned by the host. Selectors read
// the current point and, on success, write a new point/mark pair through
// this interface. SetMark is expected to activate the selection.
type Cursor interface {
	Point() int
	Mark() int
	SetPoint(off int)
	SetMark(off int)
	SelectionActive() bool
	DeactivateSelection()
}

// State is an in-memory Cursor for standalone use and tests.
type State struct {
	point  int
	mark   int
	active bool
}

// NewState creates a cursor with point at off and no active selection.
func NewState(off int) *State {
	return &State{point: off, mark: off}
}

// Point returns the primary cursor offset.
func (s *State) Point() int { return s.point }

// Mark returns the secondary cursor offset.
func (s *State) Mark() int { return s.mark }

// SetPoint moves the primary cursor offset.
func (s *State) SetPoint(off int) { s.point = off }

// SetMark moves the secondary cursor offset and activates the selection.
func (s *State) SetMark(off int) {
	s.mark = off
	s.active = true
}

// SelectionActive reports whether a selection is active.
func (s *State) SelectionActive() bool { return s.active }

// DeactivateSelection drops the selection without moving point.
func (s *State) DeactivateSelection() { s.active = false }

// Range is a half-open offset range [Start, End).
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range covers no text.
func (r Range) Empty() bool { return r.End <= r.Start }

// Len returns the number of runes covered by the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether off lies inside the range.
func (r Range) Contains(off int) bool { return off >= r.Start && off < r.End }

// Selection returns the active selection of c as an ordered range. ok is
// false when no selection is active.
func Selection(c Cursor) (Range, bool) {
	if !c.SelectionActive() {
		return Range{}, false
	}
	start, end := ordered(c.Point(), c.Mark())
	return Range{Start: start, End: end}, true
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
