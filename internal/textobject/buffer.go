// Package textobject computes cursor-relative text-object selections.
//
// Every operation reads buffer content and the current point, then
// repositions the cursor so that point marks the first offset of the text
// object and mark one past its last offset. Offsets are rune indices into
// the buffer. Operations never modify buffer content; failure leaves the
// cursor untouched.
package textobject

// Buffer is a read-only view over text. Hosts that already own a buffer
// representation implement this directly; standalone callers use
// StringBuffer.
type Buffer interface {
	// Len returns the number of runes in the buffer.
	Len() int

	// At returns the rune at the given offset. ok is false when the
	// offset is outside [0, Len()).
	At(off int) (r rune, ok bool)

	// Slice returns the text in the half-open range [start, end).
	// Out-of-range bounds are clamped.
	Slice(start, end int) string

	// LineStart returns the offset of the first rune of the line
	// containing off.
	LineStart(off int) int

	// LineEnd returns the offset of the newline terminating the line
	// containing off, or Len() when the line is the last one.
	LineEnd(off int) int
}

// LexicalContext describes string-literal context at an offset, as reported
// by a host that runs its own lexer over the buffer.
type LexicalContext struct {
	InString    bool
	StringStart int  // offset of the opening quote, valid when InString
	Quote       rune // quote character that opened the string
}

// LexicalScanner is an optional Buffer capability. The string selector uses
// it to find the start of the literal enclosing point; without it the
// selector falls back to direct quote-character detection.
type LexicalScanner interface {
	LexicalContext(off int) (LexicalContext, bool)
}

// StringBuffer is the default Buffer implementation backed by a rune slice.
type StringBuffer struct {
	runes []rune
}

// NewStringBuffer creates a buffer over the given text.
func NewStringBuffer(text string) *StringBuffer {
	return &StringBuffer{runes: []rune(text)}
}

// Len returns the number of runes in the buffer.
func (b *StringBuffer) Len() int { return len(b.runes) }

// At returns the rune at off, or ok=false when off is out of range.
func (b *StringBuffer) At(off int) (rune, bool) {
	if off < 0 || off >= len(b.runes) {
		return 0, false
	}
	return b.runes[off], true
}

// Slice returns the text in [start, end), clamping both bounds.
func (b *StringBuffer) Slice(start, end int) string {
	start = clamp(start, 0, len(b.runes))
	end = clamp(end, start, len(b.runes))
	return string(b.runes[start:end])
}

// LineStart returns the offset of the first rune of the line containing off.
func (b *StringBuffer) LineStart(off int) int {
	off = clamp(off, 0, len(b.runes))
	for off > 0 && b.runes[off-1] != '\n' {
		off--
	}
	return off
}

// LineEnd returns the offset of the newline ending the line containing off,
// or the buffer length for the final line.
func (b *StringBuffer) LineEnd(off int) int {
	off = clamp(off, 0, len(b.runes))
	for off < len(b.runes) && b.runes[off] != '\n' {
		off++
	}
	return off
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
