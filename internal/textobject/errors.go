package textobject

import "errors"

// Selection failures. Every failure is local and recoverable: the cursor is
// left untouched and no buffer content changes. Boundary overruns during
// linear scans clamp to the buffer edge instead of erroring.
var (
	// ErrNoEnclosingPair is returned when the backward scan reaches the
	// start of the buffer without finding an unmatched opening delimiter,
	// or the forward scan runs off the end without closing it.
	ErrNoEnclosingPair = errors.New("no enclosing delimiter pair")

	// ErrNoStringContext is returned when point is neither inside nor
	// directly on a quoted string.
	ErrNoStringContext = errors.New("not inside or on a quoted string")

	// ErrNoWord is returned when no word rune exists at or after point.
	ErrNoWord = errors.New("no word at or after point")
)
