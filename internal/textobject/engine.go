package textobject

// Engine evaluates text-object selections against a single buffer. It holds
// no per-operation state; every selector is a pure function of buffer
// content and the cursor's point, so one engine can serve any number of
// sequential operations.
type Engine struct {
	buf Buffer
	cls Classifier
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier replaces the default character classifier.
func WithClassifier(cls Classifier) Option {
	return func(e *Engine) { e.cls = cls }
}

// New creates an engine over buf. Without options the engine uses
// DefaultClassifier's zero value.
func New(buf Buffer, opts ...Option) *Engine {
	e := &Engine{buf: buf, cls: DefaultClassifier{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Buffer returns the buffer the engine reads from.
func (e *Engine) Buffer() Buffer { return e.buf }

// at is a bounds-tolerant rune lookup.
func (e *Engine) at(off int) (rune, bool) { return e.buf.At(off) }

// apply commits a computed range to the cursor following the package
// convention: point at the start of the object, mark one past its end.
func (e *Engine) apply(c Cursor, r Range) {
	c.SetPoint(r.Start)
	c.SetMark(r.End)
}
