package textobject

import (
	"strings"
	"unicode"
)

// Classifier supplies the character-class predicates the linear selectors
// scan with. Hosts with their own tokenizer inject an implementation;
// DefaultClassifier covers standalone use.
type Classifier interface {
	// IsWord reports whether r is a word constituent.
	IsWord(r rune) bool

	// IsSpace reports whether r is whitespace (including newlines).
	IsSpace(r rune) bool

	// IsSentenceEnd reports whether r terminates a sentence.
	IsSentenceEnd(r rune) bool
}

// DefaultClassifier classifies runes with plain unicode character classes.
// The zero value treats letters, digits, and underscore as word runes and
// ".!?" as sentence terminators.
type DefaultClassifier struct {
	// WordRunes are extra runes treated as word constituents, e.g. "-"
	// for lisp-style identifiers.
	WordRunes string

	// SentenceTerminators overrides the default ".!?" set when non-empty.
	SentenceTerminators string
}

// IsWord reports whether r is a letter, digit, underscore, or one of the
// configured extra word runes.
func (c DefaultClassifier) IsWord(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		return true
	}
	return strings.ContainsRune(c.WordRunes, r)
}

// IsSpace reports whether r is unicode whitespace.
func (c DefaultClassifier) IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsSentenceEnd reports whether r is a sentence terminator.
func (c DefaultClassifier) IsSentenceEnd(r rune) bool {
	terms := c.SentenceTerminators
	if terms == "" {
		terms = ".!?"
	}
	return strings.ContainsRune(terms, r)
}
