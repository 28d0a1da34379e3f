// Package config provides configuration types and defaults for textscope.
package config

// Config holds all configuration options for textscope.
type Config struct {
	// TabWidth is the number of columns a tab occupies in the inspector.
	TabWidth int `mapstructure:"tab_width"`

	// WordChars are extra runes treated as word constituents by the word
	// selector, e.g. "-" for lisp-style identifiers.
	WordChars string `mapstructure:"word_chars"`

	// SentenceTerminators overrides the runes that end a sentence.
	SentenceTerminators string `mapstructure:"sentence_terminators"`

	// AutoReload re-reads the inspected file when it changes on disk.
	AutoReload bool `mapstructure:"auto_reload"`

	Theme ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig holds the inspector's color tokens.
type ThemeConfig struct {
	// Selection is the background color of the selected range.
	Selection string `mapstructure:"selection"`

	// Subtle is the color for chrome: status bar, line numbers.
	Subtle string `mapstructure:"subtle"`

	// Error is the color for failed-selection feedback.
	Error string `mapstructure:"error"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		TabWidth:            4,
		WordChars:           "",
		SentenceTerminators: ".!?",
		AutoReload:          true,
		Theme: ThemeConfig{
			Selection: "#3B4261",
			Subtle:    "#565F89",
			Error:     "#F7768E",
		},
	}
}
