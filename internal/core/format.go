package core

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatOption configures FormatString.
type FormatOption func(*formatConfig) *formatConfig

// FormatString converts input to upper case, or to lower case when WithUpper(false) is given.
// Case mapping is full Unicode mapping, so a single rune may expand (e.g. "ß" becomes "SS").
func FormatString(input string, options ...FormatOption) string {
	config := &formatConfig{upper: true}
	for _, opt := range options {
		config = opt(config)
	}

	if config.upper {
		return cases.Upper(language.Und).String(input)
	}

	return cases.Lower(language.Und).String(input)
}

// WithUpper selects upper case (true) or lower case (false) output.
func WithUpper(upper bool) FormatOption {
	return func(c *formatConfig) *formatConfig {
		c.upper = upper
		return c
	}
}

type formatConfig struct {
	upper bool
}
