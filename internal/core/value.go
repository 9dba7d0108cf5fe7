package core

import "unicode/utf16"

// Value is either Text or Number. The set is closed: only this package can add variants.
type Value interface {
	isValue()
}

// Number is the numeric variant of Value.
type Number float64

// Text is the string variant of Value.
type Text string

// ProcessValue returns the length of a Text in UTF-16 code units, or double a Number.
func ProcessValue(value Value) float64 {
	switch v := value.(type) {
	case Text:
		return float64(utf16Len(string(v)))
	case Number:
		return float64(v) * 2
	default:
		Unreachable(value)
		return 0
	}
}

func (Number) isValue() {}

func (Text) isValue() {}

// utf16Len counts the UTF-16 code units needed to encode s.
// Invalid UTF-8 bytes decode to U+FFFD, which takes one unit.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}

	return n
}
