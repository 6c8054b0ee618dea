package layout

import "unicode"

// Direction represents the dominant direction of a run of text.
type Direction int

const (
	// LTR is left-to-right text
	LTR Direction = iota

	// RTL is right-to-left text
	RTL

	// Neutral is text with no strong direction, such as digits,
	// punctuation, and whitespace
	Neutral
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	default:
		return "neutral"
	}
}

// rtlScripts are the scripts written right to left.
var rtlScripts = []*unicode.RangeTable{
	unicode.Arabic,
	unicode.Hebrew,
	unicode.Syriac,
	unicode.Thaana,
	unicode.Nko,
}

// CharDirection classifies a single rune. Digits, punctuation,
// whitespace, and symbols are neutral regardless of script.
func CharDirection(r rune) Direction {
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
		return Neutral
	}
	for _, script := range rtlScripts {
		if unicode.Is(script, r) {
			return RTL
		}
	}
	if unicode.IsLetter(r) {
		return LTR
	}
	return Neutral
}

// DetectDirection returns the dominant direction of text, decided by
// counting strongly directional characters. Text with no strong
// characters is neutral.
func DetectDirection(text string) Direction {
	ltr, rtl := 0, 0
	for _, r := range text {
		switch CharDirection(r) {
		case LTR:
			ltr++
		case RTL:
			rtl++
		}
	}
	if ltr == 0 && rtl == 0 {
		return Neutral
	}
	if rtl > ltr {
		return RTL
	}
	return LTR
}
