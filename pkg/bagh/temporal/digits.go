package temporal

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// digitFolder is stateless, so one instance serves every goroutine.
var digitFolder = runes.Map(foldDigit)

// NormalizeDigits rewrites Persian (U+06F0-U+06F9) and Arabic-Indic
// (U+0660-U+0669) digits to ASCII. Every rune maps to exactly one rune, so
// rune offsets in the result address the same characters in the input.
func NormalizeDigits(s string) string {
	if !hasLocalDigit(s) {
		return s
	}
	out, _, err := transform.String(digitFolder, s)
	if err != nil {
		return strings.Map(foldDigit, s)
	}
	return out
}

func foldDigit(r rune) rune {
	switch {
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	}
	return r
}

func hasLocalDigit(s string) bool {
	for _, r := range s {
		if foldDigit(r) != r {
			return true
		}
	}
	return false
}
