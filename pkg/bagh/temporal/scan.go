package temporal

import (
	"regexp"
	"unicode/utf8"
)

// Plausible historical window, both bounds exclusive.
const (
	MinYear = 500
	MaxYear = 2100
)

// InRange reports whether y falls inside the plausible historical window.
func InRange(y int) bool {
	return y > MinYear && y < MaxYear
}

// Word boundaries are ASCII-only, so "1350ه" still yields "1350" while
// "abc1350" and "13500" yield nothing.
var yearPattern = regexp.MustCompile(`\b(\d{3,4})\b`)

// Mention is a bare 3-4 digit run found in digit-normalized text.
type Mention struct {
	Offset int // rune offset into the text
	Token  string
}

// ScanYears finds every year-like token in normalized text, in order.
func ScanYears(normalized string) []Mention {
	locs := yearPattern.FindAllStringSubmatchIndex(normalized, -1)
	if len(locs) == 0 {
		return nil
	}

	mentions := make([]Mention, 0, len(locs))
	byteOff, runeOff := 0, 0
	for _, loc := range locs {
		start, end := loc[2], loc[3]
		runeOff += utf8.RuneCountInString(normalized[byteOff:start])
		byteOff = start
		mentions = append(mentions, Mention{
			Offset: runeOff,
			Token:  normalized[start:end],
		})
	}
	return mentions
}
