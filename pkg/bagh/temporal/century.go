package temporal

import (
	"regexp"
	"strconv"

	"github.com/cognicore/bagh/pkg/bagh/calendar"
)

// space mirrors the JavaScript \s class so non-breaking and typographic
// spaces between a number and "century" are accepted.
const space = `[\s\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]*`

var (
	englishCentury = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?` + space + `century\b`)
	persianCentury = regexp.MustCompile(`(?:قرن|سده)` + space + `(\d{1,2})\b`)
)

// CenturyMention is a century phrase found in normalized text.
type CenturyMention struct {
	Phrase  string
	Century int
	System  calendar.System
}

// Midpoint returns the representative year of the century in its own calendar.
func (m CenturyMention) Midpoint() int {
	return CenturyMidpoint(m.Century)
}

// CenturyMidpoint maps century n to year (n-1)*100 + 50.
func CenturyMidpoint(century int) int {
	return (century-1)*100 + 50
}

// ScanCenturies finds English ordinal centuries (Gregorian) followed by
// Persian قرن/سده phrases, which are read as Shamsi.
func ScanCenturies(normalized string) []CenturyMention {
	var out []CenturyMention
	out = appendCenturies(out, englishCentury, normalized, calendar.Gregorian)
	out = appendCenturies(out, persianCentury, normalized, calendar.Shamsi)
	return out
}

func appendCenturies(out []CenturyMention, re *regexp.Regexp, text string, sys calendar.System) []CenturyMention {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, CenturyMention{Phrase: m[0], Century: n, System: sys})
	}
	return out
}
