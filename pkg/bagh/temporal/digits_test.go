package temporal

import (
	"testing"
	"unicode/utf8"
)

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"۱۳۵۰", "1350"},
		{"٢٠٢٣", "2023"},
		{"سال ۱۳۵۰ ه.ش", "سال 1350 ه.ش"},
		{"mixed ۱2٣", "mixed 123"},
		{"no digits here", "no digits here"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeDigits(tt.in); got != tt.want {
			t.Errorf("NormalizeDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDigitsIdempotent(t *testing.T) {
	inputs := []string{
		"باغ ارم در ۱۲۷۰ ه.ق",
		"٠١٢٣٤٥٦٧٨٩ ۰۱۲۳۴۵۶۷۸۹",
		"The garden dates to 1590.",
		"",
	}
	for _, in := range inputs {
		once := NormalizeDigits(in)
		if twice := NormalizeDigits(once); twice != once {
			t.Errorf("not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNormalizeDigitsKeepsRuneCount(t *testing.T) {
	in := "کاخ چهلستون ۱۰۵۷ ه.ق ساخته شد"
	out := NormalizeDigits(in)
	if utf8.RuneCountInString(in) != utf8.RuneCountInString(out) {
		t.Errorf("rune count changed: %d → %d", utf8.RuneCountInString(in), utf8.RuneCountInString(out))
	}
}
