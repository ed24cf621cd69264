package temporal

import (
	"strconv"

	"github.com/cognicore/bagh/pkg/bagh/calendar"
)

// Candidate is one interpretation of a date mention in a document.
type Candidate struct {
	Token   string          `json:"token"`  // digits as matched, or the century phrase
	Window  string          `json:"window"` // lowercased context, empty for centuries
	Offset  int             `json:"offset"` // rune offset of the token, -1 for centuries
	System  calendar.System `json:"system"`
	Rule    string          `json:"rule"`
	Century bool            `json:"century"`
	Year    int             `json:"year"` // Gregorian
	Valid   bool            `json:"valid"`
}

// Result holds everything extracted from one document.
type Result struct {
	Candidates []Candidate
	Years      YearSet
}

// Extractor turns raw text into a set of plausible Gregorian years.
type Extractor struct {
	rules     RuleTable
	converter calendar.Converter
	window    int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRules replaces the disambiguation rule table.
func WithRules(rules RuleTable) Option {
	return func(e *Extractor) { e.rules = rules }
}

// WithConverter replaces the calendar converter.
func WithConverter(c calendar.Converter) Option {
	return func(e *Extractor) { e.converter = c }
}

// WithWindow sets the number of context runes read on each side of a token.
func WithWindow(n int) Option {
	return func(e *Extractor) {
		if n >= 0 {
			e.window = n
		}
	}
}

// NewExtractor creates an extractor with the default rules, the approximate
// converter and a 30-rune window.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		rules:     DefaultRules,
		converter: calendar.Approximate{},
		window:    DefaultWindow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Window returns the context size in runes on each side of a token.
func (e *Extractor) Window() int { return e.window }

// Extract scans content for year tokens and century phrases. It never fails:
// text without dates yields an empty result.
func (e *Extractor) Extract(content string) Result {
	res := Result{Years: NewYearSet()}
	if content == "" {
		return res
	}

	normalized := NormalizeDigits(content)
	original := []rune(content)

	for _, m := range ScanYears(normalized) {
		raw, err := strconv.Atoi(m.Token)
		if err != nil {
			continue
		}
		w := contextWindow(original, m.Offset, m.Token, e.window)
		sys, rule := e.rules.Disambiguate(w)
		res.add(Candidate{
			Token:  m.Token,
			Window: w.Full,
			Offset: m.Offset,
			System: sys,
			Rule:   rule,
			Year:   e.converter.ToGregorian(sys, raw),
		})
	}

	for _, c := range ScanCenturies(normalized) {
		res.add(Candidate{
			Token:   c.Phrase,
			Offset:  -1,
			System:  c.System,
			Rule:    "century",
			Century: true,
			Year:    e.converter.ToGregorian(c.System, c.Midpoint()),
		})
	}

	return res
}

func (r *Result) add(c Candidate) {
	c.Valid = InRange(c.Year)
	if c.Valid {
		r.Years.Add(c.Year)
	}
	r.Candidates = append(r.Candidates, c)
}
