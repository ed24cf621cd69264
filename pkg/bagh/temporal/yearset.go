package temporal

import "sort"

// YearSet is a set of Gregorian years with ascending iteration order.
type YearSet struct {
	years map[int]struct{}
}

// NewYearSet returns a set holding the given years.
func NewYearSet(years ...int) YearSet {
	s := YearSet{years: make(map[int]struct{}, len(years))}
	for _, y := range years {
		s.Add(y)
	}
	return s
}

// Add inserts y. It reports whether y was new.
func (s *YearSet) Add(y int) bool {
	if s.years == nil {
		s.years = make(map[int]struct{})
	}
	if _, ok := s.years[y]; ok {
		return false
	}
	s.years[y] = struct{}{}
	return true
}

// Has reports whether y is in the set.
func (s YearSet) Has(y int) bool {
	_, ok := s.years[y]
	return ok
}

// Len returns the number of distinct years.
func (s YearSet) Len() int { return len(s.years) }

// Sorted returns the years in ascending order.
func (s YearSet) Sorted() []int {
	out := make([]int, 0, len(s.years))
	for y := range s.years {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}
