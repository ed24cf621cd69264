package series

import "sort"

// Counts is the year → topic → count aggregate. Every row carries every
// known label, so a topic that never fired for a year reads as 0.
type Counts struct {
	labels []string
	known  map[string]struct{}
	rows   map[int]map[string]int
}

// NewCounts creates an empty aggregate over the given topic labels.
func NewCounts(labels []string) *Counts {
	c := &Counts{
		known: make(map[string]struct{}, len(labels)),
		rows:  make(map[int]map[string]int),
	}
	for _, l := range labels {
		c.addLabel(l)
	}
	return c
}

func (c *Counts) addLabel(label string) {
	if _, ok := c.known[label]; ok {
		return
	}
	c.known[label] = struct{}{}
	c.labels = append(c.labels, label)
	for _, row := range c.rows {
		row[label] = 0
	}
}

func (c *Counts) row(year int) map[string]int {
	r, ok := c.rows[year]
	if !ok {
		r = make(map[string]int, len(c.labels))
		for _, l := range c.labels {
			r[l] = 0
		}
		c.rows[year] = r
	}
	return r
}

// Add records one document: each (year, topic) pair is incremented by
// exactly one. Nothing happens unless both sets are non-empty. Callers pass
// deduplicated sets.
func (c *Counts) Add(years []int, topics []string) {
	if len(years) == 0 || len(topics) == 0 {
		return
	}
	for _, t := range topics {
		c.addLabel(t)
	}
	for _, y := range years {
		r := c.row(y)
		for _, t := range topics {
			r[t]++
		}
	}
}

// Merge folds other into c, so large collections can be aggregated in chunks.
func (c *Counts) Merge(other *Counts) {
	if other == nil {
		return
	}
	for _, l := range other.labels {
		c.addLabel(l)
	}
	for y, orow := range other.rows {
		r := c.row(y)
		for t, n := range orow {
			r[t] += n
		}
	}
}

// Labels returns the topic labels in first-seen order.
func (c *Counts) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Years returns every year with a row, ascending.
func (c *Counts) Years() []int {
	years := make([]int, 0, len(c.rows))
	for y := range c.rows {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Get returns the count for a year and topic, 0 when absent.
func (c *Counts) Get(year int, topic string) int {
	return c.rows[year][topic]
}

// Len returns the number of years with a row.
func (c *Counts) Len() int { return len(c.rows) }

// Snapshot returns a deep copy of the aggregate.
func (c *Counts) Snapshot() map[int]map[string]int {
	out := make(map[int]map[string]int, len(c.rows))
	for y, r := range c.rows {
		cp := make(map[string]int, len(r))
		for t, n := range r {
			cp[t] = n
		}
		out[y] = cp
	}
	return out
}
