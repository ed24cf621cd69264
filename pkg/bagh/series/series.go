package series

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MinPlottablePoints is the fewest points a line chart can draw a trend from.
const MinPlottablePoints = 2

// Point is one year of the timeline with a count per topic label.
type Point struct {
	Year   int            `json:"year"`
	Counts map[string]int `json:"counts"`
}

// Series is a sparse, year-ascending timeline.
type Series struct {
	Labels []string `json:"labels"`
	Points []Point  `json:"points"`
}

// Build flattens an aggregate into a series. Years without mentions are
// absent rather than zero-filled.
func Build(c *Counts) Series {
	s := Series{Labels: []string{}, Points: []Point{}}
	if c == nil {
		return s
	}
	s.Labels = c.Labels()
	for _, y := range c.Years() {
		row := c.rows[y]
		counts := make(map[string]int, len(s.Labels))
		for _, l := range s.Labels {
			counts[l] = row[l]
		}
		s.Points = append(s.Points, Point{Year: y, Counts: counts})
	}
	return s
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.Points) }

// Span returns the first and last year. ok is false for an empty series.
func (s Series) Span() (first, last int, ok bool) {
	if len(s.Points) == 0 {
		return 0, 0, false
	}
	return s.Points[0].Year, s.Points[len(s.Points)-1].Year, true
}

// Plottable reports whether there are enough points to draw a trend.
func (s Series) Plottable() bool {
	return len(s.Points) >= MinPlottablePoints
}

// YearKey is the row field holding the year; no topic label may use it.
const YearKey = "year"

// Row is one flat chart row. It encodes as {"year": 1971, "Design": 1, ...}
// with topic keys in label order.
type Row struct {
	Year   int
	Labels []string
	Counts map[string]int
}

// MarshalJSON writes the year first, then one key per label in order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "{%q:%d", YearKey, r.Year)
	for _, l := range r.Labels {
		key, err := json.Marshal(l)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", r.Counts[l])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Rows returns chart rows in year order.
func (s Series) Rows() []Row {
	rows := make([]Row, 0, len(s.Points))
	for _, p := range s.Points {
		rows = append(rows, Row{Year: p.Year, Labels: s.Labels, Counts: p.Counts})
	}
	return rows
}

// At returns the point for year, if present.
func (s Series) At(year int) (Point, bool) {
	for _, p := range s.Points {
		if p.Year == year {
			return p, true
		}
	}
	return Point{}, false
}
