package calendar

import "math"

// System identifies the calendar a year number was written in.
type System int

const (
	Gregorian System = iota
	Shamsi
	Qamari
)

func (s System) String() string {
	switch s {
	case Gregorian:
		return "gregorian"
	case Shamsi:
		return "shamsi"
	case Qamari:
		return "qamari"
	default:
		return "unknown"
	}
}

// MarshalText encodes the system by name.
func (s System) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Converter maps a year in some calendar system to a Gregorian year.
type Converter interface {
	ToGregorian(sys System, year int) int
}

// Offsets used by the approximate converter.
const (
	ShamsiOffset = 621
	QamariEpoch  = 622
	QamariRatio  = 0.97
)

// Approximate converts with a fixed Shamsi offset and a linear Qamari drift.
// Results can be off by a year near year boundaries; good enough for
// century-scale timelines.
type Approximate struct{}

// ToGregorian implements Converter.
func (Approximate) ToGregorian(sys System, year int) int {
	switch sys {
	case Shamsi:
		return ShamsiToGregorian(year)
	case Qamari:
		return QamariToGregorian(year)
	default:
		return year
	}
}

// ShamsiToGregorian ignores the Nowruz boundary in March.
func ShamsiToGregorian(year int) int {
	return year + ShamsiOffset
}

// QamariToGregorian accounts for the lunar year being ~3% shorter.
func QamariToGregorian(year int) int {
	return int(math.Floor(float64(year)*QamariRatio + QamariEpoch))
}
