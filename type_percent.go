package fundinsights

import (
	"fmt"
	"math"
)

// Percent is a percentage value, 6.5 means 6.5%.
//
// It follows IEEE semantics: a return over a zero base is NaN or infinite and
// stays so.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	if math.IsNaN(float64(p)) || math.IsNaN(float64(q)) {
		return math.IsNaN(float64(p)) && math.IsNaN(float64(q))
	}
	if math.IsInf(float64(p), 0) || math.IsInf(float64(q), 0) {
		return p == q
	}
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// IsNaN reports whether the percentage is not a number.
func (p Percent) IsNaN() bool { return math.IsNaN(float64(p)) }

// IsNegative reports whether the percentage is strictly below zero.
func (p Percent) IsNegative() bool { return p < 0 }

// Format renders the percentage with 'digits' decimals.
// NaN is rendered "NaN%" and infinities "Infinity%" or "-Infinity%".
func (p Percent) Format(digits int) string {
	switch f := float64(p); {
	case math.IsNaN(f):
		return "NaN%"
	case math.IsInf(f, 1):
		return "Infinity%"
	case math.IsInf(f, -1):
		return "-Infinity%"
	}
	return fmt.Sprintf("%.*f%%", digits, p)
}

func (p Percent) String() string { return p.Format(2) }

func (p Percent) SignedString() string {
	switch {
	case p.IsNaN():
		return "-"
	case math.IsInf(float64(p), 1):
		return "+" + p.Format(2)
	case math.IsInf(float64(p), -1):
		return p.Format(2)
	}
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// MarshalJSON writes the percentage as a JSON number, non finite values are written as strings.
func (p Percent) MarshalJSON() ([]byte, error) {
	return marshalFloat(float64(p))
}
