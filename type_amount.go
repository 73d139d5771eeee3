package fundinsights

import (
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used to display amounts when none is given.
// Statements are currency agnostic, it only affects the symbol and separators.
const DefaultCurrency = money.GBP

// Amount is a monetary value read from a statement, in major units.
//
// It may be NaN or infinite when a statement cell could not be read.
type Amount float64

// IsFinite reports whether the amount is neither NaN nor infinite.
func (a Amount) IsFinite() bool {
	f := float64(a)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsNaN reports whether the amount is not a number.
func (a Amount) IsNaN() bool { return math.IsNaN(float64(a)) }

// currency returns the currency definition for code. Unknown codes fall back to
// a currency with no symbol and 2 decimals.
func currency(code string) money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// CurrencySymbol returns the symbol of the currency code, e.g. "£" for GBP.
func CurrencySymbol(code string) string { return currency(code).Grapheme }

// Format returns the amount formatted in the given currency, e.g. "£1,234.56".
// Non finite amounts are rendered as "-".
func (a Amount) Format(code string) string {
	if !a.IsFinite() {
		return "-"
	}
	cur := currency(code)
	dec := decimal.NewFromFloat(float64(a)).Round(int32(cur.Fraction))
	minor := dec.Shift(int32(cur.Fraction))
	if minor.LessThan(minMinor) || minor.GreaterThan(maxMinor) {
		return formatLarge(dec, cur)
	}
	return cur.Formatter().Format(minor.IntPart())
}

// bounds of the amounts in minor units go-money can format.
var (
	minMinor = decimal.NewFromInt(math.MinInt64)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
)

// formatLarge formats d like the go-money formatter, for amounts beyond int64 minor units.
func formatLarge(d decimal.Decimal, cur money.Currency) string {
	digits := d.Abs().StringFixed(int32(cur.Fraction))
	intPart, fracPart, _ := strings.Cut(digits, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(cur.Thousand)
		}
		b.WriteRune(c)
	}
	if fracPart != "" {
		b.WriteString(cur.Decimal)
		b.WriteString(fracPart)
	}

	res := strings.Replace(cur.Template, "1", b.String(), 1)
	res = strings.Replace(res, "$", cur.Grapheme, 1)
	if d.IsNegative() {
		res = "-" + res
	}
	return res
}

// String returns the amount formatted in the [DefaultCurrency].
func (a Amount) String() string { return a.Format(DefaultCurrency) }

// SignedString returns the amount with an explicit sign, 0 is represented as "-".
func (a Amount) SignedString(code string) string {
	if a == 0 || !a.IsFinite() {
		return "-"
	}
	if a > 0 {
		return "+" + a.Format(code)
	}
	return a.Format(code)
}

// MarshalJSON writes the amount as a JSON number, or as the string "NaN",
// "+Inf" or "-Inf" which JSON numbers cannot represent.
func (a Amount) MarshalJSON() ([]byte, error) {
	return marshalFloat(float64(a))
}

func marshalFloat(f float64) ([]byte, error) {
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}
