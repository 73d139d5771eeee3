package fundinsights

import "strings"

// MonthlyRecord is one line of a statement.
type MonthlyRecord struct {
	Month      string `json:"month" yaml:"month"` // "<Mon> <YYYY>", e.g. "Jan 2023"
	Beginning  Amount `json:"beginning" yaml:"beginning"`
	Purchases  Amount `json:"purchases" yaml:"purchases"` // purchases and withdrawals, signed
	MarketGain Amount `json:"marketGain" yaml:"marketGain"`
	Income     Amount `json:"income" yaml:"income"`
	Fees       Amount `json:"fees" yaml:"fees"` // already negative in statements
	Ending     Amount `json:"ending" yaml:"ending"`
}

// MonthName returns the month token of the record, e.g. "Jan".
func (r MonthlyRecord) MonthName() string {
	return strings.Split(r.Month, " ")[0]
}

// Year returns the year token of the record, e.g. "2023".
//
// A month that is not made of two space separated tokens has the empty year "".
func (r MonthlyRecord) Year() string {
	tokens := strings.Split(r.Month, " ")
	if len(tokens) < 2 {
		return ""
	}
	return tokens[1]
}

var monthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// monthIndex returns the calendar position of a 3-letter month abbreviation
// (Jan is 0) or -1 when the abbreviation is unknown.
func monthIndex(name string) int {
	for i, m := range monthOrder {
		if m == name {
			return i
		}
	}
	return -1
}
