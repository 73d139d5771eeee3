package fundinsights

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatError reports a statement that cannot be analysed at all.
// Its message is meant to be shown verbatim to the user.
type FormatError struct {
	msg string
	err error
}

func (e *FormatError) Error() string { return e.msg }
func (e *FormatError) Unwrap() error { return e.err }

// formatErrorf creates a FormatError. Like fmt.Errorf, a %w verb wraps its operand.
func formatErrorf(format string, args ...any) *FormatError {
	err := fmt.Errorf(format, args...)
	return &FormatError{msg: err.Error(), err: errors.Unwrap(err)}
}

// IsFormatError reports whether err is, or wraps, a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// column describes a required statement column: how to recognize its header
// cell and how to store one of its cells into a record.
type column struct {
	label  string
	match  func(header string) bool
	assign func(r *MonthlyRecord, cell string) (ok bool)
}

// containsFold returns a predicate matching header cells that contain label, ignoring case.
// Decorated headers like "Month (2023)" are then recognized.
func containsFold(label string) func(string) bool {
	label = strings.ToLower(label)
	return func(header string) bool {
		return strings.Contains(strings.ToLower(header), label)
	}
}

func moneyColumn(label string, field func(r *MonthlyRecord) *Amount) column {
	return column{
		label: label,
		match: containsFold(label),
		assign: func(r *MonthlyRecord, cell string) bool {
			a := ParseMoney(cell)
			*field(r) = a
			return !a.IsNaN()
		},
	}
}

// columns lists the required columns, in the order they are resolved.
var columns = []column{
	{
		label: "Month",
		match: containsFold("Month"),
		assign: func(r *MonthlyRecord, cell string) bool {
			r.Month = strings.TrimSpace(cell)
			return true
		},
	},
	moneyColumn("Beginning balance", func(r *MonthlyRecord) *Amount { return &r.Beginning }),
	moneyColumn("Purchases & Withdrawals", func(r *MonthlyRecord) *Amount { return &r.Purchases }),
	moneyColumn("Market Gain/Loss", func(r *MonthlyRecord) *Amount { return &r.MarketGain }),
	moneyColumn("Income returns", func(r *MonthlyRecord) *Amount { return &r.Income }),
	moneyColumn("Fees", func(r *MonthlyRecord) *Amount { return &r.Fees }),
	moneyColumn("Ending balance", func(r *MonthlyRecord) *Amount { return &r.Ending }),
}

// CellWarning identifies a statement cell that could not be read as a number.
type CellWarning struct {
	Line   int    // line in the statement, the header is line 1
	Column string // required column label
	Value  string // cell content as found
}

func (w CellWarning) String() string {
	return fmt.Sprintf("line %d: %s: cannot read %q as an amount", w.Line, w.Column, w.Value)
}

// ParseResult is the outcome of parsing a statement along with what was
// silently tolerated.
type ParseResult struct {
	Records      []MonthlyRecord
	SkippedRows  int           // data lines with fewer cells than the header
	CellWarnings []CellWarning // cells read as NaN
}

// ParseTable parses a tab separated statement into records, in input order.
//
// See [Parse] for the accepted format.
func ParseTable(text string) ([]MonthlyRecord, error) {
	res, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// Parse parses a tab separated statement.
//
// The first non blank line is the header, it must contain the seven required
// columns (in any order, matched case-insensitively by substring). Every
// following non blank line is a month. Lines with fewer cells than the header
// are skipped, and amounts that cannot be read are NaN: neither is an error.
//
// It fails with a *FormatError if there is no data line, if a column is
// missing, or if no line could be read.
func Parse(text string) (*ParseResult, error) {
	trimmed := strings.TrimSpace(text)
	// line numbers are counted from the original text.
	first := 1 + strings.Count(text[:strings.Index(text, trimmed)], "\n")

	type numbered struct {
		n    int
		text string
	}
	var lines []numbered
	for i, l := range strings.Split(trimmed, "\n") {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, numbered{first + i, l})
	}
	if len(lines) < 2 {
		return nil, formatErrorf("Paste at least two lines (header and one row)")
	}

	header := strings.Split(lines[0].text, "\t")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	index := make([]int, len(columns))
	for i, col := range columns {
		index[i] = -1
		for j, h := range header {
			if col.match(h) {
				index[i] = j
				break
			}
		}
		if index[i] == -1 {
			return nil, formatErrorf("Missing column: %s", col.label)
		}
	}

	res := &ParseResult{}
	for _, line := range lines[1:] {
		cells := strings.Split(line.text, "\t")
		if len(cells) < len(header) {
			res.SkippedRows++
			continue
		}
		var r MonthlyRecord
		for i, col := range columns {
			cell := cells[index[i]]
			if !col.assign(&r, cell) {
				res.CellWarnings = append(res.CellWarnings, CellWarning{Line: line.n, Column: col.label, Value: cell})
			}
		}
		res.Records = append(res.Records, r)
	}
	if len(res.Records) == 0 {
		return nil, formatErrorf("No valid data rows found.")
	}
	return res, nil
}

// moneyCleaner removes currency symbols and thousands separators, and
// normalizes minus sign glyphs to an ASCII hyphen.
var moneyCleaner = strings.NewReplacer(
	"£", "", "$", "", "€", "",
	",", "",
	"−", "-", // minus sign
	"–", "-", // en dash
	"—", "-", // em dash
)

// ParseMoney reads a statement amount like "£1,234.56" or "−12.00".
//
// A blank cell is 0. The longest numeric prefix is read after normalization,
// so "12.5abc" is 12.5, and a cell with no numeric prefix is NaN.
func ParseMoney(s string) Amount {
	if strings.TrimSpace(s) == "" {
		return 0
	}
	s = moneyCleaner.Replace(s)
	s = strings.Join(strings.Fields(s), "")
	return Amount(leadingFloat(s))
}

// leadingFloat parses the longest prefix of s that is a decimal number, with
// an optional sign and exponent. It returns NaN when there is none.
func leadingFloat(s string) float64 {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	if strings.HasPrefix(s[end:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		start := exp
		for exp < len(s) && isDigit(s[exp]) {
			exp++
		}
		if exp > start {
			end = exp
		}
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// out of range values are already ±Inf or 0.
	return f
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
