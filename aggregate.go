package fundinsights

import (
	"slices"
	"sort"
)

// YearlyRollup aggregates the records of a single calendar year.
type YearlyRollup struct {
	Year               string
	Months             []MonthlyRecord // sorted Jan to Dec
	TotalContributions Amount
	TotalMarketGains   Amount
	TotalIncome        Amount
	TotalFees          Amount
	TotalReturns       Amount  // market gains + income + fees
	ReturnPercentage   Percent // total returns over (start balance + contributions)
	StartBalance       Amount  // beginning balance of the first month
	EndBalance         Amount  // ending balance of the last month
}

// IsPartialYear reports whether the year covers fewer than 12 months.
func (y *YearlyRollup) IsPartialYear() bool { return len(y.Months) < 12 }

// Label returns the year, followed by a '*' for a partial year.
func (y *YearlyRollup) Label() string {
	if y.IsPartialYear() {
		return y.Year + "*"
	}
	return y.Year
}

// MarshalJSON writes the rollup with its partial year flag.
func (y *YearlyRollup) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", y.Year)
	w.Append("partialYear", y.IsPartialYear())
	w.Append("startBalance", y.StartBalance)
	w.Append("totalContributions", y.TotalContributions)
	w.Append("totalMarketGains", y.TotalMarketGains)
	w.Append("totalIncome", y.TotalIncome)
	w.Append("totalFees", y.TotalFees)
	w.Append("totalReturns", y.TotalReturns)
	w.Append("returnPercentage", y.ReturnPercentage)
	w.Append("endBalance", y.EndBalance)
	w.Optional("months", y.Months)
	return w.MarshalJSON()
}

// Rollups maps a year to its rollup.
type Rollups map[string]*YearlyRollup

// Years returns the years in ascending order.
func (r Rollups) Years() []string {
	years := make([]string, 0, len(r))
	for y := range r {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}

// Sorted returns the rollups in ascending year order.
func (r Rollups) Sorted() []*YearlyRollup {
	years := r.Years()
	res := make([]*YearlyRollup, len(years))
	for i, y := range years {
		res[i] = r[y]
	}
	return res
}

// Aggregate groups records by year and computes each year's rollup.
//
// Within a year, months are sorted in calendar order, an unknown month
// abbreviation is sorted before January. Records whose month has no year are
// grouped under the year "".
//
// It never fails: a NaN amount makes the totals it contributes to NaN, and a
// zero base makes the return percentage NaN or infinite.
func Aggregate(records []MonthlyRecord) Rollups {
	res := make(Rollups)
	for _, rec := range records {
		year := rec.Year()
		y, exists := res[year]
		if !exists {
			y = &YearlyRollup{Year: year}
			res[year] = y
		}
		y.Months = append(y.Months, rec)
	}

	for _, y := range res {
		slices.SortStableFunc(y.Months, func(a, b MonthlyRecord) int {
			return monthIndex(a.MonthName()) - monthIndex(b.MonthName())
		})
		y.StartBalance = y.Months[0].Beginning
		y.EndBalance = y.Months[len(y.Months)-1].Ending
		for _, m := range y.Months {
			y.TotalContributions += m.Purchases
			y.TotalMarketGains += m.MarketGain
			y.TotalIncome += m.Income
			y.TotalFees += m.Fees
		}
		// fees are already negative in statements.
		y.TotalReturns = y.TotalMarketGains + y.TotalIncome + y.TotalFees
		y.ReturnPercentage = Percent(y.TotalReturns / (y.StartBalance + y.TotalContributions) * 100)
	}
	return res
}
