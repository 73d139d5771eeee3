package fundinsights

// Summary holds the overall figures of an analysis, across all years.
type Summary struct {
	StartBalance      Amount  `json:"startBalance" yaml:"startBalance"`   // start balance of the first year
	CurrentValue      Amount  `json:"currentValue" yaml:"currentValue"`   // end balance of the last year
	TotalInvested     Amount  `json:"totalInvested" yaml:"totalInvested"` // sum of contributions
	TotalReturns      Amount  `json:"totalReturns" yaml:"totalReturns"`
	OverallReturnRate Percent `json:"overallReturnRate" yaml:"overallReturnRate"`

	// AverageReturnPercentage is the mean of the yearly return percentages
	// that are not NaN. AverageCount is how many were averaged, the average
	// is meaningless when it is 0.
	AverageReturnPercentage Percent `json:"averageReturnPercentage" yaml:"averageReturnPercentage"`
	AverageCount            int     `json:"averageCount" yaml:"averageCount"`
}

// Summarize computes the overall figures from yearly rollups.
func Summarize(r Rollups) Summary {
	var s Summary
	years := r.Sorted()
	var sumPct Percent
	for i, y := range years {
		s.TotalInvested += y.TotalContributions
		s.TotalReturns += y.TotalReturns
		if i == 0 {
			s.StartBalance = y.StartBalance
		}
		if i == len(years)-1 {
			s.CurrentValue = y.EndBalance
		}
		if !y.ReturnPercentage.IsNaN() {
			sumPct += y.ReturnPercentage
			s.AverageCount++
		}
	}
	s.OverallReturnRate = Percent(s.TotalReturns / (s.StartBalance + s.TotalInvested) * 100)
	if s.AverageCount > 0 {
		s.AverageReturnPercentage = sumPct / Percent(s.AverageCount)
	}
	return s
}
