package fundinsights

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     Summary
		wantRate Percent
		wantAvg  Percent
	}{
		{
			name:     "single year",
			text:     sample,
			want:     Summary{StartBalance: 1000, CurrentValue: 1175, TotalInvested: 100, TotalReturns: 75, AverageCount: 1},
			wantRate: Percent(75.0 / 1100 * 100),
			wantAvg:  Percent(75.0 / 1100 * 100),
		},
		{
			name: "two years",
			text: statement(
				row("Feb 2023", 1155, 0, 20, 5, -5, 1175),
				row("Dec 2022", 900, 50, 5, 0, -1, 954),
				row("Jan 2023", 1000, 100, 50, 10, -5, 1155),
			),
			want:     Summary{StartBalance: 900, CurrentValue: 1175, TotalInvested: 150, TotalReturns: 79, AverageCount: 2},
			wantRate: Percent(79.0 / 1050 * 100),
			wantAvg:  Percent((4.0/950*100 + 75.0/1100*100) / 2),
		},
		{
			name: "zero base year is not averaged",
			text: statement(
				row("Jan 2020", 0, 0, 0, 0, 0, 0),
				row("Jan 2021", 100, 0, 10, 0, 0, 110),
			),
			want:     Summary{StartBalance: 0, CurrentValue: 110, TotalInvested: 0, TotalReturns: 10, AverageCount: 1},
			wantRate: Percent(math.Inf(1)),
			wantAvg:  10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(Aggregate(ParseTableOrDie(t, tt.text)))

			rate, avg := got.OverallReturnRate, got.AverageReturnPercentage
			got.OverallReturnRate, got.AverageReturnPercentage = 0, 0
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
			if !rate.Equal(tt.wantRate) {
				t.Errorf("OverallReturnRate = %v, want %v", rate, tt.wantRate)
			}
			if !avg.Equal(tt.wantAvg) {
				t.Errorf("AverageReturnPercentage = %v, want %v", avg, tt.wantAvg)
			}
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got.AverageCount != 0 || got.CurrentValue != 0 || got.TotalInvested != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero values", got)
	}
	if !got.OverallReturnRate.IsNaN() {
		t.Errorf("OverallReturnRate = %v, want NaN", got.OverallReturnRate)
	}
}
