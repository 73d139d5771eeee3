package chart

import (
	"fmt"

	"github.com/navs23/fundinsights"
	"github.com/xuri/excelize/v2"
)

var yearlyHeader = []any{"Year", "Start Balance", "Contributions", "Market Gains", "Income", "Fees", "Total Returns", "Return %", "End Balance"}

// yearly columns referenced by the charts, 1-based.
const (
	colYear    = 1
	colReturns = 7
	colPercent = 8
	colEnd     = 9
)

func (s *Session) summary(f *excelize.File, a *fundinsights.Analysis) error {
	sum := a.Summary
	rows := [][]any{
		{"Report", a.Name},
		{"Total Portfolio Value", amount(sum.CurrentValue)},
		{"Total Invested", amount(sum.TotalInvested)},
		{"Total Returns", amount(sum.TotalReturns)},
		{"Overall Return Rate", ratio(sum.OverallReturnRate)},
	}
	if sum.AverageCount > 0 {
		rows = append(rows, []any{"Average Return % by Year", ratio(sum.AverageReturnPercentage)})
	}
	for i, r := range rows {
		if err := setRow(f, SummarySheet, i+1, r...); err != nil {
			return err
		}
	}
	if err := style(f, SummarySheet, 2, 2, 2, 4, s.styles.money); err != nil {
		return err
	}
	if err := style(f, SummarySheet, 2, 2, 5, len(rows), s.styles.percent); err != nil {
		return err
	}
	if err := style(f, SummarySheet, 1, 1, 1, len(rows), s.styles.header); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "A", "B", 26)
}

func (s *Session) yearly(f *excelize.File, years []*fundinsights.YearlyRollup) error {
	if err := setRow(f, YearlySheet, 1, yearlyHeader...); err != nil {
		return err
	}
	for i, y := range years {
		err := setRow(f, YearlySheet, i+2,
			y.Label(),
			amount(y.StartBalance),
			amount(y.TotalContributions),
			amount(y.TotalMarketGains),
			amount(y.TotalIncome),
			amount(y.TotalFees),
			amount(y.TotalReturns),
			ratio(y.ReturnPercentage),
			amount(y.EndBalance),
		)
		if err != nil {
			return err
		}
	}
	last := len(years) + 1
	if err := style(f, YearlySheet, 1, len(yearlyHeader), 1, 1, s.styles.header); err != nil {
		return err
	}
	if err := style(f, YearlySheet, 2, colReturns, 2, last, s.styles.money); err != nil {
		return err
	}
	if err := style(f, YearlySheet, colPercent, colPercent, 2, last, s.styles.percent); err != nil {
		return err
	}
	if err := style(f, YearlySheet, colEnd, colEnd, 2, last, s.styles.money); err != nil {
		return err
	}
	return f.SetColWidth(YearlySheet, "A", "I", 15)
}

func (s *Session) statement(f *excelize.File, records []fundinsights.MonthlyRecord) error {
	header := []any{"Month", "Beginning balance", "Purchases & Withdrawals", "Market Gain/Loss", "Income returns", "Fees", "Ending balance"}
	if err := setRow(f, StatementSheet, 1, header...); err != nil {
		return err
	}
	for i, r := range records {
		err := setRow(f, StatementSheet, i+2,
			r.Month,
			amount(r.Beginning),
			amount(r.Purchases),
			amount(r.MarketGain),
			amount(r.Income),
			amount(r.Fees),
			amount(r.Ending),
		)
		if err != nil {
			return err
		}
	}
	if err := style(f, StatementSheet, 1, len(header), 1, 1, s.styles.header); err != nil {
		return err
	}
	if err := style(f, StatementSheet, 2, len(header), 2, len(records)+1, s.styles.money); err != nil {
		return err
	}
	return f.SetColWidth(StatementSheet, "A", "G", 18)
}

// charts adds the annual returns and portfolio value charts next to the yearly data.
func (s *Session) charts(f *excelize.File, n int) error {
	if n == 0 {
		return nil
	}
	symbol := fundinsights.CurrencySymbol(s.currency)
	categories := rangeRef(colYear, n)

	returns := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$%s$1", YearlySheet, column(colReturns)),
			Categories: categories,
			Values:     rangeRef(colReturns, n),
		}},
		Title:     []excelize.RichTextRun{{Text: fmt.Sprintf("Annual Returns (%s)", symbol)}},
		Legend:    excelize.ChartLegend{Position: "none"},
		Dimension: excelize.ChartDimension{Width: 640, Height: 320},
	}
	if err := f.AddChart(YearlySheet, "K2", returns); err != nil {
		return fmt.Errorf("cannot add annual returns chart: %w", err)
	}

	value := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$%s$1", YearlySheet, column(colEnd)),
			Categories: categories,
			Values:     rangeRef(colEnd, n),
		}},
		Title:     []excelize.RichTextRun{{Text: fmt.Sprintf("Portfolio Value (%s)", symbol)}},
		Legend:    excelize.ChartLegend{Position: "none"},
		Dimension: excelize.ChartDimension{Width: 640, Height: 320},
	}
	if err := f.AddChart(YearlySheet, "K20", value); err != nil {
		return fmt.Errorf("cannot add portfolio value chart: %w", err)
	}
	return nil
}

func column(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}

// rangeRef returns the absolute reference of the n data rows of a yearly column.
func rangeRef(col, n int) string {
	c := column(col)
	return fmt.Sprintf("%s!$%s$2:$%s$%d", YearlySheet, c, c, n+1)
}
