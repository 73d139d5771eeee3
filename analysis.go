package fundinsights

// Analysis is the complete result of analysing one statement.
type Analysis struct {
	Name         string // envelope name, or derived from the statement
	RawData      string
	Records      []MonthlyRecord
	SkippedRows  int
	CellWarnings []CellWarning
	Rollups      Rollups
	Summary      Summary
}

// Analyze decodes input (a raw statement or an envelope), parses it and
// computes yearly rollups and the summary.
//
// Only format errors can occur, see [DecodeInput] and [Parse].
func Analyze(input string) (*Analysis, error) {
	report, err := DecodeInput(input)
	if err != nil {
		return nil, err
	}
	return AnalyzeReport(report)
}

// AnalyzeReport analyses a saved report.
func AnalyzeReport(report SavedReport) (*Analysis, error) {
	parsed, err := Parse(report.RawData)
	if err != nil {
		return nil, err
	}
	name := report.Name
	if name == "" {
		name = AutoReportName(report.RawData)
	}
	rollups := Aggregate(parsed.Records)
	return &Analysis{
		Name:         name,
		RawData:      report.RawData,
		Records:      parsed.Records,
		SkippedRows:  parsed.SkippedRows,
		CellWarnings: parsed.CellWarnings,
		Rollups:      rollups,
		Summary:      Summarize(rollups),
	}, nil
}

// Years returns the analysed years in ascending order.
func (a *Analysis) Years() []string { return a.Rollups.Years() }

// Report returns the analysed statement as a saved report.
func (a *Analysis) Report() SavedReport {
	return SavedReport{Name: a.Name, RawData: a.RawData}
}
