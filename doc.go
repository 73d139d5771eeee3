// Package fundinsights turns a pasted monthly portfolio statement into yearly
// performance figures. It is designed to be local-first and stateless: every
// analysis is a pure function of the statement text.
//
// The core functionalities include:
//   - Table Parsing: reading the tab separated statement (one header line and
//     one line per month) into [MonthlyRecord] values, tolerating decorated
//     headers, currency symbols, thousands separators and unicode minus signs.
//   - Yearly Aggregation: grouping months by calendar year into [YearlyRollup]
//     values with contributions, gains, income, fees and return percentage.
//   - Summary: overall totals across all years, as displayed on top of a report.
//   - Envelopes: saved reports can be fed back as input in their JSON form
//     {"name": ..., "rawData": ...}.
//
// Amounts are float64 values: a cell that cannot be read
// becomes NaN and propagates into the totals instead of aborting the whole
// analysis.
//
// This package serves as the foundational logic for the `fi` command-line
// tool.
package fundinsights
