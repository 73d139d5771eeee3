// Package chart draws the yearly series of an analysis into an Excel
// workbook: a data sheet per view, a column chart of the annual returns and a
// line chart of the portfolio value.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/navs23/fundinsights"
	"github.com/xuri/excelize/v2"
)

// ErrNoWorkbook is returned when writing a session that has nothing rendered.
var ErrNoWorkbook = errors.New("no workbook rendered")

// Sheet names of a rendered workbook.
const (
	SummarySheet   = "Summary"
	YearlySheet    = "Yearly"
	StatementSheet = "Statement"
)

// Session owns the workbook of the last rendered analysis.
//
// Render releases the previous workbook before drawing a new one, and Close
// releases the current one. A Session is not safe for concurrent use.
type Session struct {
	currency string
	file     *excelize.File
	styles   styles
}

type styles struct {
	money, percent, header int
}

// NewSession returns an empty session, amounts are labelled with the given
// currency code.
func NewSession(currency string) *Session {
	if currency == "" {
		currency = fundinsights.DefaultCurrency
	}
	return &Session{currency: currency}
}

// Render draws a into a new workbook, replacing the previous one.
func (s *Session) Render(a *fundinsights.Analysis) error {
	if err := s.Close(); err != nil {
		return err
	}

	f := excelize.NewFile()
	if err := s.build(f, a); err != nil {
		f.Close()
		return err
	}
	s.file = f
	return nil
}

// WriteTo writes the current workbook in xlsx format.
func (s *Session) WriteTo(w io.Writer) (int64, error) {
	if s.file == nil {
		return 0, ErrNoWorkbook
	}
	return s.file.WriteTo(w)
}

// Close releases the current workbook, if any. It is safe to call it twice.
func (s *Session) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	if err != nil {
		return fmt.Errorf("cannot release workbook: %w", err)
	}
	return nil
}

func (s *Session) build(f *excelize.File, a *fundinsights.Analysis) (err error) {
	if s.styles, err = newStyles(f); err != nil {
		return err
	}
	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return fmt.Errorf("cannot name sheet %q: %w", SummarySheet, err)
	}
	if err := s.summary(f, a); err != nil {
		return err
	}
	for _, name := range []string{YearlySheet, StatementSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("cannot create sheet %q: %w", name, err)
		}
	}
	years := a.Rollups.Sorted()
	if err := s.yearly(f, years); err != nil {
		return err
	}
	if err := s.statement(f, a.Records); err != nil {
		return err
	}
	return s.charts(f, len(years))
}

func newStyles(f *excelize.File) (st styles, err error) {
	// built-in formats: 4 is "#,##0.00", 10 is "0.00%"
	if st.money, err = f.NewStyle(&excelize.Style{NumFmt: 4}); err != nil {
		return st, fmt.Errorf("cannot create money style: %w", err)
	}
	if st.percent, err = f.NewStyle(&excelize.Style{NumFmt: 10}); err != nil {
		return st, fmt.Errorf("cannot create percent style: %w", err)
	}
	if st.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return st, fmt.Errorf("cannot create header style: %w", err)
	}
	return st, nil
}

// setRow writes values on a 1-based row of sheet.
func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("cannot write row %d of %q: %w", row, sheet, err)
	}
	return nil
}

// style applies a style to the columns [from, to] of rows [top, bottom].
func style(f *excelize.File, sheet string, from, to, top, bottom, id int) error {
	if bottom < top {
		return nil
	}
	tl, err := excelize.CoordinatesToCellName(from, top)
	if err != nil {
		return err
	}
	br, err := excelize.CoordinatesToCellName(to, bottom)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, tl, br, id)
}

// amount returns the cell value of an amount, non finite amounts are written
// as text since spreadsheets have no NaN.
func amount(a fundinsights.Amount) any {
	if !a.IsFinite() {
		return "-"
	}
	return float64(a)
}

// ratio returns the cell value of a percentage as a ratio, for a percent format.
func ratio(p fundinsights.Percent) any {
	if r := fundinsights.Amount(p / 100); r.IsFinite() {
		return float64(r)
	}
	return p.Format(1)
}
