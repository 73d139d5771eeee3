package renderer

import (
	"bytes"
	"fmt"

	"github.com/navs23/fundinsights"
	md "github.com/nao1215/markdown"
)

// YearMarkdown renders the monthly breakdown of a single year.
func YearMarkdown(y *fundinsights.YearlyRollup, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := opts.currency()

	title := y.Year
	if title == "" {
		title = "Undated months"
	}
	if y.IsPartialYear() {
		title = fmt.Sprintf("%s (%d months)", title, len(y.Months))
	}
	doc.H2(title)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Beginning", "Purchases & Withdrawals", "Market Gain/Loss", "Income", "Fees", "Ending"},
	}
	for _, m := range y.Months {
		table.Rows = append(table.Rows, []string{
			m.Month,
			m.Beginning.Format(cur),
			m.Purchases.SignedString(cur),
			m.MarketGain.SignedString(cur),
			m.Income.SignedString(cur),
			m.Fees.SignedString(cur),
			m.Ending.Format(cur),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(y.StartBalance.Format(cur)),
		md.Bold(y.TotalContributions.SignedString(cur)),
		md.Bold(y.TotalMarketGains.SignedString(cur)),
		md.Bold(y.TotalIncome.SignedString(cur)),
		md.Bold(y.TotalFees.SignedString(cur)),
		md.Bold(y.EndBalance.Format(cur)),
	})
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total returns %s, %s of the invested base.", y.TotalReturns.SignedString(cur), y.ReturnPercentage.SignedString()))

	return doc.String()
}
