package fundinsights

import (
	"fmt"
	"strings"
)

const header = "Month\tBeginning balance\tPurchases & Withdrawals\tMarket Gain/Loss\tIncome returns\tFees\tEnding balance"

// sample is the two months statement used throughout the tests.
const sample = header + "\n" +
	"Jan 2023\t1000\t100\t50\t10\t-5\t1155\n" +
	"Feb 2023\t1155\t0\t20\t5\t-5\t1175"

// statement builds a statement with the standard header and the given lines.
func statement(lines ...string) string {
	return header + "\n" + strings.Join(lines, "\n")
}

// row builds a statement line from a month and the six amounts.
func row(month string, beginning, purchases, gain, income, fees, ending float64) string {
	return fmt.Sprintf("%s\t%v\t%v\t%v\t%v\t%v\t%v", month, beginning, purchases, gain, income, fees, ending)
}

// rec builds a record with only a month and a beginning and ending balance.
func rec(month string, beginning, ending Amount) MonthlyRecord {
	return MonthlyRecord{Month: month, Beginning: beginning, Ending: ending}
}
