package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// csvNetFactor mirrors 1 - ContributionRate. The export computes net on its
// own rather than reusing the report's figure; the two constants must stay
// numerically consistent.
const csvNetFactor = 0.82

// csvHeader is the fixed first row of every export.
const csvHeader = "Lp,Imie,Nazwisko,Stanowisko,Godziny,Stawka,BRUTTO,NETTO"

// FormatCSV renders a report as CSV text, one row per employee in report
// order. Text fields are joined raw, without quoting or escaping, to stay
// byte-compatible with existing consumers. Gross and net are formatted to
// two decimals; hours and rate keep their shortest representation.
func FormatCSV(report *Report) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for i, line := range report.Lines {
		position := line.Position
		if position == "" {
			position = DefaultPosition
		}
		net := line.Gross * csvNetFactor

		fmt.Fprintf(&b, "%d,%s,%s,%s,%s,%s,%.2f,%.2f\n",
			i+1,
			line.FirstName,
			line.LastName,
			position,
			formatNumber(line.Hours),
			formatNumber(line.Rate),
			line.Gross,
			net,
		)
	}

	return b.String()
}

// ExportFilename names the CSV download for a period, month zero-based.
func ExportFilename(year, month int) string {
	return fmt.Sprintf("lista_plac_%d_%d.csv", month+1, year)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
