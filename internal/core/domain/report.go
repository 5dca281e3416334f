package domain

// ContributionRate is the fixed share of gross pay deducted as contributions.
const ContributionRate = 0.18

// ReportLine is the payroll computation for one employee in one period.
type ReportLine struct {
	ID         string      `json:"id"`
	FirstName  string      `json:"imie"`
	LastName   string      `json:"nazwisko"`
	Position   string      `json:"stanowisko"`
	Rate       float64     `json:"stawka"`
	Hours      float64     `json:"godziny"`
	Gross      float64     `json:"brutto"`
	Deductions float64     `json:"skladki"`
	Net        float64     `json:"netto"`
	Entries    []TimeEntry `json:"wpisy"`
}

// ReportTotals aggregates the per-employee lines across the organization.
type ReportTotals struct {
	Hours      float64 `json:"godzin"`
	Gross      float64 `json:"brutto"`
	Net        float64 `json:"netto"`
	Deductions float64 `json:"skladki"`
}

// Report is the full payroll view for one period. Month is 1-based in the
// output even though the computation is keyed by the zero-based month.
type Report struct {
	Month    int            `json:"miesiac"`
	Year     int            `json:"rok"`
	Lines    []ReportLine   `json:"pracownicy"`
	Approval ApprovalRecord `json:"zatwierdzenie"`
	Totals   ReportTotals   `json:"suma"`
}

// ComputeReport aggregates hours and pay for every employee over the entries
// dated in (year, month), month zero-based. It is a pure function over the
// supplied snapshot: employees are processed in stored order, entries whose
// employee id matches no current employee are silently ignored, and no
// rounding is applied. Malformed data degrades to zero rather than erroring.
func ComputeReport(employees []Employee, entries []TimeEntry, approvals map[string]ApprovalRecord, year, month int) *Report {
	selected := FilterEntries(entries, year, month)

	report := &Report{
		Month:    month + 1,
		Year:     year,
		Lines:    []ReportLine{},
		Approval: ApprovalStatus(approvals, year, month),
	}

	for _, emp := range employees {
		matched := []TimeEntry{}
		hours := 0.0
		for _, entry := range selected {
			if entry.EmployeeID == emp.ID {
				matched = append(matched, entry)
				hours += entry.Hours
			}
		}

		rate := emp.EffectiveRate()
		gross := hours * rate
		deductions := gross * ContributionRate
		net := gross - deductions

		report.Lines = append(report.Lines, ReportLine{
			ID:         emp.ID,
			FirstName:  emp.FirstName,
			LastName:   emp.LastName,
			Position:   emp.Position,
			Rate:       rate,
			Hours:      hours,
			Gross:      gross,
			Deductions: deductions,
			Net:        net,
			Entries:    matched,
		})

		report.Totals.Hours += hours
		report.Totals.Gross += gross
		report.Totals.Net += net
		report.Totals.Deductions += deductions
	}

	return report
}
