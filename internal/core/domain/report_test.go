package domain

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeReport_SingleEmployee(t *testing.T) {
	employees := []Employee{
		{ID: "e1", FirstName: "Jan", LastName: "Kowalski", Position: "Pracownik", HourlyRate: 20},
	}
	entries := []TimeEntry{
		{ID: "w1", EmployeeID: "e1", Date: "2024-03-05", Hours: 6},
		{ID: "w2", EmployeeID: "e1", Date: "2024-03-12", Hours: 4},
		{ID: "w3", EmployeeID: "e1", Date: "2024-04-02", Hours: 5},
	}

	report := ComputeReport(employees, entries, nil, 2024, 2) // zero-based March
	if report.Month != 3 || report.Year != 2024 {
		t.Fatalf("expected period 3/2024, got %d/%d", report.Month, report.Year)
	}
	if len(report.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(report.Lines))
	}

	line := report.Lines[0]
	if line.Hours != 10 {
		t.Fatalf("expected 10 hours, got %v", line.Hours)
	}
	if line.Gross != 200 {
		t.Fatalf("expected gross 200, got %v", line.Gross)
	}
	if !almostEqual(line.Deductions, 36) {
		t.Fatalf("expected deductions 36, got %v", line.Deductions)
	}
	if !almostEqual(line.Net, 164) {
		t.Fatalf("expected net 164, got %v", line.Net)
	}
	if len(line.Entries) != 2 {
		t.Fatalf("expected 2 matched entries, got %d", len(line.Entries))
	}

	april := ComputeReport(employees, entries, nil, 2024, 3)
	if got := april.Lines[0]; got.Hours != 5 || got.Gross != 100 || !almostEqual(got.Net, 82) {
		t.Fatalf("unexpected april line: %+v", got)
	}
}

func TestComputeReport_TotalsMatchLines(t *testing.T) {
	employees := []Employee{
		{ID: "e1", HourlyRate: 20},
		{ID: "e2", HourlyRate: 30},
		{ID: "e3", HourlyRate: 10}, // no entries this period
	}
	entries := []TimeEntry{
		{ID: "w1", EmployeeID: "e1", Date: "2024-03-05", Hours: 8},
		{ID: "w2", EmployeeID: "e2", Date: "2024-03-06", Hours: 7.5},
	}

	report := ComputeReport(employees, entries, nil, 2024, 2)
	if len(report.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(report.Lines))
	}

	var hours, gross, net, deductions float64
	for _, line := range report.Lines {
		hours += line.Hours
		gross += line.Gross
		net += line.Net
		deductions += line.Deductions
		if !almostEqual(line.Net, line.Gross-line.Gross*ContributionRate) {
			t.Fatalf("net/gross mismatch on line %+v", line)
		}
	}
	if report.Totals.Hours != hours || report.Totals.Gross != gross ||
		report.Totals.Net != net || report.Totals.Deductions != deductions {
		t.Fatalf("totals %+v do not match summed lines", report.Totals)
	}

	// Employee with no matching entries contributes exactly zero.
	idle := report.Lines[2]
	if idle.Hours != 0 || idle.Gross != 0 || idle.Net != 0 || idle.Deductions != 0 {
		t.Fatalf("idle employee should contribute zero: %+v", idle)
	}
	if len(idle.Entries) != 0 {
		t.Fatalf("idle employee should have no entries, got %d", len(idle.Entries))
	}
}

func TestComputeReport_OrphanedEntriesInvisible(t *testing.T) {
	employees := []Employee{
		{ID: "e1", HourlyRate: 20},
	}
	entries := []TimeEntry{
		{ID: "w1", EmployeeID: "e1", Date: "2024-03-05", Hours: 10},
		{ID: "w2", EmployeeID: "gone", Date: "2024-03-06", Hours: 99},
	}

	report := ComputeReport(employees, entries, nil, 2024, 2)
	if report.Totals.Hours != 10 {
		t.Fatalf("orphan entry leaked into totals: %v", report.Totals.Hours)
	}

	// After deleting the employee the report omits them entirely.
	report = ComputeReport(nil, entries, nil, 2024, 2)
	if len(report.Lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(report.Lines))
	}
	if report.Totals.Hours != 0 || report.Totals.Gross != 0 {
		t.Fatalf("expected zero totals, got %+v", report.Totals)
	}
}

func TestComputeReport_RateDefault(t *testing.T) {
	employees := []Employee{
		{ID: "e1"}, // rate unset
	}
	entries := []TimeEntry{
		{ID: "w1", EmployeeID: "e1", Date: "2024-03-05", Hours: 2},
	}

	report := ComputeReport(employees, entries, nil, 2024, 2)
	line := report.Lines[0]
	if line.Rate != DefaultHourlyRate {
		t.Fatalf("expected default rate %d, got %v", DefaultHourlyRate, line.Rate)
	}
	if line.Gross != 2*DefaultHourlyRate {
		t.Fatalf("expected gross %v, got %v", 2.0*DefaultHourlyRate, line.Gross)
	}
}

func TestComputeReport_AdjacentPeriodsExcluded(t *testing.T) {
	employees := []Employee{{ID: "e1", HourlyRate: 20}}
	entries := []TimeEntry{
		{ID: "w1", EmployeeID: "e1", Date: "2024-02-29", Hours: 1},
		{ID: "w2", EmployeeID: "e1", Date: "2024-04-01", Hours: 1},
		{ID: "w3", EmployeeID: "e1", Date: "2023-03-15", Hours: 1},
		{ID: "w4", EmployeeID: "e1", Date: "not-a-date", Hours: 1},
		{ID: "w5", EmployeeID: "e1", Hours: 1},
	}

	report := ComputeReport(employees, entries, nil, 2024, 2)
	if report.Lines[0].Hours != 0 {
		t.Fatalf("expected no matching hours, got %v", report.Lines[0].Hours)
	}
}

func TestComputeReport_ApprovalMerged(t *testing.T) {
	approvals := map[string]ApprovalRecord{
		"2024-2": {Approved: true, ApprovedBy: "Księgowa", ApprovedAt: "2024-04-01T10:00:00Z"},
	}

	report := ComputeReport(nil, nil, approvals, 2024, 2)
	if !report.Approval.Approved || report.Approval.ApprovedBy != "Księgowa" {
		t.Fatalf("expected merged approval, got %+v", report.Approval)
	}

	report = ComputeReport(nil, nil, approvals, 2024, 3)
	if report.Approval.Approved {
		t.Fatalf("expected not-approved default, got %+v", report.Approval)
	}
}

func TestComputeReport_OutOfRangeMonthMatchesNothing(t *testing.T) {
	employees := []Employee{{ID: "e1", HourlyRate: 20}}
	entries := []TimeEntry{
		{ID: "w1", EmployeeID: "e1", Date: "2024-03-05", Hours: 8},
	}

	report := ComputeReport(employees, entries, nil, 2024, 12)
	if report.Totals.Hours != 0 {
		t.Fatalf("month 12 should match nothing, got %v hours", report.Totals.Hours)
	}
	if report.Month != 13 {
		t.Fatalf("month should still be echoed as supplied+1, got %d", report.Month)
	}
}
