package domain

import (
	"errors"
	"time"
)

var ErrEntryNotFound = errors.New("entry not found")

// TimeEntry records hours worked by one employee on one calendar day.
// EmployeeID is matched by equality only; it is never validated against the
// employee collection, so entries may outlive their employee.
type TimeEntry struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"pracownikId"`
	Date       string  `json:"data"`
	Hours      float64 `json:"godziny"`
	Note       string  `json:"notatka"`
	CreatedBy  string  `json:"kto_dodal"`
	CreatedAt  string  `json:"data_dodania"`
	ModifiedAt string  `json:"data_modyfikacji,omitempty"`
}

// entryDateLayouts are the accepted formats for a stored entry date, tried
// in order.
var entryDateLayouts = []string{"2006-01-02", time.RFC3339}

// InPeriod reports whether the entry's date falls in the given year and
// zero-based month. Entries with a missing or unparseable date never match.
func (e *TimeEntry) InPeriod(year, month int) bool {
	for _, layout := range entryDateLayouts {
		t, err := time.Parse(layout, e.Date)
		if err != nil {
			continue
		}
		return t.Year() == year && int(t.Month())-1 == month
	}
	return false
}

// FilterEntries returns the entries dated in the given year and zero-based
// month, in stored order.
func FilterEntries(entries []TimeEntry, year, month int) []TimeEntry {
	out := []TimeEntry{}
	for _, e := range entries {
		if e.InPeriod(year, month) {
			out = append(out, e)
		}
	}
	return out
}
