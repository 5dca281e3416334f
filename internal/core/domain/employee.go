package domain

import "errors"

// DefaultPosition is assigned when an employee is created without one.
const DefaultPosition = "Pracownik"

// DefaultHourlyRate applies whenever an employee's rate is zero or unset.
// Zero and unset are deliberately not distinguished.
const DefaultHourlyRate = 25

var ErrEmployeeNotFound = errors.New("employee not found")

// Employee is a payroll subject managed by the crew lead.
type Employee struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"imie"`
	LastName   string  `json:"nazwisko"`
	Position   string  `json:"stanowisko"`
	HourlyRate float64 `json:"stawka"`
	CreatedAt  string  `json:"data_dodania"`
}

// EffectiveRate returns the hourly rate used in payroll math, falling back
// to DefaultHourlyRate when the stored rate is zero or unset.
func (e *Employee) EffectiveRate() float64 {
	if e.HourlyRate == 0 {
		return DefaultHourlyRate
	}
	return e.HourlyRate
}
