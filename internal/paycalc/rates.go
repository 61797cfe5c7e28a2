// Package paycalc is the payroll computation core: pure functions that turn a
// period's inputs into a full, auditable pay breakdown. Nothing in this
// package performs I/O or mutates its arguments; callers persist the results.
package paycalc

import "github.com/shopspring/decimal"

// Employee is the slice of the employee directory this core reads: the base
// daily pay rate. A zero value degrades to zero rates rather than erroring.
type Employee struct {
	DailyRate decimal.Decimal
}

const hoursPerWorkDay = 8

// Rates is the resolved pay-rate triple for one payroll period.
type Rates struct {
	DailyRate   decimal.Decimal
	HourlyRate  decimal.Decimal
	BasicSalary decimal.Decimal
}

// ResolveRates derives the hourly rate and period basic salary from the
// employee's daily rate. Monetary results are rounded to two decimals.
func ResolveRates(emp Employee, daysOfWork int) Rates {
	dailyRate := emp.DailyRate
	return Rates{
		DailyRate:   dailyRate,
		HourlyRate:  dailyRate.Div(decimal.NewFromInt(hoursPerWorkDay)).Round(2),
		BasicSalary: dailyRate.Mul(decimal.NewFromInt(int64(daysOfWork))).Round(2),
	}
}
