package paycalc

import "github.com/shopspring/decimal"

// Premium multipliers over the base hourly/daily rate.
var (
	nightDiffRate           = decimal.RequireFromString("0.10")
	regularOTMultiplier     = decimal.RequireFromString("1.25")
	restDayOTMultiplier     = decimal.RequireFromString("1.30")
	holidayOTMultiplier     = decimal.RequireFromString("2.0")
	holidayWorkedMultiplier = decimal.RequireFromString("2.0")
)

// PayrollInput is the complete input snapshot for one employee-period
// computation. Zero values stand in for blank form fields, so a partially
// filled form still computes without coercion errors.
type PayrollInput struct {
	EmployeeID string
	Period     string
	DaysOfWork int

	// Premium hours and days
	NightDiffHours    decimal.Decimal
	RegularOTHours    decimal.Decimal
	RestDayOTHours    decimal.Decimal
	HolidayOTHours    decimal.Decimal
	HolidayWorkedDays decimal.Decimal

	Allowances decimal.Decimal
	Bonus      decimal.Decimal

	// Deduction drivers
	LateHours   decimal.Decimal
	AbsenceDays decimal.Decimal

	// Loan and other fixed deductions
	SSSLoan         decimal.Decimal
	PagIbigLoan     decimal.Decimal
	SalaryLoan      decimal.Decimal
	CashAdvance     decimal.Decimal
	HMOPremium      decimal.Decimal
	OtherDeductions decimal.Decimal

	Notes string
}

// PayrollBreakdown is the full computed pay statement. It always satisfies
//
//	NetPay = GrossPay + Bonus - TotalDeductions
//
// with TotalDeductions the exact sum of every itemized deduction field.
type PayrollBreakdown struct {
	DailyRate   decimal.Decimal
	HourlyRate  decimal.Decimal
	BasicSalary decimal.Decimal

	NightDiffAmount decimal.Decimal
	OvertimeHours   decimal.Decimal
	OvertimeAmount  decimal.Decimal
	RestDayPremiums decimal.Decimal
	GrossPay        decimal.Decimal

	LateDeduction    decimal.Decimal
	AbsenceDeduction decimal.Decimal

	SSS            decimal.Decimal
	PhilHealth     decimal.Decimal
	PagIbig        decimal.Decimal
	TaxableSalary  decimal.Decimal
	WithholdingTax decimal.Decimal
	IsBelowMinimum bool

	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

// ComputePayroll turns one input snapshot into a full breakdown.
//
// The step order matters: each monetary intermediate is rounded to two
// decimals before it feeds the next step, so recomputing the same snapshot is
// bit-for-bit reproducible. The function is total over its input domain and
// never fails; business-rule validation happens in the payroll service before
// it is called.
func ComputePayroll(in PayrollInput, emp Employee) PayrollBreakdown {
	rates := ResolveRates(emp, in.DaysOfWork)

	nightDiffAmt := in.NightDiffHours.Mul(rates.HourlyRate).Mul(nightDiffRate).Round(2)

	overtimeAmt := in.RegularOTHours.Mul(rates.HourlyRate).Mul(regularOTMultiplier).
		Add(in.RestDayOTHours.Mul(rates.HourlyRate).Mul(restDayOTMultiplier)).
		Add(in.HolidayOTHours.Mul(rates.HourlyRate).Mul(holidayOTMultiplier)).
		Round(2)
	overtimeHrs := in.RegularOTHours.Add(in.RestDayOTHours).Add(in.HolidayOTHours)

	restDayPremiums := in.HolidayWorkedDays.Mul(rates.DailyRate).Mul(holidayWorkedMultiplier).Round(2)

	grossPay := rates.BasicSalary.
		Add(nightDiffAmt).
		Add(overtimeAmt).
		Add(restDayPremiums).
		Add(in.Allowances).
		Round(2)

	lateDeduction := in.LateHours.Mul(rates.HourlyRate).Round(2)
	absenceDeduction := in.AbsenceDays.Mul(rates.DailyRate).Round(2)

	// Contribution base: premiums and allowances bear contributions, late and
	// absence reduce the base before contributions are computed.
	adjustedGross := grossPay.Sub(lateDeduction).Sub(absenceDeduction).Round(2)

	sss := SSS(adjustedGross)
	philHealth := PhilHealth(adjustedGross)
	pagIbig := PagIbig(adjustedGross)

	taxableSalary := adjustedGross.Sub(sss).Sub(philHealth).Sub(pagIbig).Round(2)

	isBelowMinimum := IsBelowMinimumWage(rates.DailyRate)
	withholdingTax := WithholdingTax(taxableSalary, isBelowMinimum)

	totalDeductions := sss.
		Add(philHealth).
		Add(pagIbig).
		Add(withholdingTax).
		Add(lateDeduction).
		Add(absenceDeduction).
		Add(in.SSSLoan).
		Add(in.PagIbigLoan).
		Add(in.SalaryLoan).
		Add(in.CashAdvance).
		Add(in.HMOPremium).
		Add(in.OtherDeductions).
		Round(2)

	netPay := grossPay.Add(in.Bonus).Sub(totalDeductions).Round(2)

	return PayrollBreakdown{
		DailyRate:        rates.DailyRate,
		HourlyRate:       rates.HourlyRate,
		BasicSalary:      rates.BasicSalary,
		NightDiffAmount:  nightDiffAmt,
		OvertimeHours:    overtimeHrs,
		OvertimeAmount:   overtimeAmt,
		RestDayPremiums:  restDayPremiums,
		GrossPay:         grossPay,
		LateDeduction:    lateDeduction,
		AbsenceDeduction: absenceDeduction,
		SSS:              sss,
		PhilHealth:       philHealth,
		PagIbig:          pagIbig,
		TaxableSalary:    taxableSalary,
		WithholdingTax:   withholdingTax,
		IsBelowMinimum:   isBelowMinimum,
		TotalDeductions:  totalDeductions,
		NetPay:           netPay,
	}
}
