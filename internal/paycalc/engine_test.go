package paycalc

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputePayroll_FullBreakdown(t *testing.T) {
	in := PayrollInput{
		EmployeeID:        "emp-1",
		Period:            "2025-06",
		DaysOfWork:        22,
		NightDiffHours:    dec("10"),
		RegularOTHours:    dec("5"),
		RestDayOTHours:    dec("2"),
		HolidayOTHours:    dec("1"),
		HolidayWorkedDays: dec("1"),
		Allowances:        dec("1500"),
		Bonus:             dec("2000"),
		LateHours:         dec("2"),
		AbsenceDays:       dec("1"),
		SSSLoan:           dec("500"),
		CashAdvance:       dec("1000"),
	}

	b := ComputePayroll(in, Employee{DailyRate: dec("1000")})

	assert.True(t, b.DailyRate.Equal(dec("1000")))
	assert.True(t, b.HourlyRate.Equal(dec("125")))
	assert.True(t, b.BasicSalary.Equal(dec("22000")))
	assert.True(t, b.NightDiffAmount.Equal(dec("125")), "night diff %s", b.NightDiffAmount)
	assert.True(t, b.OvertimeHours.Equal(dec("8")))
	// 5*125*1.25 + 2*125*1.30 + 1*125*2.0
	assert.True(t, b.OvertimeAmount.Equal(dec("1356.25")), "overtime %s", b.OvertimeAmount)
	assert.True(t, b.RestDayPremiums.Equal(dec("2000")))
	assert.True(t, b.GrossPay.Equal(dec("26981.25")), "gross %s", b.GrossPay)
	assert.True(t, b.LateDeduction.Equal(dec("250")))
	assert.True(t, b.AbsenceDeduction.Equal(dec("1000")))
	// contributions on adjusted gross 25731.25
	assert.True(t, b.SSS.Equal(dec("1286.56")), "sss %s", b.SSS)
	assert.True(t, b.PhilHealth.Equal(dec("643.28")), "philhealth %s", b.PhilHealth)
	assert.True(t, b.PagIbig.Equal(dec("200")))
	assert.True(t, b.TaxableSalary.Equal(dec("23601.41")), "taxable %s", b.TaxableSalary)
	assert.False(t, b.IsBelowMinimum)
	assert.True(t, b.WithholdingTax.Equal(dec("553.68")), "tax %s", b.WithholdingTax)
	assert.True(t, b.TotalDeductions.Equal(dec("5433.52")), "total deductions %s", b.TotalDeductions)
	assert.True(t, b.NetPay.Equal(dec("23547.73")), "net %s", b.NetPay)
}

func TestComputePayroll_MinimumWageExemption(t *testing.T) {
	in := PayrollInput{DaysOfWork: 26, Allowances: dec("50000")}

	b := ComputePayroll(in, Employee{DailyRate: dec("685")})

	assert.True(t, b.IsBelowMinimum)
	assert.True(t, b.WithholdingTax.IsZero())
}

func TestComputePayroll_ZeroInputSnapshot(t *testing.T) {
	// Blank form fields coerce to zero; the engine still computes a complete,
	// internally consistent breakdown.
	b := ComputePayroll(PayrollInput{}, Employee{})

	assert.True(t, b.GrossPay.IsZero())
	assert.True(t, b.TotalDeductions.IsZero())
	assert.True(t, b.NetPay.IsZero())
}

func TestComputePayroll_Idempotent(t *testing.T) {
	in := PayrollInput{
		DaysOfWork:     20,
		RegularOTHours: dec("3.5"),
		Allowances:     dec("2500"),
		LateHours:      dec("1.2"),
		SalaryLoan:     dec("750"),
	}
	emp := Employee{DailyRate: dec("857.14")}

	first := ComputePayroll(in, emp)
	second := ComputePayroll(in, emp)

	assert.Equal(t, first, second)
}

func randAmount(r *rand.Rand, maxCents int64) decimal.Decimal {
	return decimal.New(r.Int63n(maxCents), -2)
}

func TestComputePayroll_Invariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		in := PayrollInput{
			DaysOfWork:        1 + r.Intn(31),
			NightDiffHours:    randAmount(r, 8000),
			RegularOTHours:    randAmount(r, 8000),
			RestDayOTHours:    randAmount(r, 4000),
			HolidayOTHours:    randAmount(r, 4000),
			HolidayWorkedDays: decimal.NewFromInt(r.Int63n(4)),
			Allowances:        randAmount(r, 2000000),
			Bonus:             randAmount(r, 2000000),
			LateHours:         randAmount(r, 4000),
			AbsenceDays:       decimal.NewFromInt(r.Int63n(10)),
			SSSLoan:           randAmount(r, 500000),
			PagIbigLoan:       randAmount(r, 500000),
			SalaryLoan:        randAmount(r, 500000),
			CashAdvance:       randAmount(r, 500000),
			HMOPremium:        randAmount(r, 200000),
			OtherDeductions:   randAmount(r, 200000),
		}
		emp := Employee{DailyRate: randAmount(r, 500000)}

		b := ComputePayroll(in, emp)

		// net pay identity
		wantNet := b.GrossPay.Add(in.Bonus).Sub(b.TotalDeductions).Round(2)
		assert.True(t, b.NetPay.Equal(wantNet),
			"net pay identity broken: net=%s gross=%s bonus=%s deductions=%s",
			b.NetPay, b.GrossPay, in.Bonus, b.TotalDeductions)

		// total deductions is the exact sum of its itemized components
		wantTotal := b.SSS.
			Add(b.PhilHealth).
			Add(b.PagIbig).
			Add(b.WithholdingTax).
			Add(b.LateDeduction).
			Add(b.AbsenceDeduction).
			Add(in.SSSLoan).
			Add(in.PagIbigLoan).
			Add(in.SalaryLoan).
			Add(in.CashAdvance).
			Add(in.HMOPremium).
			Add(in.OtherDeductions)
		assert.True(t, b.TotalDeductions.Equal(wantTotal),
			"itemized deductions do not sum: total=%s want=%s", b.TotalDeductions, wantTotal)

		// overtime and undertime drivers stay non-negative
		assert.False(t, b.GrossPay.IsNegative(), "gross pay went negative")

		// recomputation drift
		assert.Equal(t, b, ComputePayroll(in, emp))
	}
}
