package payroll

import "github.com/shopspring/decimal"

// CreatePayrollRequest is the full input form for one employee-period run.
// Decimal fields accept both JSON numbers and strings; a blank field is zero.
type CreatePayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required"`
	DaysOfWork int    `json:"days_of_work" binding:"required"`

	NightDiffHours    decimal.Decimal `json:"night_diff_hours"`
	RegularOTHours    decimal.Decimal `json:"regular_ot_hours"`
	RestDayOTHours    decimal.Decimal `json:"rest_day_ot_hours"`
	HolidayOTHours    decimal.Decimal `json:"holiday_ot_hours"`
	HolidayWorkedDays decimal.Decimal `json:"holiday_worked_days"`

	Allowances decimal.Decimal `json:"allowances"`
	Bonus      decimal.Decimal `json:"bonus"`

	LateHours   decimal.Decimal `json:"late_hours"`
	AbsenceDays decimal.Decimal `json:"absence_days"`

	SSSLoan         decimal.Decimal `json:"sss_loan"`
	PagIbigLoan     decimal.Decimal `json:"pagibig_loan"`
	SalaryLoan      decimal.Decimal `json:"salary_loan"`
	CashAdvance     decimal.Decimal `json:"cash_advance"`
	HMOPremium      decimal.Decimal `json:"hmo_premium"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`

	Notes *string `json:"notes"`
}

// UpdatePayrollRequest carries the same form: an update is a full recompute,
// never a partial patch of stored amounts.
type UpdatePayrollRequest = CreatePayrollRequest

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	PaidAt *string `json:"paid_at"`
}

type PayrollResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Period       string `json:"period"`
	DaysOfWork   int    `json:"days_of_work"`

	DailyRate   string `json:"daily_rate"`
	HourlyRate  string `json:"hourly_rate"`
	BasicSalary string `json:"basic_salary"`

	NightDiffAmount string `json:"night_diff_amount"`
	OvertimeHours   string `json:"overtime_hours"`
	OvertimeAmount  string `json:"overtime_amount"`
	RestDayPremiums string `json:"rest_day_premiums"`
	Allowances      string `json:"allowances"`
	Bonus           string `json:"bonus"`
	GrossPay        string `json:"gross_pay"`

	SSS            string `json:"sss"`
	PhilHealth     string `json:"philhealth"`
	PagIbig        string `json:"pagibig"`
	TaxableSalary  string `json:"taxable_salary"`
	WithholdingTax string `json:"withholding_tax"`
	IsBelowMinimum bool   `json:"is_below_minimum"`

	LateDeduction    string `json:"late_deduction"`
	AbsenceDeduction string `json:"absence_deduction"`
	SSSLoan          string `json:"sss_loan"`
	PagIbigLoan      string `json:"pagibig_loan"`
	SalaryLoan       string `json:"salary_loan"`
	CashAdvance      string `json:"cash_advance"`
	HMOPremium       string `json:"hmo_premium"`
	OtherDeductions  string `json:"other_deductions"`

	TotalDeductions string `json:"total_deductions"`
	NetPay          string `json:"net_pay"`

	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedBy string  `json:"created_by,omitempty"`
	PaidAt    *string `json:"paid_at,omitempty"`
}
