package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payroll is one computed employee-period pay statement. Every monetary
// column is stored exactly as computed so a stored row never disagrees with
// its own breakdown.
type Payroll struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period"`
	Period     string       `gorm:"type:varchar(7);not null;uniqueIndex:uq_payroll_employee_period"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`

	DaysOfWork int `gorm:"not null"`

	// Rates snapshotted at computation time
	DailyRate   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	HourlyRate  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	BasicSalary decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	// Premium inputs
	NightDiffHours    decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	RegularOTHours    decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	RestDayOTHours    decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	HolidayOTHours    decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	HolidayWorkedDays decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`
	LateHours         decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	AbsenceDays       decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`

	// Earnings
	NightDiffAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	OvertimeHours   decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	OvertimeAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	RestDayPremiums decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Allowances      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Bonus           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	GrossPay        decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	// Statutory deductions
	SSS            decimal.Decimal `gorm:"column:sss;type:numeric(12,2);not null"`
	PhilHealth     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PagIbig        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxableSalary  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	WithholdingTax decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsBelowMinimum bool            `gorm:"not null;default:false"`

	// Attendance and voluntary deductions
	LateDeduction    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	AbsenceDeduction decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	SSSLoan          decimal.Decimal `gorm:"column:sss_loan;type:numeric(12,2);not null;default:0"`
	PagIbigLoan      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	SalaryLoan       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CashAdvance      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	HMOPremium       decimal.Decimal `gorm:"column:hmo_premium;type:numeric(12,2);not null;default:0"`
	OtherDeductions  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	TotalDeductions decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NetPay          decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Status    string     `gorm:"type:varchar(20);not null;default:'Pending'"`
	Notes     *string    `gorm:"type:text"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`
	PaidAt    *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
