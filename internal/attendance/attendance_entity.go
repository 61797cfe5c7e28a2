package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Attendance struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time       `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	TimeIn         string          `gorm:"column:time_in;type:varchar(5)"`
	TimeOut        string          `gorm:"column:time_out;type:varchar(5)"`
	HoursWorked    decimal.Decimal `gorm:"column:hours_worked;type:numeric(5,1);not null;default:0"`
	LateHours      decimal.Decimal `gorm:"column:late_hours;type:numeric(5,1);not null;default:0"`
	OvertimeHours  decimal.Decimal `gorm:"column:overtime_hours;type:numeric(5,1);not null;default:0"`
	UndertimeHours decimal.Decimal `gorm:"column:undertime_hours;type:numeric(5,1);not null;default:0"`
	Status         string          `gorm:"column:status;type:varchar(20);not null;default:Present"`
	IsAbsent       bool            `gorm:"column:is_absent;not null;default:false"`
	Source         string          `gorm:"column:source;type:varchar(30);not null;default:MANUAL"`
	Notes          *string         `gorm:"column:notes;type:text"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"column:deleted_at;index"`
	Employee       *EmployeeRef    `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
