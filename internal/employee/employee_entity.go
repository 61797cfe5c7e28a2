package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber   string    `gorm:"type:varchar(20);uniqueIndex:uq_employee_number"`
	FullName         string
	Email            string `gorm:"uniqueIndex:uq_employee_email"`
	Phone            string
	Department       string          `gorm:"type:varchar(100)"`
	Position         string          `gorm:"type:varchar(100)"`
	DailyRate        decimal.Decimal `gorm:"type:numeric(12,2)"`
	HireDate         time.Time
	EmploymentStatus string `gorm:"type:varchar(30);default:'Regular'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
