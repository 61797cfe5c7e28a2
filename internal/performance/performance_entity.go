package performance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RatingExcellent        = "Excellent"
	RatingGood             = "Good"
	RatingSatisfactory     = "Satisfactory"
	RatingNeedsImprovement = "Needs Improvement"
)

type PerformanceReview struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	ReviewDate   time.Time      `gorm:"column:review_date;type:date;not null"`
	Period       string         `gorm:"column:period;type:varchar(30);not null"`
	Rating       string         `gorm:"column:rating;type:varchar(30);not null"`
	Strengths    *string        `gorm:"column:strengths;type:text"`
	Improvements *string        `gorm:"column:improvements;type:text"`
	Goals        *string        `gorm:"column:goals;type:text"`
	ReviewerName string         `gorm:"column:reviewer_name;type:varchar(100);not null"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee     *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (PerformanceReview) TableName() string {
	return "performance_reviews"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
