package performance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=performance_repo.go -destination=mock/performance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *PerformanceReview) error
	FindByID(ctx context.Context, id string) (*PerformanceReview, error)
	FindAll(ctx context.Context) ([]PerformanceReview, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]PerformanceReview, error)
	Update(ctx context.Context, r *PerformanceReview) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, row *PerformanceReview) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PerformanceReview, error) {
	var row PerformanceReview
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&row, "id = ?", id).Error
	return &row, err
}

func (r *repository) FindAll(ctx context.Context) ([]PerformanceReview, error) {
	var rows []PerformanceReview
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("review_date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]PerformanceReview, error) {
	var rows []PerformanceReview
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("review_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, row *PerformanceReview) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&PerformanceReview{}, "id = ?", id).Error
}
