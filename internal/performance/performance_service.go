package performance

import (
	"context"
	"database/sql"
	"time"

	performanceerrors "humanage/internal/performance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=performance_service.go -destination=mock/performance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]ReviewResponse, error)
	GetByID(ctx context.Context, id string) (ReviewResponse, error)
	Update(ctx context.Context, id string, req UpdateReviewRequest) (ReviewResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("performance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("performance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func validRating(rating string) bool {
	switch rating {
	case RatingExcellent, RatingGood, RatingSatisfactory, RatingNeedsImprovement:
		return true
	}
	return false
}

func (s *service) Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error) {
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ReviewResponse{}, performanceerrors.ErrInvalidEmployeeID
	}
	reviewDate, err := time.Parse("2006-01-02", req.ReviewDate)
	if err != nil {
		return ReviewResponse{}, performanceerrors.ErrInvalidReviewDate
	}
	if !validRating(req.Rating) {
		return ReviewResponse{}, performanceerrors.ErrInvalidRating
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create review begin tx failed", zap.Error(err))
		return ReviewResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &PerformanceReview{
		ID:           uuid.New(),
		EmployeeID:   empID,
		ReviewDate:   reviewDate,
		Period:       req.Period,
		Rating:       req.Rating,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Goals:        req.Goals,
		ReviewerName: req.ReviewerName,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create review persist failed", zap.Error(err))
		return ReviewResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return ReviewResponse{}, err
	}

	s.logger.Info("performance review created",
		zap.String("review_id", row.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("rating", row.Rating),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]ReviewResponse, error) {
	var (
		rows []PerformanceReview
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAll(ctx)
	} else {
		if _, parseErr := uuid.Parse(actorEmployeeID); parseErr != nil {
			return nil, performanceerrors.ErrReviewNotFound
		}
		rows, err = s.repo.FindAllByEmployee(ctx, actorEmployeeID)
	}
	if err != nil {
		s.logger.Error("get reviews failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ReviewResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ReviewResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ReviewResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateReviewRequest) (ReviewResponse, error) {
	reviewDate, err := time.Parse("2006-01-02", req.ReviewDate)
	if err != nil {
		return ReviewResponse{}, performanceerrors.ErrInvalidReviewDate
	}
	if !validRating(req.Rating) {
		return ReviewResponse{}, performanceerrors.ErrInvalidRating
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update review begin tx failed", zap.Error(err))
		return ReviewResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ReviewResponse{}, mapRepositoryError(err)
	}

	row.ReviewDate = reviewDate
	row.Period = req.Period
	row.Rating = req.Rating
	row.Strengths = req.Strengths
	row.Improvements = req.Improvements
	row.Goals = req.Goals
	row.ReviewerName = req.ReviewerName

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("update review persist failed", zap.Error(err))
		return ReviewResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return ReviewResponse{}, err
	}

	s.logger.Info("performance review updated",
		zap.String("review_id", id),
		zap.String("rating", row.Rating),
	)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("performance review deleted", zap.String("review_id", id))
	return nil
}

func mapToResponse(r PerformanceReview) ReviewResponse {
	resp := ReviewResponse{
		ID:           r.ID.String(),
		EmployeeID:   r.EmployeeID.String(),
		ReviewDate:   r.ReviewDate.Format("2006-01-02"),
		Period:       r.Period,
		Rating:       r.Rating,
		Strengths:    r.Strengths,
		Improvements: r.Improvements,
		Goals:        r.Goals,
		ReviewerName: r.ReviewerName,
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.FullName
	}
	return resp
}
