package performance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"humanage/internal/performance"
	performanceerrors "humanage/internal/performance/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	performance.Service

	createFn  func(ctx context.Context, req performance.CreateReviewRequest) (performance.ReviewResponse, error)
	getAllFn  func(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]performance.ReviewResponse, error)
	getByIDFn func(ctx context.Context, id string) (performance.ReviewResponse, error)
}

func (s *stubService) Create(ctx context.Context, req performance.CreateReviewRequest) (performance.ReviewResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubService) GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]performance.ReviewResponse, error) {
	return s.getAllFn(ctx, actorEmployeeID, canReadAll)
}

func (s *stubService) GetByID(ctx context.Context, id string) (performance.ReviewResponse, error) {
	return s.getByIDFn(ctx, id)
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.New().String()

	svc := &stubService{
		createFn: func(ctx context.Context, req performance.CreateReviewRequest) (performance.ReviewResponse, error) {
			assert.Equal(t, employeeID, req.EmployeeID)
			return performance.ReviewResponse{
				ID:           uuid.New().String(),
				EmployeeID:   req.EmployeeID,
				ReviewDate:   req.ReviewDate,
				Period:       req.Period,
				Rating:       req.Rating,
				ReviewerName: req.ReviewerName,
			}, nil
		},
	}
	h := performance.NewHandler(svc)

	body := `{"employee_id":"` + employeeID + `","review_date":"2025-04-15",` +
		`"period":"Q1 2025","rating":"Needs Improvement","reviewer_name":"Maria Santos"}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/performance-reviews", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "\"Needs Improvement\"")
}

func TestHandler_Create_RejectsUnknownRating(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := performance.NewHandler(&stubService{})

	body := `{"employee_id":"` + uuid.New().String() + `","review_date":"2025-04-15",` +
		`"period":"Q1 2025","rating":"Outstanding","reviewer_name":"Maria Santos"}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/performance-reviews", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rows := []performance.ReviewResponse{
		{ID: uuid.New().String(), EmployeeName: "Ana Reyes", Period: "Q1 2025", Rating: performance.RatingExcellent},
		{ID: uuid.New().String(), EmployeeName: "Jose Cruz", Period: "Q1 2025", Rating: performance.RatingGood},
	}
	svc := &stubService{
		getAllFn: func(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]performance.ReviewResponse, error) {
			assert.True(t, canReadAll)
			return rows, nil
		},
	}
	h := performance.NewHandler(svc)

	t.Run("hr sees every review", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("role", "HR")
		c.Request = httptest.NewRequest(http.MethodGet, "/performance-reviews", nil)
		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ana Reyes")
		assert.Contains(t, w.Body.String(), "Jose Cruz")
	})

	t.Run("q filters on employee name", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("role", "HR")
		c.Request = httptest.NewRequest(http.MethodGet, "/performance-reviews?q=ana", nil)
		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ana Reyes")
		assert.NotContains(t, w.Body.String(), "Jose Cruz")
	})

	t.Run("q filters on rating", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("role", "HR")
		c.Request = httptest.NewRequest(http.MethodGet, "/performance-reviews?q=excellent", nil)
		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ana Reyes")
		assert.NotContains(t, w.Body.String(), "Jose Cruz")
	})
}

func TestHandler_GetById_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &stubService{
		getByIDFn: func(ctx context.Context, id string) (performance.ReviewResponse, error) {
			return performance.ReviewResponse{}, performanceerrors.ErrReviewNotFound
		},
	}
	h := performance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/performance-reviews/"+uuid.New().String(), nil)
	h.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
