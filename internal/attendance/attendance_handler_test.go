package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"humanage/internal/attendance"
	attendanceerrors "humanage/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	attendance.Service

	clockInFn func(ctx context.Context, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error)
	summaryFn func(ctx context.Context, employeeID, period string) (attendance.PeriodSummary, error)
}

func (s *stubService) ClockIn(ctx context.Context, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	return s.clockInFn(ctx, employeeID, req)
}

func (s *stubService) Summary(ctx context.Context, employeeID, period string) (attendance.PeriodSummary, error) {
	return s.summaryFn(ctx, employeeID, period)
}

func TestHandler_ClockIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.New().String()

	svc := &stubService{
		clockInFn: func(ctx context.Context, eid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, employeeID, eid)
			return attendance.AttendanceResponse{ID: uuid.New().String(), EmployeeID: eid, Status: "Present"}, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", employeeID)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/clock-in", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.ClockIn(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "\"Present\"")
}

func TestHandler_ClockIn_NoLinkedEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := attendance.NewHandler(&stubService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/clock-in", nil)
	h.ClockIn(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.New().String()

	svc := &stubService{
		summaryFn: func(ctx context.Context, eid, period string) (attendance.PeriodSummary, error) {
			if period != "2025-03" {
				return attendance.PeriodSummary{}, attendanceerrors.ErrInvalidPeriod
			}
			return attendance.PeriodSummary{EmployeeID: eid, Period: period, DaysWorked: 22}, nil
		},
	}
	h := attendance.NewHandler(svc)

	t.Run("hr reads any employee", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("role", "HR")
		c.Request = httptest.NewRequest(http.MethodGet, "/attendances/summary?employee_id="+employeeID+"&period=2025-03", nil)
		h.Summary(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "\"days_worked\":22")
	})

	t.Run("employee cannot read another employee", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("role", "EMPLOYEE")
		c.Set("employee_id", uuid.New().String())
		c.Request = httptest.NewRequest(http.MethodGet, "/attendances/summary?employee_id="+employeeID+"&period=2025-03", nil)
		h.Summary(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing params", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("role", "HR")
		c.Request = httptest.NewRequest(http.MethodGet, "/attendances/summary", nil)
		h.Summary(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
