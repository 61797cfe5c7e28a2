package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"humanage/internal/payroll"
	payrollerrors "humanage/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	payroll.Service

	previewFn func(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)
	createFn  func(ctx context.Context, actorID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)
	getAllFn  func(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]payroll.PayrollResponse, error)
	getByIDFn func(ctx context.Context, id string) (payroll.PayrollResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakePayrollService) Preview(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	return f.previewFn(ctx, req)
}

func (f *fakePayrollService) Create(ctx context.Context, actorID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	return f.createFn(ctx, actorID, req)
}

func (f *fakePayrollService) GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]payroll.PayrollResponse, error) {
	return f.getAllFn(ctx, actorEmployeeID, canReadAll)
}

func (f *fakePayrollService) GetByID(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePayrollService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func createBody(employeeID string) string {
	return `{"employee_id":"` + employeeID + `","period":"2025-06","days_of_work":22}`
}

func TestPayrollHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		createFn: func(ctx context.Context, aid string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
			assert.Equal(t, actorID, aid)
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, "2025-06", req.Period)
			return payroll.PayrollResponse{
				ID:         uuid.New().String(),
				EmployeeID: req.EmployeeID,
				Period:     req.Period,
				NetPay:     "23547.73",
				Status:     payroll.StatusPending,
				CreatedBy:  aid,
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(createBody(employeeID)))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", actorID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	assert.Contains(t, string(env.Data), "23547.73")
}

func TestPayrollHandler_Create_Conflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		createFn: func(ctx context.Context, aid string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrPayrollAlreadyExists
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(createBody(uuid.New().String())))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", uuid.New().String())

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestPayrollHandler_Create_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := payroll.NewHandler(&fakePayrollService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(`{"period":"2025-06"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestPayrollHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		previewFn: func(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{Period: req.Period, GrossPay: "26981.25", NetPay: "23547.73"}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/preview", strings.NewReader(createBody(uuid.New().String())))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "26981.25")
}

func TestPayrollHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		getAllFn: func(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]payroll.PayrollResponse, error) {
			if canReadAll {
				return []payroll.PayrollResponse{{Period: "2025-06"}, {Period: "2025-05"}}, nil
			}
			assert.Equal(t, employeeID, actorEmployeeID)
			return []payroll.PayrollResponse{{Period: "2025-06", EmployeeID: actorEmployeeID}}, nil
		},
	}
	h := payroll.NewHandler(svc)

	t.Run("hr sees every payroll", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/payrolls", nil)
		c.Set("role", "HR")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2025-05")
	})

	t.Run("employee sees only their own", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/payrolls", nil)
		c.Set("role", "EMPLOYEE")
		c.Set("employee_id", employeeID)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "2025-05")
	})
}

func TestPayrollHandler_GetById_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		getByIDFn: func(ctx context.Context, id string) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	id := uuid.New().String()
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/"+id, nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}

	h.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestPayrollHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	id := uuid.New().String()
	c.Request = httptest.NewRequest(http.MethodDelete, "/payrolls/"+id, nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
