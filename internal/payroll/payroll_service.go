package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"humanage/internal/events"
	"humanage/internal/messaging/kafka"
	"humanage/internal/paycalc"
	payrollerrors "humanage/internal/payroll/errors"
	"humanage/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusPaid       = "Paid"
)

// RateSource resolves an employee's current daily rate. The employee service
// satisfies it.
type RateSource interface {
	GetDailyRate(ctx context.Context, employeeID string) (decimal.Decimal, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	Create(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rates  RateSource
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rates RateSource, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, rates, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	rates RateSource,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, rates: rates, outbox: outboxRepo, logger: l}
}

// validateRequest normalizes the form and rejects anything the engine would
// silently miscompute: a malformed period, days outside the calendar month,
// or negative money/hour fields.
func validateRequest(req CreatePayrollRequest) error {
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return payrollerrors.ErrInvalidEmployeeID
	}

	period, err := time.Parse("2006-01", req.Period)
	if err != nil {
		return payrollerrors.ErrInvalidPeriodFormat
	}

	daysInPeriod := period.AddDate(0, 1, -1).Day()
	if req.DaysOfWork <= 0 || req.DaysOfWork > daysInPeriod {
		return payrollerrors.ErrInvalidDaysOfWork
	}

	for _, v := range []decimal.Decimal{
		req.NightDiffHours, req.RegularOTHours, req.RestDayOTHours,
		req.HolidayOTHours, req.HolidayWorkedDays, req.Allowances, req.Bonus,
		req.LateHours, req.AbsenceDays, req.SSSLoan, req.PagIbigLoan,
		req.SalaryLoan, req.CashAdvance, req.HMOPremium, req.OtherDeductions,
	} {
		if v.IsNegative() {
			return payrollerrors.ErrNegativeAmount
		}
	}

	return nil
}

func toEngineInput(req CreatePayrollRequest) paycalc.PayrollInput {
	in := paycalc.PayrollInput{
		EmployeeID: req.EmployeeID,
		Period:     req.Period,
		DaysOfWork: req.DaysOfWork,

		NightDiffHours:    req.NightDiffHours,
		RegularOTHours:    req.RegularOTHours,
		RestDayOTHours:    req.RestDayOTHours,
		HolidayOTHours:    req.HolidayOTHours,
		HolidayWorkedDays: req.HolidayWorkedDays,

		Allowances: req.Allowances,
		Bonus:      req.Bonus,

		LateHours:   req.LateHours,
		AbsenceDays: req.AbsenceDays,

		SSSLoan:         req.SSSLoan,
		PagIbigLoan:     req.PagIbigLoan,
		SalaryLoan:      req.SalaryLoan,
		CashAdvance:     req.CashAdvance,
		HMOPremium:      req.HMOPremium,
		OtherDeductions: req.OtherDeductions,
	}
	if req.Notes != nil {
		in.Notes = *req.Notes
	}
	return in
}

func (s *service) compute(ctx context.Context, req CreatePayrollRequest) (paycalc.PayrollBreakdown, error) {
	if err := validateRequest(req); err != nil {
		return paycalc.PayrollBreakdown{}, err
	}

	dailyRate, err := s.rates.GetDailyRate(ctx, req.EmployeeID)
	if err != nil {
		return paycalc.PayrollBreakdown{}, err
	}

	return paycalc.ComputePayroll(toEngineInput(req), paycalc.Employee{DailyRate: dailyRate}), nil
}

func (s *service) Preview(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error) {
	b, err := s.compute(ctx, req)
	if err != nil {
		return PayrollResponse{}, err
	}

	row := buildRecord(uuid.Nil, uuid.Nil, req, b)
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create payroll requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("period", req.Period),
	)

	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}

	b, err := s.compute(ctx, req)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := buildRecord(uuid.New(), createdBy, req, b)
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create payroll persist failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := s.queueComputedEvent(ctx, tx, rid, row); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create payroll commit failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("create payroll success",
		zap.String("request_id", rid),
		zap.String("payroll_id", row.ID.String()),
		zap.String("period", row.Period),
		zap.String("net_pay", row.NetPay.StringFixed(2)),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]PayrollResponse, error) {
	var (
		rows []Payroll
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAll(ctx)
	} else {
		if _, parseErr := uuid.Parse(actorEmployeeID); parseErr != nil {
			return nil, payrollerrors.ErrPayrollNotFound
		}
		rows, err = s.repo.FindAllByEmployee(ctx, actorEmployeeID)
	}
	if err != nil {
		s.logger.Error("get payrolls failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

// Update overwrites the input snapshot and recomputes the whole breakdown
// from scratch; stored amounts are never patched piecemeal.
func (s *service) Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	b, err := s.compute(ctx, req)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	fresh := buildRecord(row.ID, row.CreatedBy, req, b)
	fresh.Status = row.Status
	fresh.PaidAt = row.PaidAt
	fresh.CreatedAt = row.CreatedAt
	fresh.Employee = row.Employee

	if err := qtx.Update(ctx, fresh); err != nil {
		s.logger.Error("update payroll persist failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := s.queueComputedEvent(ctx, tx, rid, fresh); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("update payroll success",
		zap.String("payroll_id", id),
		zap.String("net_pay", fresh.NetPay.StringFixed(2)),
	)
	return mapToResponse(*fresh), nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (PayrollResponse, error) {
	if req.Status == "" {
		return PayrollResponse{}, payrollerrors.ErrMissingStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	row.Status = req.Status
	if req.Status == StatusPaid && row.PaidAt == nil {
		now := time.Now().UTC()
		row.PaidAt = &now
	}
	if req.PaidAt != nil && *req.PaidAt != "" {
		paidAt, err := time.Parse(time.RFC3339, *req.PaidAt)
		if err == nil {
			row.PaidAt = &paidAt
		}
	}

	if err := qtx.Update(ctx, row); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll status updated",
		zap.String("payroll_id", id),
		zap.String("status", row.Status),
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

	s.logger.Info("payroll deleted", zap.String("payroll_id", id))
	return nil
}

func (s *service) queueComputedEvent(ctx context.Context, tx *sql.Tx, rid string, row *Payroll) error {
	if s.outbox == nil {
		return nil
	}

	event := events.PayrollComputedEvent{
		EventType:  "payroll_computed",
		RequestID:  rid,
		PayrollID:  row.ID.String(),
		EmployeeID: row.EmployeeID.String(),
		Period:     row.Period,
		NetPay:     row.NetPay.StringFixed(2),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll",
		AggregateID:   row.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollComputedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("payroll outbox persist failed",
			zap.String("payroll_id", row.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func buildRecord(id, createdBy uuid.UUID, req CreatePayrollRequest, b paycalc.PayrollBreakdown) *Payroll {
	return &Payroll{
		ID:         id,
		EmployeeID: uuid.MustParse(req.EmployeeID),
		Period:     req.Period,
		DaysOfWork: req.DaysOfWork,

		DailyRate:   b.DailyRate,
		HourlyRate:  b.HourlyRate,
		BasicSalary: b.BasicSalary,

		NightDiffHours:    req.NightDiffHours,
		RegularOTHours:    req.RegularOTHours,
		RestDayOTHours:    req.RestDayOTHours,
		HolidayOTHours:    req.HolidayOTHours,
		HolidayWorkedDays: req.HolidayWorkedDays,
		LateHours:         req.LateHours,
		AbsenceDays:       req.AbsenceDays,

		NightDiffAmount: b.NightDiffAmount,
		OvertimeHours:   b.OvertimeHours,
		OvertimeAmount:  b.OvertimeAmount,
		RestDayPremiums: b.RestDayPremiums,
		Allowances:      req.Allowances,
		Bonus:           req.Bonus,
		GrossPay:        b.GrossPay,

		SSS:            b.SSS,
		PhilHealth:     b.PhilHealth,
		PagIbig:        b.PagIbig,
		TaxableSalary:  b.TaxableSalary,
		WithholdingTax: b.WithholdingTax,
		IsBelowMinimum: b.IsBelowMinimum,

		LateDeduction:    b.LateDeduction,
		AbsenceDeduction: b.AbsenceDeduction,
		SSSLoan:          req.SSSLoan,
		PagIbigLoan:      req.PagIbigLoan,
		SalaryLoan:       req.SalaryLoan,
		CashAdvance:      req.CashAdvance,
		HMOPremium:       req.HMOPremium,
		OtherDeductions:  req.OtherDeductions,

		TotalDeductions: b.TotalDeductions,
		NetPay:          b.NetPay,

		Status:    StatusPending,
		Notes:     req.Notes,
		CreatedBy: createdBy,
	}
}

func mapToResponse(row Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:         row.ID.String(),
		EmployeeID: row.EmployeeID.String(),
		Period:     row.Period,
		DaysOfWork: row.DaysOfWork,

		DailyRate:   row.DailyRate.StringFixed(2),
		HourlyRate:  row.HourlyRate.StringFixed(2),
		BasicSalary: row.BasicSalary.StringFixed(2),

		NightDiffAmount: row.NightDiffAmount.StringFixed(2),
		OvertimeHours:   row.OvertimeHours.StringFixed(1),
		OvertimeAmount:  row.OvertimeAmount.StringFixed(2),
		RestDayPremiums: row.RestDayPremiums.StringFixed(2),
		Allowances:      row.Allowances.StringFixed(2),
		Bonus:           row.Bonus.StringFixed(2),
		GrossPay:        row.GrossPay.StringFixed(2),

		SSS:            row.SSS.StringFixed(2),
		PhilHealth:     row.PhilHealth.StringFixed(2),
		PagIbig:        row.PagIbig.StringFixed(2),
		TaxableSalary:  row.TaxableSalary.StringFixed(2),
		WithholdingTax: row.WithholdingTax.StringFixed(2),
		IsBelowMinimum: row.IsBelowMinimum,

		LateDeduction:    row.LateDeduction.StringFixed(2),
		AbsenceDeduction: row.AbsenceDeduction.StringFixed(2),
		SSSLoan:          row.SSSLoan.StringFixed(2),
		PagIbigLoan:      row.PagIbigLoan.StringFixed(2),
		SalaryLoan:       row.SalaryLoan.StringFixed(2),
		CashAdvance:      row.CashAdvance.StringFixed(2),
		HMOPremium:       row.HMOPremium.StringFixed(2),
		OtherDeductions:  row.OtherDeductions.StringFixed(2),

		TotalDeductions: row.TotalDeductions.StringFixed(2),
		NetPay:          row.NetPay.StringFixed(2),

		Status: row.Status,
		Notes:  row.Notes,
	}

	if row.ID == uuid.Nil {
		resp.ID = ""
	}
	if row.CreatedBy != uuid.Nil {
		resp.CreatedBy = row.CreatedBy.String()
	}
	if row.Employee != nil {
		resp.EmployeeName = row.Employee.FullName
	}
	if row.PaidAt != nil {
		v := row.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	return resp
}

func mapToListResponse(rows []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp
}
