package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "humanage/internal/attendance/errors"
	"humanage/internal/timekeeping"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	CreateManual(ctx context.Context, req ManualAttendanceRequest) (AttendanceResponse, error)
	Correct(ctx context.Context, id string, req CorrectAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	Summary(ctx context.Context, employeeID, period string) (PeriodSummary, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	sched  timekeeping.Schedule
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithSchedule(db, repo, timekeeping.DefaultSchedule(), time.Now, logger...)
}

// NewServiceWithSchedule lets callers override the work-day policy and the
// clock source. Tests pin both.
func NewServiceWithSchedule(
	db *sql.DB,
	repo Repository,
	sched timekeeping.Schedule,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if now == nil {
		now = time.Now
	}
	return &service{db: db, repo: repo, sched: sched, now: now, logger: l}
}

func (s *service) ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clock in begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	timeIn := now.Format("15:04")

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("clock in lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	m := timekeeping.PendingMetrics(timeIn, s.sched)

	source := req.Source
	if source == "" {
		source = "CLOCK"
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     empID,
		AttendanceDate: today,
		TimeIn:         timeIn,
		HoursWorked:    m.HoursWorked,
		LateHours:      m.LateHours,
		OvertimeHours:  m.OvertimeHours,
		UndertimeHours: m.UndertimeHours,
		Status:         m.Status,
		Source:         source,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("clock in persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock in recorded",
		zap.String("employee_id", employeeID),
		zap.String("time_in", timeIn),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clock out begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrClockInNotFound
		}
		s.logger.Error("clock out lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if row.TimeOut != "" {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	row.TimeOut = now.Format("15:04")
	if req.Notes != nil {
		row.Notes = req.Notes
	}
	s.applyMetrics(row)

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("clock out persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock out recorded",
		zap.String("employee_id", employeeID),
		zap.String("time_out", row.TimeOut),
		zap.String("hours_worked", row.HoursWorked.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) CreateManual(ctx context.Context, req ManualAttendanceRequest) (AttendanceResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}
	if !req.IsAbsent && req.TimeIn == "" {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidClock
	}
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("manual attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     empID,
		AttendanceDate: date,
		TimeIn:         req.TimeIn,
		TimeOut:        req.TimeOut,
		IsAbsent:       req.IsAbsent,
		Source:         "MANUAL",
		Notes:          req.Notes,
	}
	s.applyMetrics(row)

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("manual attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("manual attendance recorded",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) Correct(ctx context.Context, id string, req CorrectAttendanceRequest) (AttendanceResponse, error) {
	if !req.IsAbsent && req.TimeIn == "" {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidClock
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("correct attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	row.TimeIn = req.TimeIn
	row.TimeOut = req.TimeOut
	row.IsAbsent = req.IsAbsent
	row.Notes = req.Notes
	s.applyMetrics(row)

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("correct attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance corrected",
		zap.String("attendance_id", id),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]AttendanceResponse, error) {
	var (
		rows []Attendance
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAll(ctx)
	} else {
		if _, parseErr := uuid.Parse(actorEmployeeID); parseErr != nil {
			return nil, attendanceerrors.ErrAttendanceNotFound
		}
		rows, err = s.repo.FindAllByEmployee(ctx, actorEmployeeID)
	}
	if err != nil {
		s.logger.Error("get attendances failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Summary(ctx context.Context, employeeID, period string) (PeriodSummary, error) {
	from, err := time.Parse("2006-01", period)
	if err != nil {
		return PeriodSummary{}, attendanceerrors.ErrInvalidPeriod
	}
	to := from.AddDate(0, 1, -1)

	rows, err := s.repo.FindByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		s.logger.Error("summary query failed", zap.Error(err))
		return PeriodSummary{}, mapRepositoryError(err)
	}

	sum := PeriodSummary{EmployeeID: employeeID, Period: period}
	totalHours := decimal.Zero
	lateHours := decimal.Zero
	otHours := decimal.Zero
	utHours := decimal.Zero

	for _, r := range rows {
		if r.IsAbsent || r.Status == timekeeping.StatusAbsent {
			sum.AbsenceDays++
			continue
		}
		sum.DaysWorked++
		switch r.Status {
		case timekeeping.StatusLate:
			sum.LateDays++
		case timekeeping.StatusHalfDay:
			sum.HalfDays++
		}
		totalHours = totalHours.Add(r.HoursWorked)
		lateHours = lateHours.Add(r.LateHours)
		otHours = otHours.Add(r.OvertimeHours)
		utHours = utHours.Add(r.UndertimeHours)
	}

	sum.TotalHours = totalHours.StringFixed(1)
	sum.LateHours = lateHours.StringFixed(1)
	sum.OvertimeHours = otHours.StringFixed(1)
	sum.UndertimeHours = utHours.StringFixed(1)
	return sum, nil
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

	s.logger.Info("attendance deleted", zap.String("attendance_id", id))
	return nil
}

// applyMetrics rederives every computed column from the raw clock pair. A
// record without a checkout keeps pending metrics, never a derived Half Day.
func (s *service) applyMetrics(row *Attendance) {
	var m timekeeping.Metrics
	switch {
	case row.IsAbsent:
		m = timekeeping.AbsentMetrics()
	case row.TimeOut == "":
		m = timekeeping.PendingMetrics(row.TimeIn, s.sched)
	default:
		m = timekeeping.CalculateMetrics(row.TimeIn, row.TimeOut, s.sched)
	}
	row.HoursWorked = m.HoursWorked
	row.LateHours = m.LateHours
	row.OvertimeHours = m.OvertimeHours
	row.UndertimeHours = m.UndertimeHours
	row.Status = m.Status
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		TimeIn:         a.TimeIn,
		TimeOut:        a.TimeOut,
		HoursWorked:    a.HoursWorked.StringFixed(1),
		LateHours:      a.LateHours.StringFixed(1),
		OvertimeHours:  a.OvertimeHours.StringFixed(1),
		UndertimeHours: a.UndertimeHours.StringFixed(1),
		Status:         a.Status,
		IsAbsent:       a.IsAbsent,
		Source:         a.Source,
		Notes:          a.Notes,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}
