package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"humanage/internal/employee"
	employeeerrors "humanage/internal/employee/errors"
	"humanage/internal/events"
	"humanage/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	employee.Repository

	byID      map[string]*employee.Employee
	created   []*employee.Employee
	updated   []*employee.Employee
	deleted   []string
	createErr error
	findErr   error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]*employee.Employee{}}
}

func (f *fakeEmployeeRepo) WithTx(_ *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepo) Create(_ context.Context, empl *employee.Employee) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, empl)
	f.byID[empl.ID.String()] = empl
	return nil
}

func (f *fakeEmployeeRepo) FindAll(_ context.Context) ([]employee.Employee, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]employee.Employee, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) FindByID(_ context.Context, id string) (*employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) FindOptions(ctx context.Context) ([]employee.Employee, error) {
	return f.FindAll(ctx)
}

func (f *fakeEmployeeRepo) Update(_ context.Context, empl *employee.Employee) error {
	f.updated = append(f.updated, empl)
	f.byID[empl.ID.String()] = empl
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

type fakeCounterRepo struct {
	next int64
	err  error
}

func (f *fakeCounterRepo) GetNextValue(_ context.Context, _ string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.next++
	return f.next, nil
}

type fakeOutboxRepo struct {
	kafka.OutboxRepository
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(_ *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(_ context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}

func seedEmployee(repo *fakeEmployeeRepo, rate string) *employee.Employee {
	e := &employee.Employee{
		ID:               uuid.New(),
		EmployeeNumber:   "EMP-000042",
		FullName:         "Maria Santos",
		Email:            "maria@humanage.ph",
		Department:       "Engineering",
		Position:         "Developer",
		DailyRate:        decimal.RequireFromString(rate),
		HireDate:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EmploymentStatus: "Regular",
	}
	repo.byID[e.ID.String()] = e
	return e
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("auto-generates employee number and queues outbox event", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := newFakeEmployeeRepo()
		counter := &fakeCounterRepo{next: 6}
		outbox := &fakeOutboxRepo{}
		svc := employee.NewServiceWithOutbox(db, repo, counter, outbox, nil)

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:   "Juan Dela Cruz",
			Email:      "juan@humanage.ph",
			Department: "Operations",
			Position:   "Clerk",
			DailyRate:  "645.50",
			HireDate:   "2025-01-15",
		})

		require.NoError(t, err)
		assert.Equal(t, "EMP-000007", resp.EmployeeNumber)
		assert.Equal(t, "645.50", resp.DailyRate)
		assert.Equal(t, "80.69", resp.HourlyRate)
		assert.Equal(t, "Regular", resp.EmploymentStatus)

		require.Len(t, outbox.events, 1)
		assert.Equal(t, "employee_created", outbox.events[0].EventType)
		assert.Equal(t, events.EmployeeCreatedTopic, outbox.events[0].Topic)
		assert.Equal(t, resp.ID, outbox.events[0].AggregateID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keeps caller-supplied employee number", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := newFakeEmployeeRepo()
		svc := employee.NewService(db, repo, &fakeCounterRepo{}, nil)

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeNumber: "EMP-CUSTOM",
			FullName:       "Ana Reyes",
			Email:          "ana@humanage.ph",
			Department:     "Finance",
			Position:       "Analyst",
			DailyRate:      "1000",
			HireDate:       "2025-02-01",
		})

		require.NoError(t, err)
		assert.Equal(t, "EMP-CUSTOM", resp.EmployeeNumber)
	})

	t.Run("rejects negative daily rate before opening a tx", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		svc := employee.NewService(db, newFakeEmployeeRepo(), &fakeCounterRepo{}, nil)

		_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:   "Bad Rate",
			Email:      "bad@humanage.ph",
			Department: "X",
			Position:   "Y",
			DailyRate:  "-10",
			HireDate:   "2025-02-01",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDailyRate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects malformed hire date", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		svc := employee.NewService(db, newFakeEmployeeRepo(), &fakeCounterRepo{}, nil)

		_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:   "Bad Date",
			Email:      "bad@humanage.ph",
			Department: "X",
			Position:   "Y",
			DailyRate:  "1000",
			HireDate:   "15-01-2025",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})

	t.Run("maps unique email violation", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := newFakeEmployeeRepo()
		repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"}
		svc := employee.NewService(db, repo, &fakeCounterRepo{}, nil)

		_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:   "Dup",
			Email:      "maria@humanage.ph",
			Department: "X",
			Position:   "Y",
			DailyRate:  "1000",
			HireDate:   "2025-02-01",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("counter failure aborts the create", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		counter := &fakeCounterRepo{err: errors.New("counter unavailable")}
		svc := employee.NewService(db, newFakeEmployeeRepo(), counter, nil)

		_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:   "No Number",
			Email:      "none@humanage.ph",
			Department: "X",
			Position:   "Y",
			DailyRate:  "1000",
			HireDate:   "2025-02-01",
		})

		assert.Error(t, err)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	repo := newFakeEmployeeRepo()
	seeded := seedEmployee(repo, "685")
	svc := employee.NewService(nil, repo, &fakeCounterRepo{}, nil)

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, seeded.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "685.00", resp.DailyRate)
		assert.Equal(t, "85.63", resp.HourlyRate)
	})

	t.Run("not found maps to sentinel", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_GetDailyRate(t *testing.T) {
	ctx := context.Background()

	repo := newFakeEmployeeRepo()
	seeded := seedEmployee(repo, "1250.75")
	svc := employee.NewService(nil, repo, &fakeCounterRepo{}, nil)

	rate, err := svc.GetDailyRate(ctx, seeded.ID.String())
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1250.75")))

	_, err = svc.GetDailyRate(ctx, uuid.NewString())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeEmployeeRepo()
	seeded := seedEmployee(repo, "685")
	svc := employee.NewService(db, repo, &fakeCounterRepo{}, nil)

	resp, err := svc.Update(ctx, seeded.ID.String(), employee.UpdateEmployeeRequest{
		EmployeeNumber:   seeded.EmployeeNumber,
		FullName:         "Maria Santos-Lim",
		Email:            "maria@humanage.ph",
		Department:       "Engineering",
		Position:         "Senior Developer",
		DailyRate:        "900",
		HireDate:         "2024-03-01",
		EmploymentStatus: "Regular",
	})

	require.NoError(t, err)
	assert.Equal(t, "Maria Santos-Lim", resp.FullName)
	assert.Equal(t, "900.00", resp.DailyRate)
	require.Len(t, repo.updated, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeEmployeeRepo()
	seeded := seedEmployee(repo, "685")
	svc := employee.NewService(db, repo, &fakeCounterRepo{}, nil)

	require.NoError(t, svc.Delete(ctx, seeded.ID.String()))
	assert.Equal(t, []string{seeded.ID.String()}, repo.deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	repo := newFakeEmployeeRepo()
	seedEmployee(repo, "685")
	svc := employee.NewService(nil, repo, &fakeCounterRepo{}, nil)

	resp, err := svc.GetOptions(ctx)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Maria Santos", resp[0].FullName)
}
