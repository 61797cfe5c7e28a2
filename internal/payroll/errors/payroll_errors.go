package payrollerrors

import (
	"net/http"

	"humanage/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll record not found",
		http.StatusNotFound,
	)
	ErrPayrollAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Payroll already exists for this employee and period",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid period format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidDaysOfWork = apperror.New(
		apperror.CodeInvalidInput,
		"days_of_work must be positive and fit the period",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Money and hour inputs cannot be negative",
		http.StatusBadRequest,
	)
	ErrMissingStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status is required",
		http.StatusBadRequest,
	)
)
