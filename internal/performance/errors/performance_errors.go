package performanceerrors

import (
	"net/http"

	"humanage/internal/shared/apperror"
)

var (
	ErrReviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Performance review not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidReviewDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid review date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRating = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid rating",
		http.StatusBadRequest,
	)
)
