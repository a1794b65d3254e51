package recorderrors

import (
	"net/http"

	"github.com/kotani6053/nakatu.yasumi/internal/shared/apperror"
)

var (
	ErrInvalidRecordID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid record id",
		http.StatusBadRequest,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"name is required",
		http.StatusBadRequest,
	)
	ErrCategoryRequired = apperror.New(
		apperror.CodeInvalidInput,
		"category is required",
		http.StatusBadRequest,
	)
	ErrUnknownCategory = apperror.New(
		apperror.CodeInvalidInput,
		"unknown category",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"date is required for single-day categories",
		http.StatusBadRequest,
	)
	ErrPeriodBoundsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"start_date and end_date are required for period categories",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrTimeBoundsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"start_time and end_time are required for time-bounded categories",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_time must be before end_time",
		http.StatusBadRequest,
	)
	ErrDuplicateRecord = apperror.New(
		apperror.CodeConflict,
		"a record for this person already covers that day",
		http.StatusConflict,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"record not found",
		http.StatusNotFound,
	)
)
