package viewerrors

import (
	"net/http"

	"github.com/kotani6053/nakatu.yasumi/internal/shared/apperror"
)

var (
	ErrInvalidViewMode = apperror.New(
		apperror.CodeInvalidInput,
		"view mode must be one of today, month, all",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"year and month must form a valid calendar month",
		http.StatusBadRequest,
	)
)
