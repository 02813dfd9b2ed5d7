package commenterrors

import (
	"net/http"

	"go-workflow/internal/shared/apperror"
)

var (
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
	ErrInvalidAuthorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid author id",
		http.StatusBadRequest,
	)
	ErrInternalNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"only eligible actors may post internal comments",
		http.StatusForbidden,
	)
)
