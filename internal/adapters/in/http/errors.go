package http

import (
	"errors"
	"net/http"

	"ordering/internal/pkg/errs"
)

// statusForError maps a use-case error to an HTTP status code. The core
// carries error kinds, not presentation messages; the translation to a wire
// status lives entirely here.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(err error) (int, ErrorResponse) {
	code := statusForError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return code, ErrorResponse{Code: code, Message: message}
}
