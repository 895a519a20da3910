package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"aquaserve/internal/pkg/errs"
)

// respondError maps the error taxonomy onto HTTP statuses:
//
//	ObjectNotFound       -> 404 (absent and wrong-tenant are the same 404)
//	Conflict             -> 409
//	PreconditionFailed   -> 412 (message names the failed guard)
//	ValueIsInvalid       -> 422
//	ValueIsRequired      -> 422
//	StorageUnavailable   -> 503
//
// Anything unclassified becomes a 500 with a generic message so internal
// details never leak to clients.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrPreconditionFailed):
		code = http.StatusPreconditionFailed
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, errs.ErrStorageUnavailable):
		code = http.StatusServiceUnavailable
		message = err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
