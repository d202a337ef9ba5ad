package http

import (
	"context"
	"errors"
	"net/http"

	"someday-maybe/internal/holiday"
	pkgErrors "someday-maybe/pkg/errors"
)

var errInvalidPath = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid path parameter")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, holiday.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, holiday.ErrUpstream),
		errors.Is(err, holiday.ErrMalformedResponse):
		return pkgErrors.ErrBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "holiday lookup timed out")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
