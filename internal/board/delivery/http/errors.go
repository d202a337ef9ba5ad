package http

import (
	"errors"
	"net/http"

	"someday-maybe/internal/board"
	pkgErrors "someday-maybe/pkg/errors"
	"someday-maybe/pkg/kvstore"
)

var errInvalidPath = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid path parameter")

// mapError translates board errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, board.ErrListNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, board.ErrEmptyTitle),
		errors.Is(err, board.ErrInvalidDue),
		errors.Is(err, board.ErrInvalidTime),
		errors.Is(err, board.ErrIndexOutOfRange),
		errors.Is(err, board.ErrInvalidSide),
		errors.Is(err, board.ErrInvalidMonth),
		errors.Is(err, board.ErrDuplicateID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, kvstore.ErrQuotaExceeded):
		return pkgErrors.NewHTTPError(http.StatusInsufficientStorage, "storage quota exceeded")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
