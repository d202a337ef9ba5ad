package http

import (
	"errors"
	"net/http"

	"someday-maybe/internal/attachment"
	pkgErrors "someday-maybe/pkg/errors"
)

var (
	errMissingFile  = pkgErrors.NewHTTPError(http.StatusBadRequest, "multipart field \"file\" is required")
	errFileTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
)

// mapError translates attachment errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, attachment.ErrAttachmentNotFound),
		errors.Is(err, attachment.ErrBlobNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, attachment.ErrInvalidName),
		errors.Is(err, attachment.ErrInvalidTaskID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, attachment.ErrNameSpaceExhausted):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
