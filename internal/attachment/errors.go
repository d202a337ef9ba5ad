package attachment

import "errors"

// Domain-specific errors for the attachment package.
var (
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrNameSpaceExhausted = errors.New("no free file name left")
	ErrInvalidName        = errors.New("invalid file name")
	ErrInvalidTaskID      = errors.New("invalid task id")
	ErrBlobNotFound       = errors.New("blob url not found or revoked")
)
