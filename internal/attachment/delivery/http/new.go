package http

import (
	"someday-maybe/internal/attachment"
	"someday-maybe/pkg/log"
)

type handler struct {
	l              log.Logger
	uc             attachment.UseCase
	maxUploadBytes int64
}

// New creates a new HTTP handler for the attachment domain. maxUploadBytes
// <= 0 leaves uploads unbounded.
func New(l log.Logger, uc attachment.UseCase, maxUploadBytes int64) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
	}
}
