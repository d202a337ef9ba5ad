package http

import (
	"someday-maybe/internal/holiday"
	"someday-maybe/pkg/log"
)

type handler struct {
	l  log.Logger
	uc holiday.UseCase
}

// New creates a new HTTP handler for the holiday domain.
func New(l log.Logger, uc holiday.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
