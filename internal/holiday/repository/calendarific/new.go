package calendarific

import (
	"fmt"

	"someday-maybe/internal/holiday"
	"someday-maybe/internal/holiday/repository"
	pkgCalendarific "someday-maybe/pkg/calendarific"
	"someday-maybe/pkg/log"
)

// Name is the provider label used in config and metrics.
const Name = "calendarific"

type implSource struct {
	client *pkgCalendarific.Client
	allow  holiday.AllowList
	l      log.Logger
}

// New creates a Source backed by the Calendarific API.
func New(client *pkgCalendarific.Client, allow holiday.AllowList, l log.Logger) repository.Source {
	if client == nil {
		panic("holiday/repository/calendarific: client is required")
	}
	return &implSource{client: client, allow: allow, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (s *implSource) dsn(method string) string {
	return fmt.Sprintf("holiday/repository/calendarific.%s", method)
}

func (s *implSource) Name() string {
	return Name
}
