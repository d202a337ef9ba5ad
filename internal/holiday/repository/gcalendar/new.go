package gcalendar

import (
	"fmt"

	"someday-maybe/internal/holiday"
	"someday-maybe/internal/holiday/repository"
	pkgGCal "someday-maybe/pkg/gcalendar"
	"someday-maybe/pkg/log"
)

const (
	// Name is the provider label used in config and metrics.
	Name = "gcalendar"
	// DefaultCalendarID is Google's public US holiday calendar.
	DefaultCalendarID = "en.usa#holiday@group.v.calendar.google.com"
)

type implSource struct {
	client     *pkgGCal.Client
	calendarID string
	allow      holiday.AllowList
	l          log.Logger
}

// New creates a Source that reads a public Google holiday calendar.
func New(client *pkgGCal.Client, calendarID string, allow holiday.AllowList, l log.Logger) repository.Source {
	if client == nil {
		panic("holiday/repository/gcalendar: client is required")
	}
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	return &implSource{client: client, calendarID: calendarID, allow: allow, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (s *implSource) dsn(method string) string {
	return fmt.Sprintf("holiday/repository/gcalendar.%s", method)
}

func (s *implSource) Name() string {
	return Name
}
