package gcalendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"someday-maybe/internal/holiday"
	"someday-maybe/internal/model"
	pkgGCal "someday-maybe/pkg/gcalendar"
)

// FetchYear lists the all-day events of year and keeps those whose category
// passes the allow-list.
func (s *implSource) FetchYear(ctx context.Context, year int) (model.HolidayYear, error) {
	events, err := s.client.ListEvents(ctx, pkgGCal.ListEventsRequest{
		CalendarID: s.calendarID,
		TimeMin:    time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		TimeMax:    time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("FetchYear"), err)
		return nil, fmt.Errorf("%w: %v", holiday.ErrUpstream, err)
	}

	prefix := fmt.Sprintf("%04d-", year)
	out := make(model.HolidayYear)
	for _, ev := range events {
		if ev.Summary == "" || !strings.HasPrefix(ev.StartDate, prefix) {
			continue
		}
		category := categorize(ev.Description)
		if !s.allow.Allows(category) {
			continue
		}
		out[ev.StartDate] = model.Holiday{Name: ev.Summary, Category: category}
	}
	return out, nil
}

// categorize maps the first line of a holiday event description onto the
// categories used by the allow-list.
func categorize(description string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(description), "\n")
	first = strings.TrimSpace(first)
	switch {
	case strings.EqualFold(first, "Public holiday"):
		return holiday.CategoryFederal
	case strings.HasPrefix(first, "Observance"):
		return holiday.CategoryObservance
	default:
		return first
	}
}
