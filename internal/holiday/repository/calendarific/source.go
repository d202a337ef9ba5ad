package calendarific

import (
	"context"
	"encoding/json"
	"fmt"

	"someday-maybe/internal/holiday"
	"someday-maybe/internal/model"
	pkgCalendarific "someday-maybe/pkg/calendarific"
)

const allLocations = "All"

// FetchYear downloads and validates one year. Any entry with a missing or
// non-string name, primary_type or date.iso rejects the whole response.
// Later entries for the same date replace earlier ones.
func (s *implSource) FetchYear(ctx context.Context, year int) (model.HolidayYear, error) {
	env, err := s.client.Holidays(ctx, year)
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("FetchYear"), err)
		return nil, fmt.Errorf("%w: %v", holiday.ErrUpstream, err)
	}
	if env.Meta.Code != 200 {
		return nil, fmt.Errorf("%w: meta.code %d %s", holiday.ErrUpstream, env.Meta.Code, env.Meta.ErrorDetail)
	}

	var resp pkgCalendarific.HolidaysResponse
	if err := json.Unmarshal(env.Response, &resp); err != nil || resp.Holidays == nil {
		return nil, fmt.Errorf("%w: response.holidays missing", holiday.ErrMalformedResponse)
	}

	out := make(model.HolidayYear)
	for _, raw := range resp.Holidays {
		entry, err := decodeEntry(raw)
		if err != nil {
			s.l.Warnf(ctx, "%s: %v", s.dsn("FetchYear"), err)
			return nil, err
		}
		if entry.Locations != allLocations || !s.allow.Allows(entry.PrimaryType) {
			continue
		}
		out[entry.Date.ISO] = model.Holiday{Name: entry.Name, Category: entry.PrimaryType}
	}
	return out, nil
}

// decodeEntry checks field types by hand so that a number where a string
// belongs is reported instead of silently zeroed.
func decodeEntry(raw json.RawMessage) (pkgCalendarific.Holiday, error) {
	var h pkgCalendarific.Holiday

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return h, fmt.Errorf("%w: %s", holiday.ErrMalformedResponse, raw)
	}
	name, nameOK := fields["name"].(string)
	primaryType, typeOK := fields["primary_type"].(string)
	date, _ := fields["date"].(map[string]any)
	iso, isoOK := date["iso"].(string)
	if !nameOK || !typeOK || !isoOK {
		return h, fmt.Errorf("%w: %s", holiday.ErrMalformedResponse, raw)
	}

	h.Name = name
	h.PrimaryType = primaryType
	h.Date.ISO = iso
	// Absent or non-string locations simply fail the "All" comparison.
	h.Locations, _ = fields["locations"].(string)
	h.Description, _ = fields["description"].(string)
	return h, nil
}
