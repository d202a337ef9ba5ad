package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the ISO calendar date used for due dates and holiday keys.
	DateLayout = "2006-01-02"
	// ClockLayout is the HH:MM time of day attached to a due date.
	ClockLayout = "15:04"
)

var (
	ErrUnrecognizedDate = errors.New("unrecognized date")

	durationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	clockPattern    = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Parser resolves due dates and due instants in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the ISO date of now in the parser's timezone.
func (p *Parser) Today(now time.Time) string {
	return now.In(p.location).Format(DateLayout)
}

// Parse converts a relative date string to the start of the matching day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognizedDate, relative)
}

// NormalizeDue turns user input into a stored due value. Empty stays empty,
// ISO dates are kept as-is and relative phrases ("tomorrow", "in 3 days",
// "next friday") are resolved against baseTime.
func (p *Parser) NormalizeDue(due string, baseTime time.Time) (string, error) {
	due = strings.TrimSpace(due)
	if due == "" {
		return "", nil
	}
	if _, err := time.ParseInLocation(DateLayout, due, p.location); err == nil {
		return due, nil
	}

	t, err := p.Parse(due, baseTime)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// DueInstant computes the instant a task is due. ok is false for tasks with
// no due date or an unparsable one, which callers treat as "infinitely late".
// A valid HH:MM pins the instant to that time; otherwise the task is due at the
// end of the day, after every timed task on the same date.
func (p *Parser) DueInstant(due, clock string) (instant time.Time, ok bool) {
	if due == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(DateLayout, due, p.location)
	if err != nil {
		return time.Time{}, false
	}

	if clockPattern.MatchString(clock) {
		if at, err := time.ParseInLocation(DateLayout+"T"+ClockLayout, due+"T"+clock, p.location); err == nil {
			return at, true
		}
	}
	return day.AddDate(0, 0, 1), true
}

// ValidClock reports whether s is a well-formed HH:MM time of day.
func ValidClock(s string) bool {
	if !clockPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// ISODate formats a calendar date as zero-padded YYYY-MM-DD.
func ISODate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := durationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration %q", ErrUnrecognizedDate, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognizedDate, dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
