package datemath_test

import (
	"errors"
	"testing"
	"time"

	"someday-maybe/pkg/datemath"
)

func mustParser(t *testing.T, tz string) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser(tz)
	if err != nil {
		t.Fatalf("unexpected error creating parser for %s: %v", tz, err)
	}
	return p
}

func TestNewParserRejectsUnknownZone(t *testing.T) {
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseRelative(t *testing.T) {
	p := mustParser(t, "UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: day},
		{name: "Tomorrow mixed case", relative: "Tomorrow", want: day.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: day.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: day.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: day.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: day.AddDate(0, 1, 0)},
		{name: "Next Monday", relative: "next monday", want: day.AddDate(0, 0, 5)},
		{name: "Next Wednesday is a week out", relative: "next wednesday", want: day.AddDate(0, 0, 7)},
		{name: "Vague count", relative: "in a few days", wantErr: true},
		{name: "Free text", relative: "some random day", wantErr: true},
		{name: "Unknown weekday", relative: "next funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.relative, base)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error", tt.relative)
				}
				if !got.Equal(base) {
					t.Errorf("Parse(%q) = %v on error, want base time", tt.relative, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.relative, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.relative, got, tt.want)
			}
		})
	}
}

func TestNormalizeDue(t *testing.T) {
	p := mustParser(t, "UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		in, want string
		wantErr  bool
	}{
		{in: "", want: ""},
		{in: "  ", want: ""},
		{in: "2024-12-25", want: "2024-12-25"},
		{in: "tomorrow", want: "2024-05-02"},
		{in: "next friday", want: "2024-05-03"},
		{in: "in 2 weeks", want: "2024-05-15"},
		{in: "2024-13-45", wantErr: true},
		{in: "whenever", wantErr: true},
	}
	for _, tc := range cases {
		got, err := p.NormalizeDue(tc.in, base)
		if tc.wantErr {
			if !errors.Is(err, datemath.ErrUnrecognizedDate) {
				t.Errorf("NormalizeDue(%q) error = %v, want ErrUnrecognizedDate", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeDue(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("NormalizeDue(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDueInstant(t *testing.T) {
	p := mustParser(t, "UTC")

	if _, ok := p.DueInstant("", "10:00"); ok {
		t.Errorf("undated task must have no instant")
	}
	if _, ok := p.DueInstant("not-a-date", ""); ok {
		t.Errorf("unparsable date must have no instant")
	}

	timed, ok := p.DueInstant("2025-03-10", "09:30")
	if !ok {
		t.Fatalf("expected an instant for a timed task")
	}
	if want := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC); !timed.Equal(want) {
		t.Errorf("timed = %v, want %v", timed, want)
	}

	allDay, ok := p.DueInstant("2025-03-10", "")
	if !ok {
		t.Fatalf("expected an instant for an all-day task")
	}
	if want := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC); !allDay.Equal(want) {
		t.Errorf("allDay = %v, want %v", allDay, want)
	}

	// An all-day task sorts after every timed task that day.
	if late, _ := p.DueInstant("2025-03-10", "23:59"); !late.Before(allDay) {
		t.Errorf("23:59 = %v, want before %v", late, allDay)
	}

	// A malformed clock counts as all-day.
	if bad, _ := p.DueInstant("2025-03-10", "9:30"); !bad.Equal(allDay) {
		t.Errorf("malformed clock = %v, want %v", bad, allDay)
	}
}

func TestTodayAndISODate(t *testing.T) {
	p := mustParser(t, "America/New_York")
	// 02:00 UTC on Jan 1 is still Dec 31 in New York.
	if got := p.Today(time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC)); got != "2024-12-31" {
		t.Errorf("Today = %q, want 2024-12-31", got)
	}

	if got := datemath.ISODate(2025, 3, 7); got != "2025-03-07" {
		t.Errorf("ISODate(2025, 3, 7) = %q", got)
	}
	if got := datemath.ISODate(999, 1, 2); got != "0999-01-02" {
		t.Errorf("ISODate(999, 1, 2) = %q", got)
	}

	for clock, want := range map[string]bool{"23:59": true, "24:61": false, "7:00": false} {
		if got := datemath.ValidClock(clock); got != want {
			t.Errorf("ValidClock(%q) = %v, want %v", clock, got, want)
		}
	}
}
