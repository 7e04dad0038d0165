package timezone_test

import (
	"testing"
	"time"

	"innkeep/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestDayStart(t *testing.T) {
	in := time.Date(2025, 3, 10, 17, 45, 12, 999, timezone.GetLocation())
	got := timezone.DayStart(in)

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("DayStart left a time-of-day component: %v", got)
	}

	if got.Year() != 2025 || got.Month() != time.March || got.Day() != 10 {
		t.Errorf("DayStart changed the calendar day: %v", got)
	}
}

func TestDayStart_Idempotent(t *testing.T) {
	in := time.Date(2025, 3, 10, 23, 59, 59, 0, timezone.GetLocation())

	once := timezone.DayStart(in)
	twice := timezone.DayStart(once)

	if !once.Equal(twice) {
		t.Errorf("DayStart not idempotent: %v vs %v", once, twice)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday backs up to monday",
			in:   time.Date(2025, 3, 12, 9, 30, 0, 0, timezone.GetLocation()),
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.GetLocation()),
		},
		{
			name: "monday stays monday",
			in:   time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.GetLocation()),
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.GetLocation()),
		},
		{
			name: "sunday backs up six days",
			in:   time.Date(2025, 3, 16, 12, 0, 0, 0, timezone.GetLocation()),
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.GetLocation()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timezone.WeekStart(tt.in, time.Monday)
			if !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	loc := timezone.GetLocation()

	a := time.Date(2025, 3, 10, 1, 0, 0, 0, loc)
	b := time.Date(2025, 3, 10, 23, 0, 0, 0, loc)
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	if !timezone.SameDay(a, b) {
		t.Error("expected same calendar day")
	}

	if timezone.SameDay(b, c) {
		t.Error("expected different calendar days")
	}
}

func TestTimezoneFormatParseRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-03-10")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if timezone.Format(parsed, "2006-01-02") != "2025-03-10" {
		t.Errorf("round trip changed the date: %v", parsed)
	}
}
