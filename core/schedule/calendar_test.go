package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testCalendar() *Calendar {
	return &Calendar{
		Holidays: map[string]string{
			"2025-12-25": "Natale",
			"2025-12-26": "Santo Stefano",
		},
		Vacations: map[string][]DateRange{
			"Adrian": {{Start: date(2025, 12, 29), End: date(2025, 12, 31)}},
		},
	}
}

func TestCalendarWeekend(t *testing.T) {
	cal := testCalendar()
	ok, reason := cal.Available(date(2025, 12, 13), "Adrian") // Saturday
	if ok || reason != "weekend" {
		t.Fatalf("got %v %q", ok, reason)
	}
	if ok, _ := cal.Available(date(2025, 12, 15), "Adrian"); !ok { // Monday
		t.Fatalf("Monday must be available")
	}
}

func TestCalendarHoliday(t *testing.T) {
	cal := testCalendar()
	ok, reason := cal.Available(date(2025, 12, 25), "Mattia")
	if ok || reason != "Natale" {
		t.Fatalf("got %v %q", ok, reason)
	}
}

func TestCalendarVacation(t *testing.T) {
	cal := testCalendar()
	ok, reason := cal.Available(date(2025, 12, 30), "Adrian")
	if ok || reason != "vacation" {
		t.Fatalf("got %v %q", ok, reason)
	}
	// Another inspector is unaffected.
	if ok, _ := cal.Available(date(2025, 12, 30), "Mattia"); !ok {
		t.Fatalf("vacation must be per inspector")
	}
}

func TestNextAvailableSkipsBlockedStretch(t *testing.T) {
	cal := testCalendar()
	// 2025-12-25 Thu holiday, 26 Fri holiday, 27-28 weekend, 29-31 Adrian
	// vacation, 2026-01-01 is a working day in this test calendar.
	got := cal.NextAvailable(date(2025, 12, 25), "Adrian")
	want := date(2026, 1, 1)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	// Mattia only skips holidays and the weekend.
	got = cal.NextAvailable(date(2025, 12, 25), "Mattia")
	want = date(2025, 12, 29)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextAvailableAlreadyWorking(t *testing.T) {
	cal := testCalendar()
	d := date(2025, 12, 15) // Monday
	if got := cal.NextAvailable(d, "Adrian"); !got.Equal(d) {
		t.Fatalf("working day must be returned unchanged, got %v", got)
	}
}
