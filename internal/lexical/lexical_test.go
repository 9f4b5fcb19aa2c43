package lexical

import (
	"testing"
	"time"
)

func TestMatchISODate(t *testing.T) {
	res, ok := Match("2025-12-25", time.UTC)
	if !ok {
		t.Fatalf("expected match")
	}
	if !res.Complete || res.Date == nil {
		t.Fatalf("expected complete result, got %+v", res)
	}
	if got, want := res.Date.Format("2006-01-02"), "2025-12-25"; got != want {
		t.Fatalf("date round-trip: got %s, want %s", got, want)
	}
	if res.HasTime {
		t.Fatalf("plain date should not carry a time")
	}
}

func TestMatchRejectsRolledOverDate(t *testing.T) {
	for _, in := range []string{"2025-02-30", "2025-13-01", "2025-04-31", "2025-00-10"} {
		if _, ok := Match(in, time.UTC); ok {
			t.Fatalf("Match(%q) accepted a rolled-over date", in)
		}
	}
}

func TestMatchISODateTime(t *testing.T) {
	res, ok := Match("2025-12-25t18:30", time.UTC)
	if !ok || !res.Complete {
		t.Fatalf("expected complete match, got %+v", res)
	}
	if !res.HasTime || res.Hours != 18 || res.Minutes != 30 {
		t.Fatalf("time mismatch: %+v", res)
	}
	if _, ok := Match("2025-12-25t24:00", time.UTC); ok {
		t.Fatalf("hour 24 should be rejected")
	}
	if _, ok := Match("2025-12-25t18:60", time.UTC); ok {
		t.Fatalf("minute 60 should be rejected")
	}
}

func TestMatchMonthYear(t *testing.T) {
	res, ok := Match("06.2025", time.UTC)
	if !ok {
		t.Fatalf("expected match")
	}
	if res.Complete || res.Date != nil {
		t.Fatalf("expected partial result, got %+v", res)
	}
	if res.Partial.Year == nil || *res.Partial.Year != 2025 {
		t.Fatalf("year mismatch: %+v", res.Partial)
	}
	if res.Partial.Month == nil || *res.Partial.Month != 6 {
		t.Fatalf("month mismatch: %+v", res.Partial)
	}
	if res.Partial.Day != nil {
		t.Fatalf("day should be unknown")
	}

	if _, ok := Match("13.2025", time.UTC); ok {
		t.Fatalf("month 13 should be rejected")
	}
}

func TestMatchYear(t *testing.T) {
	res, ok := Match("2025", time.UTC)
	if !ok {
		t.Fatalf("expected match")
	}
	if res.Partial.Year == nil || *res.Partial.Year != 2025 {
		t.Fatalf("year mismatch: %+v", res.Partial)
	}
	if res.Partial.Month != nil || res.Partial.Day != nil {
		t.Fatalf("only the year should be known")
	}
}

func TestMatchDefersOnUnknownInput(t *testing.T) {
	for _, in := range []string{"", "imorgon", "25.12", "202", "2025-12", "december"} {
		if _, ok := Match(in, time.UTC); ok {
			t.Fatalf("Match(%q) should defer to the next strategy", in)
		}
	}
}
