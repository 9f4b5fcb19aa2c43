// Package calmath provides the pure calendar arithmetic behind the
// resolver: ISO week numbering, day-of-year, and the Swedish duration
// strings used for countdowns and date differences.
package calmath

import (
	"fmt"
	"strings"
	"time"
)

// WeekNumber computes the ISO-8601 week number of t: the date is shifted
// to the Thursday of its Monday-starting week, and week 1 is the week
// containing that year's first Thursday.
func WeekNumber(t time.Time) int {
	day := Midnight(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	thursday := day.AddDate(0, 0, 3-offset)

	jan1 := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	firstOffset := (int(jan1.Weekday()) + 6) % 7
	firstThursday := jan1.AddDate(0, 0, (3-firstOffset+7)%7)

	return (thursday.YearDay()-firstThursday.YearDay())/7 + 1
}

// WeekLabel formats t's ISO week as "YYYY-Www" with the label year
// corrected at the boundaries: week 1 in December belongs to the next
// year, week 52+ in January to the previous one.
func WeekLabel(t time.Time) string {
	week := WeekNumber(t)
	year := t.Year()
	switch {
	case week == 1 && t.Month() == time.December:
		year++
	case week >= 52 && t.Month() == time.January:
		year--
	}
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDuration renders a non-negative duration as Swedish prose, e.g.
// "3 dagar, 2 timmar och 5 minuter". Only nonzero units are shown, except
// that minutes are always shown when no larger unit is present, so the
// floor is "0 minuter".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, pluralize(days, "dag", "dagar"))
	}
	if hours > 0 {
		parts = append(parts, pluralize(hours, "timme", "timmar"))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, pluralize(minutes, "minut", "minuter"))
	}

	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " och " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " och " + parts[len(parts)-1]
	}
}

// UntilNewYear renders the remaining time from t to January 1 of the
// following year.
func UntilNewYear(t time.Time) string {
	newYear := time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location())
	return FormatDuration(newYear.Sub(t))
}

// FormatDelta renders the signed difference from the reference instant to
// the target: "+" for the future, "-" for the past.
func FormatDelta(ref, target time.Time) string {
	d := target.Sub(ref)
	sign := "+"
	if d < 0 {
		sign = "-"
	}
	return sign + FormatDuration(d)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
