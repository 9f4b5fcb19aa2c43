package resolve

import (
	"fmt"
	"time"

	"tidtolk/internal/calmath"
	"tidtolk/internal/contract"
	"tidtolk/internal/locale"
)

// Build derives the TimeInfo record from a parse result. A complete
// resolution fills every field; a partial fills the documented subset;
// no resolution at all leaves everything null.
func Build(res contract.ParseResult, ref time.Time) contract.TimeInfo {
	switch {
	case res.Complete && res.Date != nil:
		return buildComplete(*res.Date, ref)
	case res.Partial.FullDate():
		return buildPartialDate(res.Partial, ref)
	case res.Partial.Year != nil && res.Partial.Month != nil:
		return buildPartialMonth(*res.Partial.Month)
	default:
		// A bare year (or nothing) resolves to an all-null record; the
		// year alone is too little to act on and is reported only via
		// the partial.
		return contract.TimeInfo{}
	}
}

func buildComplete(t, ref time.Time) contract.TimeInfo {
	return contract.TimeInfo{
		Date:         ptr(t.Format("2006-01-02")),
		Time:         ptr(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())),
		Week:         ptr(calmath.WeekLabel(t)),
		MonthName:    ptr(locale.MonthName(t.Month())),
		MonthOfYear:  ptr(fmt.Sprintf("%02d", int(t.Month()))),
		DayOfYear:    ptr(t.YearDay()),
		DayOfMonth:   ptr(t.Day()),
		WeekdayName:  ptr(locale.WeekdayName(t.Weekday())),
		UntilNewYear: ptr(calmath.UntilNewYear(t)),
		FromNow:      ptr(calmath.FormatDelta(ref, t)),
		Timestamp:    ptr(t.Unix()),
	}
}

// buildPartialDate covers a known but non-canonical date: the ISO string
// and now→date difference are derivable, but week, weekday, day-of-year
// and timestamp stay null so the record is distinguishable from a
// complete resolution.
func buildPartialDate(p contract.Partial, ref time.Time) contract.TimeInfo {
	t := time.Date(*p.Year, time.Month(*p.Month), *p.Day, 0, 0, 0, 0, ref.Location())
	return contract.TimeInfo{
		Date:        ptr(t.Format("2006-01-02")),
		MonthName:   ptr(locale.MonthName(t.Month())),
		MonthOfYear: ptr(fmt.Sprintf("%02d", int(t.Month()))),
		DayOfMonth:  ptr(t.Day()),
		FromNow:     ptr(calmath.FormatDelta(ref, t)),
	}
}

func buildPartialMonth(month int) contract.TimeInfo {
	return contract.TimeInfo{
		MonthName:   ptr(locale.MonthName(time.Month(month))),
		MonthOfYear: ptr(fmt.Sprintf("%02d", month)),
	}
}

func ptr[T any](v T) *T { return &v }
