// Package lexical matches fixed-format date expressions: ISO date, ISO
// datetime, MM.YYYY and bare YYYY.
package lexical

import (
	"regexp"
	"strconv"
	"time"

	"tidtolk/internal/contract"
)

var (
	reISODate     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reISODateTime = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})[tT](\d{2}):(\d{2})$`)
	reMonthYear   = regexp.MustCompile(`^(\d{2})\.(\d{4})$`)
	reYear        = regexp.MustCompile(`^(\d{4})$`)
)

// Match tries the fixed formats in order. A false return means "defer to
// the next strategy", never an error.
func Match(input string, loc *time.Location) (contract.ParseResult, bool) {
	if g := reISODate.FindStringSubmatch(input); g != nil {
		d, ok := strictDate(atoi(g[1]), atoi(g[2]), atoi(g[3]), loc)
		if !ok {
			return contract.ParseResult{}, false
		}
		return contract.ParseResult{Date: &d, Complete: true}, true
	}

	if g := reISODateTime.FindStringSubmatch(input); g != nil {
		hours, minutes := atoi(g[4]), atoi(g[5])
		if hours > 23 || minutes > 59 {
			return contract.ParseResult{}, false
		}
		d, ok := strictDate(atoi(g[1]), atoi(g[2]), atoi(g[3]), loc)
		if !ok {
			return contract.ParseResult{}, false
		}
		return contract.ParseResult{
			Date:     &d,
			Complete: true,
			HasTime:  true,
			Hours:    hours,
			Minutes:  minutes,
		}, true
	}

	if g := reMonthYear.FindStringSubmatch(input); g != nil {
		month, year := atoi(g[1]), atoi(g[2])
		if month < 1 || month > 12 {
			return contract.ParseResult{}, false
		}
		return contract.ParseResult{
			Partial: contract.Partial{Year: &year, Month: &month},
		}, true
	}

	if g := reYear.FindStringSubmatch(input); g != nil {
		year := atoi(g[1])
		return contract.ParseResult{
			Partial: contract.Partial{Year: &year},
		}, true
	}

	return contract.ParseResult{}, false
}

// strictDate constructs the date and re-extracts its components: a
// mismatch means the calendar engine rolled the input over (e.g. a
// mis-keyed day like 2025-02-30), which is rejected.
func strictDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
