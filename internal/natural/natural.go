// Package natural resolves Swedish relative and idiomatic date
// expressions against a reference date, with a general natural-language
// library as the final in-package fallback.
package natural

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	naturaldate "github.com/tj/go-naturaldate"

	"tidtolk/internal/calmath"
	"tidtolk/internal/contract"
	"tidtolk/internal/locale"
)

// Exact relative words, as day offsets from the reference date.
var dayOffsets = map[string]int{
	"idag":         0,
	"igår":         -1,
	"imorgon":      1,
	"i morgon":     1,
	"övermorgon":   2,
	"i övermorgon": 2,
	"förrgår":      -2,
	"i förrgår":    -2,
}

var (
	reNextPrev     = regexp.MustCompile(`^(nästa|förra)\s+([a-zåäö]+)$`)
	reMonthYear    = regexp.MustCompile(`^([a-zåäö]+)\s+(\d{4})$`)
	reDayMonth     = regexp.MustCompile(`^(?:den\s+)?(\d{1,2})\s+([a-zåäö]+)(?:\s+(?:i\s+)?år)?$`)
	reOrdinalMonth = regexp.MustCompile(`^([a-zåäö]+)\s+([a-zåäö]+)$`)
	reInDays       = regexp.MustCompile(`^om\s+(\d+)\s+dag(?:ar)?$`)
	reInWeeks      = regexp.MustCompile(`^om\s+(\d+)\s+veck(?:a|or)$`)
)

// Resolve interprets input relative to ref. It tries the Swedish
// vocabulary first (direct lookup, then regex forms) and delegates
// anything else to the naturaldate library with forward bias. A false
// return defers to the next strategy.
func Resolve(input string, ref time.Time) (contract.ParseResult, bool) {
	s := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(input))), " ")
	if s == "" {
		return contract.ParseResult{}, false
	}
	day := calmath.Midnight(ref)

	if offset, ok := dayOffsets[s]; ok {
		return complete(day.AddDate(0, 0, offset))
	}

	if g := reNextPrev.FindStringSubmatch(s); g != nil {
		if res, ok := resolveNextPrev(g[1], g[2], day); ok {
			return res, true
		}
	}

	if g := reMonthYear.FindStringSubmatch(s); g != nil {
		if m, ok := locale.Months[g[1]]; ok {
			year, month := atoi(g[2]), int(m)
			return contract.ParseResult{
				Partial: contract.Partial{Year: &year, Month: &month},
			}, true
		}
	}

	if g := reDayMonth.FindStringSubmatch(s); g != nil {
		if m, ok := locale.Months[g[2]]; ok {
			if res, ok := dayInMonth(atoi(g[1]), m, day); ok {
				return res, true
			}
			return contract.ParseResult{}, false
		}
	}

	if g := reOrdinalMonth.FindStringSubmatch(s); g != nil {
		d, dayOK := locale.Ordinals[g[1]]
		m, monthOK := locale.Months[g[2]]
		if dayOK && monthOK {
			if res, ok := dayInMonth(d, m, day); ok {
				return res, true
			}
			return contract.ParseResult{}, false
		}
	}

	if g := reInDays.FindStringSubmatch(s); g != nil {
		return complete(day.AddDate(0, 0, atoi(g[1])))
	}
	if g := reInWeeks.FindStringSubmatch(s); g != nil {
		return complete(day.AddDate(0, 0, 7*atoi(g[1])))
	}

	return resolveLibrary(s, ref)
}

func resolveNextPrev(direction, word string, day time.Time) (contract.ParseResult, bool) {
	if word == "vecka" || word == "veckan" {
		offset := 7
		if direction == "förra" {
			offset = -7
		}
		return complete(day.AddDate(0, 0, offset))
	}
	wd, ok := locale.Weekdays[word]
	if !ok {
		return contract.ParseResult{}, false
	}
	// Wrap by a full week so the result is never the reference date
	// itself, even when its weekday already matches.
	diff := (int(wd) - int(day.Weekday())) % 7
	if direction == "nästa" && diff <= 0 {
		diff += 7
	}
	if direction == "förra" && diff >= 0 {
		diff -= 7
	}
	return complete(day.AddDate(0, 0, diff))
}

// dayInMonth resolves a day number in the named month of the reference
// year. Construction is strict: a day that overflows the month ("31
// februari") is rejected, not rolled over.
func dayInMonth(dayNum int, month time.Month, ref time.Time) (contract.ParseResult, bool) {
	d := time.Date(ref.Year(), month, dayNum, 0, 0, 0, 0, ref.Location())
	if d.Day() != dayNum || d.Month() != month {
		return contract.ParseResult{}, false
	}
	return complete(d)
}

// resolveLibrary delegates to go-naturaldate with forward-looking bias.
// The library signals "unrecognized" by returning the reference instant
// unchanged, so that case is treated as no match unless the input
// explicitly asked for now.
func resolveLibrary(s string, ref time.Time) (contract.ParseResult, bool) {
	t, err := naturaldate.Parse(s, ref, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return contract.ParseResult{}, false
	}
	if t.Equal(ref) && s != "nu" && s != "now" {
		return contract.ParseResult{}, false
	}
	d := calmath.Midnight(t)
	res := contract.ParseResult{Date: &d, Complete: true}
	if t.Hour() != ref.Hour() || t.Minute() != ref.Minute() {
		res.HasTime, res.Hours, res.Minutes = true, t.Hour(), t.Minute()
	}
	return res, true
}

func complete(t time.Time) (contract.ParseResult, bool) {
	return contract.ParseResult{Date: &t, Complete: true}, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
