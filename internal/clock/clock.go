// Package clock extracts a Swedish time-of-day expression from free
// text, independent of date resolution.
package clock

import (
	"regexp"
	"strconv"
	"strings"

	"tidtolk/internal/locale"
)

// Time is a wall-clock time of day.
type Time struct {
	Hours   int
	Minutes int
}

type matcher struct {
	re    *regexp.Regexp
	apply func(groups []string) (Time, bool)
}

// Tried in priority order; the first pattern whose components pass the
// range checks wins.
var matchers = []matcher{
	{
		re: regexp.MustCompile(`\b(?:klockan|kl\.?)\s*(\d{1,2})[.:,](\d{2})\b`),
		apply: func(g []string) (Time, bool) {
			return clockTime(g[1], g[2])
		},
	},
	{
		re: regexp.MustCompile(`\b(?:klockan|kl\.?)\s*([0-9a-zåäö]+)`),
		apply: func(g []string) (Time, bool) {
			h, ok := hourValue(g[1])
			return Time{Hours: h}, ok
		},
	},
	{
		re: regexp.MustCompile(`\bhalv\s+([0-9a-zåäö]+)`),
		apply: func(g []string) (Time, bool) {
			h, ok := hourValue(g[1])
			return Time{Hours: (h + 23) % 24, Minutes: 30}, ok
		},
	},
	{
		re: regexp.MustCompile(`\bkvart\s+över\s+([0-9a-zåäö]+)`),
		apply: func(g []string) (Time, bool) {
			h, ok := hourValue(g[1])
			return Time{Hours: h, Minutes: 15}, ok
		},
	},
	{
		re: regexp.MustCompile(`\bkvart\s+i\s+([0-9a-zåäö]+)`),
		apply: func(g []string) (Time, bool) {
			h, ok := hourValue(g[1])
			return Time{Hours: (h + 23) % 24, Minutes: 45}, ok
		},
	},
	{
		re: regexp.MustCompile(`\b(\d{1,2})[.:,](\d{2})\b`),
		apply: func(g []string) (Time, bool) {
			return clockTime(g[1], g[2])
		},
	},
}

// Extract scans input (already lower-cased) for a time-of-day expression.
// It never fails hard: unparseable input simply reports no match.
func Extract(input string) (Time, bool) {
	_, t, ok := Split(input)
	return t, ok
}

// Split extracts the time-of-day expression and returns the input with
// the matched phrase removed, so date resolution can run on the rest.
func Split(input string) (string, Time, bool) {
	for _, m := range matchers {
		// A rejected occurrence ("klart" binding the kl prefix) must not
		// mask a later valid one, so every occurrence is tried.
		for _, idx := range m.re.FindAllStringSubmatchIndex(input, -1) {
			groups := make([]string, 0, len(idx)/2)
			for i := 0; i < len(idx); i += 2 {
				if idx[i] < 0 {
					groups = append(groups, "")
					continue
				}
				groups = append(groups, input[idx[i]:idx[i+1]])
			}
			t, ok := m.apply(groups)
			if !ok {
				continue
			}
			rest := strings.Join(strings.Fields(input[:idx[0]]+" "+input[idx[1]:]), " ")
			return rest, t, true
		}
	}
	return input, Time{}, false
}

func clockTime(hourS, minuteS string) (Time, bool) {
	h, err := strconv.Atoi(hourS)
	if err != nil || h > 23 {
		return Time{}, false
	}
	m, err := strconv.Atoi(minuteS)
	if err != nil || m > 59 {
		return Time{}, false
	}
	return Time{Hours: h, Minutes: m}, true
}

// hourValue accepts a digit hour or a Swedish number word (ett..tjugofyra).
// Word-derived hours are reduced mod 24 so "tjugofyra" means midnight.
func hourValue(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		if n > 23 {
			return 0, false
		}
		return n, true
	}
	n, ok := locale.NumberWords[s]
	if !ok {
		return 0, false
	}
	return n % 24, true
}
