// Package locale holds the Swedish vocabulary tables used by the
// resolvers. All tables are static and read-only for the process
// lifetime.
package locale

import "time"

var monthNames = [...]string{
	"januari", "februari", "mars", "april", "maj", "juni",
	"juli", "augusti", "september", "oktober", "november", "december",
}

var Months = map[string]time.Month{}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "måndag",
	time.Tuesday:   "tisdag",
	time.Wednesday: "onsdag",
	time.Thursday:  "torsdag",
	time.Friday:    "fredag",
	time.Saturday:  "lördag",
	time.Sunday:    "söndag",
}

var Weekdays = map[string]time.Weekday{}

// Ordinals maps Swedish ordinal words to day-of-month numbers 1-31.
var Ordinals = map[string]int{
	"första":        1,
	"andra":         2,
	"tredje":        3,
	"fjärde":        4,
	"femte":         5,
	"sjätte":        6,
	"sjunde":        7,
	"åttonde":       8,
	"nionde":        9,
	"tionde":        10,
	"elfte":         11,
	"tolfte":        12,
	"trettonde":     13,
	"fjortonde":     14,
	"femtonde":      15,
	"sextonde":      16,
	"sjuttonde":     17,
	"artonde":       18,
	"nittonde":      19,
	"tjugonde":      20,
	"tjugoförsta":   21,
	"tjugoandra":    22,
	"tjugotredje":   23,
	"tjugofjärde":   24,
	"tjugofemte":    25,
	"tjugosjätte":   26,
	"tjugosjunde":   27,
	"tjugoåttonde":  28,
	"tjugonionde":   29,
	"trettionde":    30,
	"trettioförsta": 31,
}

// NumberWords maps Swedish cardinal words to the hour values 1-24 used
// by clock expressions.
var NumberWords = map[string]int{
	"ett":       1,
	"två":       2,
	"tre":       3,
	"fyra":      4,
	"fem":       5,
	"sex":       6,
	"sju":       7,
	"åtta":      8,
	"nio":       9,
	"tio":       10,
	"elva":      11,
	"tolv":      12,
	"tretton":   13,
	"fjorton":   14,
	"femton":    15,
	"sexton":    16,
	"sjutton":   17,
	"arton":     18,
	"nitton":    19,
	"tjugo":     20,
	"tjugoett":  21,
	"tjugotvå":  22,
	"tjugotre":  23,
	"tjugofyra": 24,
}

func init() {
	for i, name := range monthNames {
		Months[name] = time.Month(i + 1)
	}
	for wd, name := range weekdayNames {
		Weekdays[name] = wd
	}
}

// MonthName returns the Swedish name for m, or "" when m is out of range.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// WeekdayName returns the Swedish name for d.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}
