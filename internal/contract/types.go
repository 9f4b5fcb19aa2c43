package contract

import "time"

const SchemaVersion = "v1"

// Source identifies which strategy produced a resolution.
type Source string

const (
	SourceNative  Source = "native"
	SourceNatural Source = "natural"
	SourceLLM     Source = "llm"
	SourceNone    Source = "none"
)

// Partial holds the calendar components of an incomplete resolution.
type Partial struct {
	Year  *int `json:"year,omitempty"`
	Month *int `json:"month,omitempty"`
	Day   *int `json:"day,omitempty"`
}

func (p Partial) Empty() bool {
	return p.Year == nil && p.Month == nil && p.Day == nil
}

// FullDate reports whether year, month and day are all known.
func (p Partial) FullDate() bool {
	return p.Year != nil && p.Month != nil && p.Day != nil
}

// ParseResult is the shared contract between resolution strategies.
// Complete implies Date carries a real year+month+day; Partial is only
// populated when Complete is false.
type ParseResult struct {
	Date     *time.Time
	Complete bool
	Source   Source
	Partial  Partial
	HasTime  bool
	Hours    int
	Minutes  int
}

// TimeInfo is the derived record handed to scheduling and journaling
// consumers. Every field is nullable; consumers treat null as
// "undetermined".
type TimeInfo struct {
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	Week         *string `json:"week"`
	MonthName    *string `json:"month_name"`
	MonthOfYear  *string `json:"month_of_year"`
	DayOfYear    *int    `json:"day_of_year"`
	DayOfMonth   *int    `json:"day_of_month"`
	WeekdayName  *string `json:"weekday_name"`
	UntilNewYear *string `json:"until_new_year"`
	FromNow      *string `json:"from_now"`
	Timestamp    *int64  `json:"timestamp"`
}

// Resolution pairs the derived record with how it was obtained.
type Resolution struct {
	TimeInfo TimeInfo `json:"time_info"`
	Source   Source   `json:"source"`
	Partial  Partial  `json:"partial"`
}

type ErrorCode string

const (
	ErrGeneric      ErrorCode = "GENERIC_FAILURE"
	ErrInvalidUsage ErrorCode = "INVALID_USAGE"
)

type ErrorEnvelope struct {
	SchemaVersion string         `json:"schema_version"`
	Error         ErrorBody      `json:"error"`
	Meta          map[string]any `json:"meta,omitempty"`
}

type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Hint    string    `json:"hint,omitempty"`
}

type SuccessEnvelope struct {
	SchemaVersion string         `json:"schema_version"`
	Command       string         `json:"command"`
	GeneratedAt   time.Time      `json:"generated_at"`
	Data          any            `json:"data"`
	Meta          map[string]any `json:"meta"`
	Warnings      []string       `json:"warnings"`
}
