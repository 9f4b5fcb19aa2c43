// Package llm is the last-resort resolver: it asks an external
// language-model CLI to interpret the expression and parses its output
// defensively. Any failure downgrades to "no result".
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"tidtolk/internal/contract"
)

const DefaultTimeout = 30 * time.Second

// Runner executes a prompt against the external tool. It is an
// interface so tests can script responses without a binary.
type Runner interface {
	Run(ctx context.Context, prompt string) (string, error)
}

// CommandRunner spawns the configured command with the prompt as its
// final argument and captures combined output.
type CommandRunner struct {
	Command string
	Args    []string
}

func (r CommandRunner) Run(ctx context.Context, prompt string) (string, error) {
	args := append(append([]string{}, r.Args...), prompt)
	out, err := exec.CommandContext(ctx, r.Command, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s failed: %s", r.Command, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// Resolver wraps a Runner with the timeout boundary.
type Resolver struct {
	Runner  Runner
	Timeout time.Duration
}

type toolResult struct {
	Date    *string          `json:"date"`
	Partial contract.Partial `json:"partial"`
}

// Resolve prompts the external tool with the reference date and the raw
// input. Non-zero exit, timeout, or unusable output all report a plain
// no-match; errors are never surfaced to the caller.
func (r Resolver) Resolve(ctx context.Context, input string, ref time.Time) (contract.ParseResult, bool) {
	if r.Runner == nil {
		return contract.ParseResult{}, false
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := r.Runner.Run(ctx, buildPrompt(input, ref))
	if err != nil {
		return contract.ParseResult{}, false
	}
	raw, ok := firstJSONObject(out)
	if !ok {
		return contract.ParseResult{}, false
	}
	var res toolResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return contract.ParseResult{}, false
	}

	if res.Date != nil {
		d, err := time.ParseInLocation("2006-01-02", *res.Date, ref.Location())
		if err != nil {
			return contract.ParseResult{}, false
		}
		return contract.ParseResult{Date: &d, Complete: true}, true
	}
	if !res.Partial.Empty() {
		if !validPartial(res.Partial, ref.Location()) {
			return contract.ParseResult{}, false
		}
		return contract.ParseResult{Partial: res.Partial}, true
	}
	return contract.ParseResult{}, false
}

// validPartial range-checks components decoded from the tool's output.
// The tool is untrusted: an out-of-range month or day is rejected, and a
// full date is reconstructed and re-extracted so an impossible day is
// refused instead of rolled over.
func validPartial(p contract.Partial, loc *time.Location) bool {
	if p.Month != nil && (*p.Month < 1 || *p.Month > 12) {
		return false
	}
	if p.Day != nil && (*p.Day < 1 || *p.Day > 31) {
		return false
	}
	if p.FullDate() {
		d := time.Date(*p.Year, time.Month(*p.Month), *p.Day, 0, 0, 0, 0, loc)
		if d.Year() != *p.Year || int(d.Month()) != *p.Month || d.Day() != *p.Day {
			return false
		}
	}
	return true
}

func buildPrompt(input string, ref time.Time) string {
	return fmt.Sprintf(
		"Today's date is %s. Interpret the following Swedish or English date expression. "+
			"Answer with strict JSON only, no prose: "+
			`{"date": "YYYY-MM-DD" or null, "partial": {"year": N, "month": N, "day": N}} `+
			"where partial carries only the components you are certain of. "+
			"Expression: %q",
		ref.Format("2006-01-02"), input)
}

// firstJSONObject extracts the first balanced JSON object substring,
// tolerating commentary around it. Braces inside string literals do not
// count toward the balance.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
