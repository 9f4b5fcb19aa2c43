// Package resolve sequences the resolution strategies and assembles the
// final TimeInfo record.
package resolve

import (
	"context"
	"strings"
	"time"

	"tidtolk/internal/clock"
	"tidtolk/internal/contract"
	"tidtolk/internal/lexical"
	"tidtolk/internal/llm"
	"tidtolk/internal/natural"
)

// Resolver runs the strategy cascade: lexical patterns, then the Swedish
// natural-language vocabulary, then the external model. The first
// strategy producing a result (complete or partial) wins. It holds no
// state between calls.
type Resolver struct {
	Location *time.Location
	LLM      *llm.Resolver // nil disables the semantic fallback
}

func (r *Resolver) location() *time.Location {
	if r.Location != nil {
		return r.Location
	}
	return time.Local
}

// Resolve interprets input relative to the current moment. Empty input
// means "now". It never fails: unparseable input yields an all-null
// TimeInfo.
func (r *Resolver) Resolve(ctx context.Context, input string) contract.Resolution {
	return r.ResolveAt(ctx, input, time.Now().In(r.location()))
}

// ResolveAt is Resolve with an explicit reference instant, which keeps
// every relative computation deterministic for tests.
func (r *Resolver) ResolveAt(ctx context.Context, input string, ref time.Time) contract.Resolution {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		now := time.Date(ref.Year(), ref.Month(), ref.Day(), ref.Hour(), ref.Minute(), 0, 0, ref.Location())
		res := contract.ParseResult{
			Date:     &now,
			Complete: true,
			Source:   contract.SourceNative,
			HasTime:  true,
			Hours:    ref.Hour(),
			Minutes:  ref.Minute(),
		}
		return r.finish(res, ref)
	}

	rest, tod, hasTime := clock.Split(s)
	if rest == "" && hasTime {
		// The whole input was a clock expression; anchor it on the
		// reference day.
		day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
		res := contract.ParseResult{
			Date:     &day,
			Complete: true,
			Source:   contract.SourceNative,
			HasTime:  true,
			Hours:    tod.Hours,
			Minutes:  tod.Minutes,
		}
		return r.finish(compose(res, ref), ref)
	}

	res, ok := lexical.Match(rest, ref.Location())
	if ok {
		res.Source = contract.SourceNative
	}
	if !ok {
		res, ok = natural.Resolve(rest, ref)
		if ok {
			res.Source = contract.SourceNatural
		}
	}
	if !ok && r.LLM != nil {
		res, ok = r.LLM.Resolve(ctx, input, ref)
		if ok {
			res.Source = contract.SourceLLM
		}
	}
	if !ok {
		res = contract.ParseResult{Source: contract.SourceNone}
	}

	// Compose the independently extracted time-of-day onto the winning
	// date unless the strategy already carries one (ISO datetime).
	if hasTime && !res.HasTime {
		res.HasTime, res.Hours, res.Minutes = true, tod.Hours, tod.Minutes
	}
	return r.finish(compose(res, ref), ref)
}

// compose merges the parsed clock time onto the resolved calendar date,
// defaulting to midnight.
func compose(res contract.ParseResult, ref time.Time) contract.ParseResult {
	if res.Date == nil {
		return res
	}
	composed := time.Date(res.Date.Year(), res.Date.Month(), res.Date.Day(), res.Hours, res.Minutes, 0, 0, ref.Location())
	res.Date = &composed
	return res
}

func (r *Resolver) finish(res contract.ParseResult, ref time.Time) contract.Resolution {
	return contract.Resolution{
		TimeInfo: Build(res, ref),
		Source:   res.Source,
		Partial:  res.Partial,
	}
}
