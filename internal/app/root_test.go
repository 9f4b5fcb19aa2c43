package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"tidtolk/internal/contract"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestResolveISODate(t *testing.T) {
	out, _, err := runCommand(t, "--no-llm", "--ref", "2025-06-10", "2025-12-25")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var ti contract.TimeInfo
	if err := json.Unmarshal([]byte(out), &ti); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if ti.Date == nil || *ti.Date != "2025-12-25" {
		t.Fatalf("date = %v", ti.Date)
	}
	if ti.WeekdayName == nil || *ti.WeekdayName != "torsdag" {
		t.Fatalf("weekday_name = %v", ti.WeekdayName)
	}
}

func TestResolveJSONEnvelopeCarriesSource(t *testing.T) {
	out, _, err := runCommand(t, "--json", "--no-llm", "--ref", "2025-06-10", "imorgon")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var env contract.SuccessEnvelope
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if env.Command != "resolve" || env.SchemaVersion == "" {
		t.Fatalf("envelope mismatch: %+v", env)
	}
	meta, ok := env.Meta["source"].(string)
	if !ok || meta != "natural" {
		t.Fatalf("meta source = %v", env.Meta["source"])
	}
}

func TestResolveUnparseableExitsZero(t *testing.T) {
	out, _, err := runCommand(t, "--no-llm", "--ref", "2025-06-10", "blorp", "snork")
	if err != nil {
		t.Fatalf("parse failure must not be an error: %v", err)
	}
	var ti contract.TimeInfo
	if err := json.Unmarshal([]byte(out), &ti); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if ti.Date != nil || ti.Week != nil || ti.Timestamp != nil {
		t.Fatalf("expected all-null TimeInfo, got %s", out)
	}
}

func TestInvalidRefIsUsageError(t *testing.T) {
	_, _, err := runCommand(t, "--ref", "not-a-date", "idag")
	if err == nil {
		t.Fatalf("expected usage error")
	}
	if got := ExitCode(err); got != 2 {
		t.Fatalf("exit code = %d, want 2", got)
	}
}

func TestFlagParseErrorsAreUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--bogus-flag", "idag"},
		{"--llm-timeout", "not-a-duration", "idag"},
	} {
		_, _, err := runCommand(t, args...)
		if err == nil {
			t.Fatalf("args %v: expected usage error", args)
		}
		if got := ExitCode(err); got != 2 {
			t.Fatalf("args %v: exit code = %d, want 2", args, got)
		}
	}
}

func TestConflictingOutputFlags(t *testing.T) {
	_, _, err := runCommand(t, "--json", "--plain", "idag")
	if err == nil {
		t.Fatalf("expected usage error")
	}
	if got := ExitCode(err); got != 2 {
		t.Fatalf("exit code = %d, want 2", got)
	}
}

func TestVeckaCommand(t *testing.T) {
	out, _, err := runCommand(t, "vecka", "--no-llm", "--ref", "2025-06-10", "2025-12-25")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var data struct {
		Week *string `json:"week"`
	}
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if data.Week == nil || *data.Week != "2025-W52" {
		t.Fatalf("week = %v", data.Week)
	}
}

func TestPlainFieldsProjection(t *testing.T) {
	out, _, err := runCommand(t, "--plain", "--fields", "date,weekday_name", "--no-llm", "--ref", "2025-06-10", "2025-12-25")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out); got != "2025-12-25\ttorsdag" {
		t.Fatalf("plain output = %q", got)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "tidtolk ") {
		t.Fatalf("version output = %q", out)
	}
}
