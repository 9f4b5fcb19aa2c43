package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tidtolk/internal/contract"
	"tidtolk/internal/llm"
	"tidtolk/internal/output"
	"tidtolk/internal/resolve"
)

// llmRunnerFactory is a seam for tests to script the external tool.
var llmRunnerFactory = func(ro *globalOptions) llm.Runner {
	return llm.CommandRunner{Command: ro.LLMCommand, Args: ro.LLMArgs}
}

type globalOptions struct {
	JSON          bool
	Plain         bool
	Fields        string
	Quiet         bool
	Verbose       bool
	Config        string
	TZ            string
	Ref           string
	NoLLM         bool
	LLMCommand    string
	LLMArgs       []string
	LLMTimeout    time.Duration
	SchemaVersion string
}

func Execute() int {
	cmd := NewRootCommand()
	err := cmd.Execute()
	if err != nil {
		renderTopLevelError(cmd, err)
	}
	return ExitCode(err)
}

func NewRootCommand() *cobra.Command {
	opts := &globalOptions{
		LLMCommand:    "llm",
		LLMTimeout:    llm.DefaultTimeout,
		SchemaVersion: contract.SchemaVersion,
	}

	long := "tidtolk resolves free-text date expressions (\"imorgon\", \"nästa tisdag\",\n" +
		"\"halv tre\", ISO dates, partial dates) into a structured time record.\n" +
		"Unresolvable input is not an error: every field comes back null."

	root := &cobra.Command{
		Use:           "tidtolk [uttryck]",
		Short:         "Resolve Swedish and English date expressions into structured time facts",
		Long:          long,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       BuildVersionString(),
		RunE: func(c *cobra.Command, args []string) error {
			return runResolve(c, opts, "resolve", args, renderResolution)
		},
	}
	root.SetVersionTemplate("tidtolk {{.Version}}\n")
	// An unknown flag or a bad flag value is invalid usage, same as a bad
	// --ref, and must exit 2 rather than the generic 1.
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return Wrap(2, err)
	})

	root.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Output the full JSON envelope")
	root.PersistentFlags().BoolVar(&opts.Plain, "plain", false, "Output stable plain text")
	root.PersistentFlags().StringVar(&opts.Fields, "fields", "", "Projected fields for --plain, comma-separated")
	root.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Reduce success output")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose diagnostics")
	root.PersistentFlags().StringVar(&opts.Config, "config", "", "Config file path")
	root.PersistentFlags().StringVar(&opts.TZ, "tz", "", "IANA timezone for resolution")
	root.PersistentFlags().StringVar(&opts.Ref, "ref", "", "Reference instant (RFC3339 or YYYY-MM-DD) instead of now")
	root.PersistentFlags().BoolVar(&opts.NoLLM, "no-llm", false, "Disable the external model fallback")
	root.PersistentFlags().StringVar(&opts.LLMCommand, "llm-command", "llm", "External model command for the semantic fallback")
	root.PersistentFlags().DurationVar(&opts.LLMTimeout, "llm-timeout", llm.DefaultTimeout, "Timeout for the external model call")
	root.PersistentFlags().StringVar(&opts.SchemaVersion, "schema-version", contract.SchemaVersion, "Output schema version")

	root.AddCommand(newVeckaCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

func newVeckaCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vecka [uttryck]",
		Short: "Print the ISO week of the resolved date",
		Args:  cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runResolve(c, opts, "vecka", args, renderWeek)
		},
	}
}

type renderFunc func(p output.Printer, res contract.Resolution) error

func runResolve(cmd *cobra.Command, opts *globalOptions, command string, args []string, render renderFunc) error {
	p, ro, err := buildContext(cmd, opts, command)
	if err != nil {
		return err
	}
	loc := resolveLocation(ro.TZ)
	ref, err := parseRef(ro.Ref, loc)
	if err != nil {
		_ = p.Error(contract.ErrInvalidUsage, err.Error(), "Use --ref 2025-12-24 or --ref 2025-12-24T18:00:00+01:00")
		return WrapPrinted(2, err)
	}

	resolver := &resolve.Resolver{Location: loc}
	if !ro.NoLLM {
		resolver.LLM = &llm.Resolver{Runner: llmRunnerFactory(ro), Timeout: ro.LLMTimeout}
	}

	expr := strings.TrimSpace(strings.Join(args, " "))
	if ro.Verbose {
		_, _ = fmt.Fprintf(p.Err, "tidtolk: command=%s expr=%q ref=%s tz=%s llm=%t\n",
			command, expr, ref.Format(time.RFC3339), loc.String(), !ro.NoLLM)
	}
	res := resolver.ResolveAt(cmd.Context(), expr, ref)
	if err := render(p, res); err != nil {
		return Wrap(1, err)
	}
	return nil
}

func renderResolution(p output.Printer, res contract.Resolution) error {
	meta := map[string]any{"source": res.Source}
	if !res.Partial.Empty() {
		meta["partial"] = res.Partial
	}
	var warnings []string
	if res.Source == contract.SourceNone {
		warnings = append(warnings, "expression could not be resolved; all fields are null")
	}
	return p.Success(res.TimeInfo, meta, warnings)
}

func renderWeek(p output.Printer, res contract.Resolution) error {
	data := struct {
		Week *string `json:"week"`
	}{Week: res.TimeInfo.Week}
	return p.Success(data, map[string]any{"source": res.Source}, nil)
}

func buildContext(cmd *cobra.Command, opts *globalOptions, command string) (output.Printer, *globalOptions, error) {
	resolved, err := resolveGlobalOptions(cmd, opts)
	if err != nil {
		return output.Printer{}, nil, Wrap(2, err)
	}
	if resolved.JSON && resolved.Plain {
		return output.Printer{}, nil, Wrap(2, errors.New("--json and --plain are mutually exclusive"))
	}
	mode := output.ModeAuto
	if resolved.JSON {
		mode = output.ModeJSON
	} else if resolved.Plain {
		mode = output.ModePlain
	}
	printer := output.Printer{
		Mode:          mode,
		Command:       command,
		Fields:        splitCSV(resolved.Fields),
		Quiet:         resolved.Quiet,
		SchemaVersion: resolved.SchemaVersion,
		Out:           cmd.OutOrStdout(),
		Err:           cmd.ErrOrStderr(),
	}
	return printer, resolved, nil
}

// parseRef accepts an RFC3339 instant or a bare ISO date; empty means now.
func parseRef(ref string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(ref)
	if s == "" {
		return time.Now().In(loc), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --ref: %q", ref)
}

func resolveLocation(tz string) *time.Location {
	if strings.TrimSpace(tz) != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

func renderTopLevelError(cmd *cobra.Command, err error) {
	var appErr AppError
	if errors.As(err, &appErr) && appErr.Printed {
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err.Error())
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
