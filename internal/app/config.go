package app

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

type fileConfig struct {
	LLMCommand string   `toml:"llm_command"`
	LLMArgs    []string `toml:"llm_args"`
	LLMTimeout string   `toml:"llm_timeout"`
	TZ         string   `toml:"tz"`
	Output     string   `toml:"output"`
}

// Precedence, lowest to highest: user config, project config, explicit
// --config file, environment, flags.
func resolveGlobalOptions(cmd *cobra.Command, defaults *globalOptions) (*globalOptions, error) {
	resolved := *defaults

	userPath := defaultUserConfigPath()
	projectPath := ".tidtolk.toml"
	configPath := firstNonEmpty(env("TIDTOLK_CONFIG"), userPath)
	if flagValueChanged(cmd, "config") {
		configPath = defaults.Config
	}

	if cfg, ok := readConfigFile(userPath); ok {
		applyFileConfig(&resolved, cfg)
	}
	if cfg, ok := readConfigFile(projectPath); ok {
		applyFileConfig(&resolved, cfg)
	}
	if configPath != "" && configPath != userPath && configPath != projectPath {
		if cfg, ok := readConfigFile(configPath); ok {
			applyFileConfig(&resolved, cfg)
		}
	}

	applyEnv(&resolved)
	applyFlags(cmd, &resolved, defaults)

	if resolved.Config == "" {
		resolved.Config = configPath
	}
	return &resolved, nil
}

func applyFileConfig(dst *globalOptions, cfg fileConfig) {
	if cfg.LLMCommand != "" {
		dst.LLMCommand = cfg.LLMCommand
	}
	if len(cfg.LLMArgs) > 0 {
		dst.LLMArgs = cfg.LLMArgs
	}
	if cfg.LLMTimeout != "" {
		if d, err := time.ParseDuration(cfg.LLMTimeout); err == nil && d > 0 {
			dst.LLMTimeout = d
		}
	}
	if cfg.TZ != "" {
		dst.TZ = cfg.TZ
	}
	applyOutputMode(dst, cfg.Output)
}

func applyEnv(dst *globalOptions) {
	if v := env("TIDTOLK_LLM_COMMAND"); v != "" {
		dst.LLMCommand = v
	}
	if v := env("TIDTOLK_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			dst.LLMTimeout = d
		}
	}
	if v := env("TIDTOLK_NO_LLM"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dst.NoLLM = b
		}
	}
	if v := env("TIDTOLK_TIMEZONE"); v != "" {
		dst.TZ = v
	}
	applyOutputMode(dst, env("TIDTOLK_OUTPUT"))
}

func applyOutputMode(dst *globalOptions, mode string) {
	switch strings.ToLower(mode) {
	case "json":
		dst.JSON, dst.Plain = true, false
	case "plain":
		dst.JSON, dst.Plain = false, true
	}
}

func applyFlags(cmd *cobra.Command, dst, fromFlags *globalOptions) {
	copyIfChanged(cmd, "json", func() { dst.JSON = fromFlags.JSON })
	copyIfChanged(cmd, "plain", func() { dst.Plain = fromFlags.Plain })
	copyIfChanged(cmd, "fields", func() { dst.Fields = fromFlags.Fields })
	copyIfChanged(cmd, "quiet", func() { dst.Quiet = fromFlags.Quiet })
	copyIfChanged(cmd, "verbose", func() { dst.Verbose = fromFlags.Verbose })
	copyIfChanged(cmd, "config", func() { dst.Config = fromFlags.Config })
	copyIfChanged(cmd, "tz", func() { dst.TZ = fromFlags.TZ })
	copyIfChanged(cmd, "ref", func() { dst.Ref = fromFlags.Ref })
	copyIfChanged(cmd, "no-llm", func() { dst.NoLLM = fromFlags.NoLLM })
	copyIfChanged(cmd, "llm-command", func() { dst.LLMCommand = fromFlags.LLMCommand })
	copyIfChanged(cmd, "llm-timeout", func() { dst.LLMTimeout = fromFlags.LLMTimeout })
	copyIfChanged(cmd, "schema-version", func() { dst.SchemaVersion = fromFlags.SchemaVersion })
}

func copyIfChanged(cmd *cobra.Command, name string, fn func()) {
	if flagValueChanged(cmd, name) {
		fn()
	}
}

func flagValueChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

func readConfigFile(path string) (fileConfig, bool) {
	if strings.TrimSpace(path) == "" {
		return fileConfig{}, false
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, false
	}
	var cfg fileConfig
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return fileConfig{}, false
	}
	return cfg, true
}

func defaultUserConfigPath() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "tidtolk", "config.toml")
	}
	home := strings.TrimSpace(os.Getenv("HOME"))
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "tidtolk", "config.toml")
}

func env(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
