package config

import (
	"github.com/zeroapp/create-zero-app/internal/output"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig Source = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// ResolvedValue is a configuration value with its origin.
type ResolvedValue struct {
	Key    string
	Value  string
	Source Source
	// Shadowed contains values overridden by higher precedence sources.
	Shadowed map[Source]string
}

// ResolveOptions describes the candidate values for one key.
type ResolveOptions struct {
	Key         string
	FlagValue   string
	EnvValue    string
	ConfigValue string
	Default     string
}

// Resolve picks a value by precedence: flag > env > config > default.
// Empty candidates are ignored. When nothing is set the result is the
// default, which may itself be empty.
func Resolve(opts ResolveOptions) ResolvedValue {
	candidates := []struct {
		source Source
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, opts.EnvValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.Default},
	}

	result := ResolvedValue{
		Key:      opts.Key,
		Source:   SourceDefault,
		Shadowed: make(map[Source]string),
	}

	found := false
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if !found {
			result.Value = c.value
			result.Source = c.source
			found = true
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// ResolveConfigPath resolves the config file path: --config flag, then
// ZERO_APP_CONFIG, then ~/.create-zero-app/config.yaml. The home directory
// is only looked up when neither is set.
func ResolveConfigPath(flagValue string, e *Env) (ResolvedValue, error) {
	if e == nil {
		e = &Env{}
	}

	opts := ResolveOptions{
		Key:       "config",
		FlagValue: ExpandTilde(flagValue),
		EnvValue:  ExpandTilde(e.ConfigFile),
	}
	if opts.FlagValue == "" && opts.EnvValue == "" {
		paths, err := DefaultPaths()
		if err != nil {
			return ResolvedValue{}, err
		}
		opts.Default = paths.ConfigFile
	}

	return Resolve(opts), nil
}

// ResolveAllOptions carries flag values and the loaded config.
type ResolveAllOptions struct {
	PackageManagerFlag string
	TemplateDirFlag    string
	Env                *Env
	Config             *Config

	// DefaultRegion and DefaultPackageManager are the built-in defaults.
	DefaultRegion         string
	DefaultPackageManager string
}

// ResolvedConfig holds every resolved configuration value.
type ResolvedConfig struct {
	// Region prefills the region prompt. There is no flag: --region is an
	// answer, not a default.
	Region         ResolvedValue
	PackageManager ResolvedValue
	TemplateDir    ResolvedValue
}

// Values returns the resolved values in a stable order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.Region, r.PackageManager, r.TemplateDir}
}

// ResolveAll resolves every configuration value.
func ResolveAll(opts ResolveAllOptions) *ResolvedConfig {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	e := opts.Env
	if e == nil {
		e = &Env{}
	}

	return &ResolvedConfig{
		Region: Resolve(ResolveOptions{
			Key:         "region",
			EnvValue:    e.Region,
			ConfigValue: cfg.Region,
			Default:     opts.DefaultRegion,
		}),
		PackageManager: Resolve(ResolveOptions{
			Key:         "packageManager",
			FlagValue:   opts.PackageManagerFlag,
			EnvValue:    e.PackageManager,
			ConfigValue: cfg.PackageManager,
			Default:     opts.DefaultPackageManager,
		}),
		TemplateDir: Resolve(ResolveOptions{
			Key:         "templateDir",
			FlagValue:   ExpandTilde(opts.TemplateDirFlag),
			EnvValue:    ExpandTilde(e.TemplateDir),
			ConfigValue: ExpandTilde(cfg.TemplateDir),
		}),
	}
}

// ResolveTimestamps resolves the log timestamp toggle. flagSet reports
// whether --timestamps was given explicitly. Nil means the default.
func ResolveTimestamps(flagSet, flagValue bool, e *Env, cfg *Config) *bool {
	if flagSet {
		return &flagValue
	}
	if e != nil && e.LogTimestamps != nil {
		return e.LogTimestamps
	}
	if cfg != nil {
		return cfg.Log.Timestamps
	}
	return nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
