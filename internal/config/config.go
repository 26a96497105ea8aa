// Package config provides configuration loading and management.
package config

// Environment variables read by the CLI.
const (
	EnvConfig         = "ZERO_APP_CONFIG"
	EnvRegion         = "ZERO_APP_REGION"
	EnvPackageManager = "ZERO_APP_PACKAGE_MANAGER"
	EnvTemplateDir    = "ZERO_APP_TEMPLATE_DIR"
	EnvLogTimestamps  = "ZERO_APP_LOG_TIMESTAMPS"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Nil means the default (off). Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the CLI configuration file
// (~/.create-zero-app/config.yaml).
type Config struct {
	// Region prefills the region prompt. It does not change the region
	// literal the template is compared against.
	// Env: ZERO_APP_REGION, Default: us-east-1
	Region string `mapstructure:"region" yaml:"region,omitempty"`

	// PackageManager installs dependencies and appears in the next steps.
	// Env: ZERO_APP_PACKAGE_MANAGER, Default: pnpm
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager,omitempty"`

	// TemplateDir replaces the embedded template with an on-disk directory.
	// Env: ZERO_APP_TEMPLATE_DIR
	TemplateDir string `mapstructure:"templateDir" yaml:"templateDir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed into every command constructor.
type GlobalConfig struct {
	Config     *Config
	ConfigPath string
	Resolved   *ResolvedConfig
	Verbose    bool
}

// Region returns the resolved region prompt default.
func (g *GlobalConfig) Region() string {
	if g == nil || g.Resolved == nil {
		return ""
	}
	return g.Resolved.Region.Value
}

// PackageManager returns the resolved package manager.
func (g *GlobalConfig) PackageManager() string {
	if g == nil || g.Resolved == nil {
		return ""
	}
	return g.Resolved.PackageManager.Value
}

// TemplateDir returns the resolved template directory, or "" for the
// embedded template.
func (g *GlobalConfig) TemplateDir() string {
	if g == nil || g.Resolved == nil {
		return ""
	}
	return g.Resolved.TemplateDir.Value
}
