package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		env        string
		config     string
		def        string
		wantValue  string
		wantSource Source
		wantShadow map[Source]string
	}{
		{
			name:       "flag wins over everything",
			flag:       "npm",
			env:        "yarn",
			config:     "bun",
			def:        "pnpm",
			wantValue:  "npm",
			wantSource: SourceFlag,
			wantShadow: map[Source]string{SourceEnv: "yarn", SourceConfig: "bun", SourceDefault: "pnpm"},
		},
		{
			name:       "env over config",
			env:        "yarn",
			config:     "bun",
			def:        "pnpm",
			wantValue:  "yarn",
			wantSource: SourceEnv,
			wantShadow: map[Source]string{SourceConfig: "bun", SourceDefault: "pnpm"},
		},
		{
			name:       "config over default",
			config:     "bun",
			def:        "pnpm",
			wantValue:  "bun",
			wantSource: SourceConfig,
			wantShadow: map[Source]string{SourceDefault: "pnpm"},
		},
		{
			name:       "default",
			def:        "pnpm",
			wantValue:  "pnpm",
			wantSource: SourceDefault,
			wantShadow: map[Source]string{},
		},
		{
			name:       "nothing set",
			wantSource: SourceDefault,
			wantShadow: map[Source]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(ResolveOptions{
				Key:         "packageManager",
				FlagValue:   tt.flag,
				EnvValue:    tt.env,
				ConfigValue: tt.config,
				Default:     tt.def,
			})

			assert.Equal(t, "packageManager", got.Key)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Equal(t, tt.wantShadow, got.Shadowed)
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	env := &Env{ConfigFile: "/env/config.yaml"}

	t.Run("flag", func(t *testing.T) {
		got, err := ResolveConfigPath("/flag/config.yaml", env)
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", got.Value)
		assert.Equal(t, SourceFlag, got.Source)
		assert.Equal(t, "/env/config.yaml", got.Shadowed[SourceEnv])
	})

	t.Run("env", func(t *testing.T) {
		got, err := ResolveConfigPath("", env)
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", got.Value)
		assert.Equal(t, SourceEnv, got.Source)
	})

	t.Run("default", func(t *testing.T) {
		got, err := ResolveConfigPath("", nil)
		require.NoError(t, err)
		paths, err := DefaultPaths()
		require.NoError(t, err)
		assert.Equal(t, paths.ConfigFile, got.Value)
		assert.Equal(t, SourceDefault, got.Source)
	})
}

func TestResolveConfigPath_NoHomeDir(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("home directory comes from $HOME only on unix")
	}
	t.Setenv("HOME", "")

	got, err := ResolveConfigPath("/flag/config.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, "/flag/config.yaml", got.Value)

	got, err = ResolveConfigPath("", &Env{ConfigFile: "/env/config.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "/env/config.yaml", got.Value)

	_, err = ResolveConfigPath("", nil)
	assert.Error(t, err, "the default path needs a home directory")
}

func TestResolveAll(t *testing.T) {
	resolved := ResolveAll(ResolveAllOptions{
		PackageManagerFlag: "npm",
		Env:                &Env{TemplateDir: "/env/template"},
		Config: &Config{
			Region:         "eu-west-2",
			PackageManager: "bun",
		},
		DefaultRegion:         "us-east-1",
		DefaultPackageManager: "pnpm",
	})

	assert.Equal(t, "eu-west-2", resolved.Region.Value)
	assert.Equal(t, SourceConfig, resolved.Region.Source)
	assert.Equal(t, "npm", resolved.PackageManager.Value)
	assert.Equal(t, SourceFlag, resolved.PackageManager.Source)
	assert.Equal(t, "bun", resolved.PackageManager.Shadowed[SourceConfig])
	assert.Equal(t, "/env/template", resolved.TemplateDir.Value)
	assert.Equal(t, SourceEnv, resolved.TemplateDir.Source)
	assert.Len(t, resolved.Values(), 3)
}

func TestResolveAll_NilInputs(t *testing.T) {
	resolved := ResolveAll(ResolveAllOptions{
		DefaultRegion:         "us-east-1",
		DefaultPackageManager: "pnpm",
	})

	assert.Equal(t, "us-east-1", resolved.Region.Value)
	assert.Equal(t, "pnpm", resolved.PackageManager.Value)
	assert.Empty(t, resolved.TemplateDir.Value)
}

func TestResolveTimestamps(t *testing.T) {
	cfgOn := &Config{Log: LogConfig{Timestamps: boolPtr(true)}}
	envOff := &Env{LogTimestamps: boolPtr(false)}

	tests := []struct {
		name      string
		flagSet   bool
		flagValue bool
		env       *Env
		cfg       *Config
		want      *bool
	}{
		{name: "flag false beats config", flagSet: true, flagValue: false, cfg: cfgOn, want: boolPtr(false)},
		{name: "flag true beats env", flagSet: true, flagValue: true, env: envOff, want: boolPtr(true)},
		{name: "env beats config", env: envOff, cfg: cfgOn, want: boolPtr(false)},
		{name: "unset env falls through", env: &Env{}, cfg: cfgOn, want: boolPtr(true)},
		{name: "config", cfg: cfgOn, want: boolPtr(true)},
		{name: "unset", cfg: &Config{}, want: nil},
		{name: "nothing", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTimestamps(tt.flagSet, tt.flagValue, tt.env, tt.cfg))
		})
	}
}
