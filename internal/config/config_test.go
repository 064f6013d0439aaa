package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/exportgen/internal/domain"
)

// clearEnv neutralizes any EXPORTGEN_* variables set by the caller's shell.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{EnvSourceRoot, EnvOutputRoot, EnvDescriptor, EnvPreview, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestDefault_MatchesGeneratorDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, domain.DefaultSourceRoot, cfg.SourceRoot)
	assert.Equal(t, domain.DefaultOutputRoot, cfg.OutputRoot)
	assert.Equal(t, domain.DefaultPreviewSize, cfg.Preview)
	assert.Equal(t, DefaultDescriptor, cfg.Descriptor)
	assert.False(t, cfg.LogSource)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	writeFile(t, root, FileName, "src: source\nout: build\npreview: 10\nlog_source: true\n")

	cfg, err := Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, "source", cfg.SourceRoot)
	assert.Equal(t, "build", cfg.OutputRoot)
	assert.Equal(t, 10, cfg.Preview)
	assert.True(t, cfg.LogSource)
	assert.Equal(t, "package.json", cfg.Descriptor, "unset keys keep defaults")
}

func TestLoad_EmptyYAMLFile(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	writeFile(t, root, FileName, "")

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	clearEnv(t)

	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_UnknownYAMLKey(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	writeFile(t, root, FileName, "source_root: lib\n")

	_, err := Load(root, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	writeFile(t, root, FileName, "src: from-yaml\nout: from-yaml\ndescriptor: yaml.json\n")
	writeFile(t, root, EnvFileName, "EXPORTGEN_OUT=from-dotenv\nEXPORTGEN_DESCRIPTOR=dotenv.json\n")

	t.Setenv(EnvDescriptor, "env.json")

	cfg, err := Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, "from-yaml", cfg.SourceRoot)
	assert.Equal(t, "from-dotenv", cfg.OutputRoot)
	assert.Equal(t, "env.json", cfg.Descriptor)
}

func TestLoad_InvalidPreviewEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPreview, "many")

	_, err := Load(t.TempDir(), "")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "nested root", mutate: func(c *Config) { c.SourceRoot = "packages/ui/src" }},
		{name: "empty src", mutate: func(c *Config) { c.SourceRoot = "" }, wantErr: true},
		{name: "absolute out", mutate: func(c *Config) { c.OutputRoot = "/dist" }, wantErr: true},
		{name: "unclean src", mutate: func(c *Config) { c.SourceRoot = "./src" }, wantErr: true},
		{name: "trailing slash", mutate: func(c *Config) { c.OutputRoot = "dist/" }, wantErr: true},
		{name: "dot root", mutate: func(c *Config) { c.SourceRoot = "." }, wantErr: true},
		{name: "escaping root", mutate: func(c *Config) { c.OutputRoot = "../dist" }, wantErr: true},
		{name: "empty descriptor", mutate: func(c *Config) { c.Descriptor = " " }, wantErr: true},
		{name: "negative preview", mutate: func(c *Config) { c.Preview = -1 }, wantErr: true},
		{name: "zero preview", mutate: func(c *Config) { c.Preview = 0 }},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "json format", mutate: func(c *Config) { c.LogFormat = "json" }},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
