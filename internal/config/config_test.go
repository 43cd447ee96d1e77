package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBinder struct {
	fs *pflag.FlagSet
}

func (f *fakeBinder) Flags() *pflag.FlagSet { return f.fs }

func newFlagBinder(t *testing.T, defaults Config, args ...string) *fakeBinder {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)
	require.NoError(t, fs.Parse(args))
	return &fakeBinder{fs: fs}
}

// chdir into an empty directory, so no npltk.yaml is picked up.
func inEmptyDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Normalize.UnicodeNFC)
	assert.True(t, cfg.Normalize.PostpositionSplit)
	assert.True(t, cfg.Tokenize.SplitIntoSentences)
	assert.True(t, cfg.Tokenize.KeepPunct)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestRegisterFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, DefaultConfig())

	for _, k := range keys {
		assert.NotNil(t, fs.Lookup(k[1]), "flag %q for key %q", k[1], k[0])
	}
	assert.Equal(t, "text", fs.Lookup("format").DefValue)
	assert.Equal(t, "f", fs.Lookup("format").Shorthand)
}

func TestLoad_Defaults(t *testing.T) {
	inEmptyDir(t)
	defaults := DefaultConfig()

	cfg, err := Load(LoadOptions{Cmd: newFlagBinder(t, defaults), Defaults: defaults})

	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestLoad_FlagOverride(t *testing.T) {
	inEmptyDir(t)
	defaults := DefaultConfig()
	binder := newFlagBinder(t, defaults,
		"--postposition-split=false", "--keep-punct=false", "-f", "json", "--log-level=debug")

	cfg, err := Load(LoadOptions{Cmd: binder, Defaults: defaults})

	require.NoError(t, err)
	assert.False(t, cfg.Normalize.PostpositionSplit)
	assert.True(t, cfg.Normalize.Whitespace)
	assert.False(t, cfg.Tokenize.KeepPunct)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverride(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("NPLTK_NORMALIZE_HALANT_CLEANUP", "false")
	t.Setenv("NPLTK_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})

	require.NoError(t, err)
	assert.False(t, cfg.Normalize.HalantCleanup)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	inEmptyDir(t)
	cfgFile := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
log_level: info
normalize:
  zwj_zwnj: false
tokenize:
  split_into_sentences: false
output:
  format: json
`
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o644))
	defaults := DefaultConfig()
	binder := newFlagBinder(t, defaults, "--format=yaml")

	cfg, err := Load(LoadOptions{Cmd: binder, ConfigFile: cfgFile, Defaults: defaults})

	require.NoError(t, err)
	assert.False(t, cfg.Normalize.ZWJZWNJ)
	assert.True(t, cfg.Normalize.UnicodeNFC)
	assert.False(t, cfg.Tokenize.SplitIntoSentences)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, FormatYAML, cfg.Output.Format, "flags take precedence over the config file")
}

func TestLoad_ConfigFileInWorkingDir(t *testing.T) {
	inEmptyDir(t)
	require.NoError(t, os.WriteFile("npltk.toml", []byte("[normalize]\ndiacritic_dedupe = false\n"), 0o644))

	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})

	require.NoError(t, err)
	assert.False(t, cfg.Normalize.DiacriticDedupe)
}

func TestLoad_Errors(t *testing.T) {
	inEmptyDir(t)
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(":\t:bad yaml:::"), 0o644))

	_, err := Load(LoadOptions{ConfigFile: bad, Defaults: DefaultConfig()})
	assert.Error(t, err)

	_, err = Load(LoadOptions{ConfigFile: "/nonexistent/npltk.yaml", Defaults: DefaultConfig()})
	assert.Error(t, err)

	defaults := DefaultConfig()
	_, err = Load(LoadOptions{Cmd: newFlagBinder(t, defaults, "--format=xml"), Defaults: defaults})
	assert.ErrorContains(t, err, "xml")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "DEBUG"
	assert.NoError(t, cfg.Validate())

	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())
}
