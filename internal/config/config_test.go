package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)

	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 30, cfg.Limit.MaxLength)
	assert.True(t, cfg.Output.Banner)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
limit:
  max_length: 12
run:
  parallel: 4
  keep_going: true
output:
  banner: false
`), 0o600))

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Limit.MaxLength)
	assert.Equal(t, 4, cfg.Run.Parallel)
	assert.True(t, cfg.Run.KeepGoing)
	assert.False(t, cfg.Output.Banner)
	assert.Equal(t, 512<<20, cfg.Limit.MaxOutputBytes)
}

func TestLoad_DiscoversFileInConfigDir(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "codeseq"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codeseq", "codeseq.yaml"), []byte("output:\n  summary: true\n"), 0o600))

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.True(t, cfg.Output.Summary)
}

func TestLoad_IgnoresExtensionlessFile(t *testing.T) {
	dir := isolate(t)

	binary := []byte{0x7f, 'E', 'L', 'F', 0x02, 0x01, 0x01, 0x00}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codeseq"), binary, 0o755))

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("CODESEQ_RUN_PARALLEL", "3")
	t.Setenv("CODESEQ_LOG_VERBOSE", "true")

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Run.Parallel)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(New(filepath.Join(dir, "missing.yaml")))
	require.Error(t, err)

	t.Setenv("CODESEQ_LIMIT_MAX_LENGTH", "0")
	t.Setenv("CODESEQ_RUN_PARALLEL", "-1")

	_, err = Load(New(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit.max_length")
	assert.Contains(t, err.Error(), "run.parallel")
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "codeseq"), ConfigDir())
}
