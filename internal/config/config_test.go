package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/codegauge/internal/lang"
	"github.com/phobologic/codegauge/internal/logging"
	"github.com/phobologic/codegauge/internal/rules"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, rules.Defaults(), cfg.Thresholds)
	assert.Empty(t, cfg.Analysis.Languages)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "warn", cfg.Logging.Level)

	size, err := cfg.MaxFileSizeBytes()
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), size)
}

func TestLoadFromDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `
thresholds:
  long_function: 50
  many_params: 3
analysis:
  languages: [python, cpp]
  max_file_size: 256KiB
  workers: 2
output:
  format: markdown
  max_functions: 10
  color: false
logging:
  level: debug
  format: json
`)

	cfg, err := Load("", dir)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Thresholds.LongFunction)
	assert.Equal(t, 3, cfg.Thresholds.ManyParams)
	assert.Equal(t, rules.DefaultHighComplexity, cfg.Thresholds.HighComplexity)
	assert.Equal(t, []string{"python", "cpp"}, cfg.Analysis.Languages)
	assert.Equal(t, 2, cfg.Analysis.Workers)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.Equal(t, 10, cfg.Output.MaxFunctions)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, "json", cfg.Logging.Format)

	size, err := cfg.MaxFileSizeBytes()
	require.NoError(t, err)
	assert.Equal(t, uint64(256*1024), size)
}

func TestLoadExplicitPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "output:\n  format: json\n")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CODEGAUGE_THRESHOLDS_HIGH_COMPLEXITY", "4")
	t.Setenv("CODEGAUGE_OUTPUT_FORMAT", "yaml")

	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Thresholds.HighComplexity)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"negative threshold", "thresholds:\n  many_params: -1\n", ErrInvalidThreshold},
		{"unknown format", "output:\n  format: html\n", ErrUnknownFormat},
		{"unknown language", "analysis:\n  languages: [ruby]\n", lang.ErrUnsupportedLanguage},
		{"bad size", "analysis:\n  max_file_size: lots\n", ErrInvalidSize},
		{"negative workers", "analysis:\n  workers: -2\n", ErrInvalidWorkers},
		{"bad log level", "logging:\n  level: chatty\n", logging.ErrUnknownLevel},
		{"bad log format", "logging:\n  format: xml\n", logging.ErrUnknownFormat},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			_, err := Load("", dir)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateZeroConfig(t *testing.T) {
	t.Parallel()

	cfg := Config{}
	require.NoError(t, cfg.Validate())
	require.NoError(t, Default().Validate())
}
