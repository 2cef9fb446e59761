package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/robotlex/robot/classify"
	"github.com/dhamidi/robotlex/robot/lexer"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, classify.RecognizerNames(), cfg.Recognizers)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, 10*time.Second, cfg.Batch.Timeout)
	assert.Contains(t, cfg.Batch.Extensions, ".robot")
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
recognizers:
  - line-feed-text
  - pipe-separated
log:
  verbosity: 2
  file: robotlex.log
batch:
  workers: 8
  timeout: 1500ms
  extensions: [".robot"]
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"line-feed-text", "pipe-separated"}, cfg.Recognizers)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, "robotlex.log", cfg.Log.File)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, 1500*time.Millisecond, cfg.Batch.Timeout)
	assert.Equal(t, []string{".robot"}, cfg.Batch.Extensions)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("log:\n  verbosity: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Batch, cfg.Batch)
	assert.Equal(t, Default().Recognizers, cfg.Recognizers)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown-recognizer", "recognizers: [variable]"},
		{"zero-workers", "batch:\n  workers: 0"},
		{"negative-timeout", "batch:\n  timeout: -1s"},
		{"unknown-field", "colors: true"},
		{"bad-duration", "batch:\n  timeout: soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robotlex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batch:\n  workers: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Batch.Workers)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestBuilder(t *testing.T) {
	cfg := Default()
	cfg.Recognizers = []string{"line-feed-text"}
	b, err := cfg.Builder()
	require.NoError(t, err)

	out := b.Build(lexer.TokenizeString("a  \\n"))
	require.Equal(t, 1, out.Len())
	assert.Equal(t, classify.ContextLineFeedText, out.Contexts()[0].Type())
}
