package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "robotlex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batch:\n  workers: 2\n  timeout: 3s\n"), 0o644))

	t.Cleanup(func() { globals = globalOptions{} })

	tests := []struct {
		name        string
		opts        globalOptions
		wantWorkers int
		wantTimeout time.Duration
		wantVerbose int
		wantLog     string
	}{
		{"defaults", globalOptions{}, 4, 10 * time.Second, 0, ""},
		{"file", globalOptions{configPath: path}, 2, 3 * time.Second, 0, ""},
		{"flags", globalOptions{configPath: path, verbose: 2, logFile: filepath.Join(dir, "out.log")}, 2, 3 * time.Second, 2, filepath.Join(dir, "out.log")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			globals = tt.opts
			cfg, err := loadConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.wantWorkers, cfg.Batch.Workers)
			assert.Equal(t, tt.wantTimeout, cfg.Batch.Timeout)
			assert.Equal(t, tt.wantVerbose, cfg.Log.Verbosity)
			assert.Equal(t, tt.wantLog, cfg.Log.File)
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Cleanup(func() { globals = globalOptions{} })
	globals = globalOptions{configPath: filepath.Join(t.TempDir(), "missing.yaml")}

	_, err := loadConfig()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.robot")
	require.NoError(t, os.WriteFile(path, []byte("Log  hi\n"), 0o644))

	data, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, "Log  hi\n", string(data))
}
