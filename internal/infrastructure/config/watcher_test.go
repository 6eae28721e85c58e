package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleFileEvent_ReloadsAndNotifies(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(c *Config) { got = c })

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sidebar]\nanimation_duration_ms = 350\n"), 0o600))

	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	require.NotNil(t, got)
	assert.Equal(t, 350, got.Sidebar.AnimationDurationMs)
	assert.Equal(t, 350, mgr.Get().Sidebar.AnimationDurationMs)
}

func TestHandleFileEvent_InvalidFileKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sidebar]\nwidth = 1\n"), 0o600))

	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.False(t, called)
	assert.Equal(t, 280, mgr.Get().Sidebar.Width)
}

func TestHandleFileEvent_LogsThroughInjectedLogger(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var buf bytes.Buffer
	mgr.SetLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sidebar]\nwidth = 1\n"), 0o600))
	t.Setenv("BEZEL_LOG_LEVEL", "debug")

	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	out := buf.String()
	assert.Contains(t, out, "failed to reload config")
	assert.Contains(t, out, `"component":"config"`)
	assert.NotContains(t, out, "config change detected", "debug line filtered by the injected level")
}
