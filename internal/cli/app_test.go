package cli

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bezel/internal/infrastructure/config"
	"github.com/bnema/bezel/internal/logging"
)

func TestResolveLogging(t *testing.T) {
	t.Setenv(logging.EnvLevel, "")
	t.Setenv(logging.EnvFormat, "")
	file := config.LoggingConfig{Level: "warn", Format: "json"}

	tests := []struct {
		name       string
		opts       Options
		wantLevel  zerolog.Level
		wantFormat string
		wantErr    bool
	}{
		{name: "file values", wantLevel: zerolog.WarnLevel, wantFormat: logging.FormatJSON},
		{name: "flags win", opts: Options{LogLevel: "debug", LogFormat: "console"}, wantLevel: zerolog.DebugLevel, wantFormat: logging.FormatConsole},
		{name: "bad level", opts: Options{LogLevel: "loud"}, wantErr: true},
		{name: "bad format", opts: Options{LogFormat: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveLogging(file, tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantFormat, got.Format)
		})
	}
}

func TestResolveLogging_EnvBelowFlags(t *testing.T) {
	t.Setenv(logging.EnvLevel, "error")
	t.Setenv(logging.EnvFormat, "")

	got, err := resolveLogging(config.LoggingConfig{Level: "info"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, got.Level)

	got, err = resolveLogging(config.LoggingConfig{Level: "info"}, Options{LogLevel: "trace"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.TraceLevel, got.Level)
}
