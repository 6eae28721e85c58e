package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bezel/internal/infrastructure/config"
)

func TestDependencies_Validate(t *testing.T) {
	manager, err := config.NewManagerWithDir(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name    string
		deps    Dependencies
		missing string
	}{
		{name: "no context", deps: Dependencies{ConfigManager: manager}, missing: "Ctx"},
		{name: "no config", deps: Dependencies{Ctx: context.Background()}, missing: "ConfigManager"},
		{name: "complete", deps: Dependencies{Ctx: context.Background(), ConfigManager: manager}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.deps.Validate()
			if tt.missing == "" {
				assert.NoError(t, err)
				return
			}
			var depErr DependencyError
			require.True(t, errors.As(err, &depErr))
			assert.Equal(t, tt.missing, depErr.Name)
		})
	}
}

func TestNew_RejectsIncompleteDependencies(t *testing.T) {
	_, err := New(&Dependencies{})
	var depErr DependencyError
	require.True(t, errors.As(err, &depErr))
}

func TestApp_QuitBeforeRun(t *testing.T) {
	manager, err := config.NewManagerWithDir(t.TempDir())
	require.NoError(t, err)

	app, err := New(&Dependencies{Ctx: context.Background(), ConfigManager: manager})
	require.NoError(t, err)

	assert.NotPanics(t, app.Quit)
}
