// Package ui provides the GTK4 presentation layer for the bezel shell.
package ui

import (
	"context"

	"github.com/bnema/bezel/internal/infrastructure/config"
)

// Dependencies holds all injected dependencies for the UI layer.
type Dependencies struct {
	Ctx           context.Context
	ConfigManager *config.Manager
	// InitialURL replaces the default URL of the first tab. Optional.
	InitialURL string
	// WatchConfig enables config hot reload.
	WatchConfig bool
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.ConfigManager == nil {
		return ErrMissingDependency("ConfigManager")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
