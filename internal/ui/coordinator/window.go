package coordinator

import (
	"context"

	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/logging"
)

// WindowCoordinator forwards window chrome buttons to the host window.
type WindowCoordinator struct {
	controls port.WindowControls
}

// NewWindowCoordinator creates a new WindowCoordinator.
func NewWindowCoordinator(controls port.WindowControls) *WindowCoordinator {
	return &WindowCoordinator{controls: controls}
}

// Minimize iconifies the window.
func (c *WindowCoordinator) Minimize(ctx context.Context) {
	logging.FromContext(ctx).Debug().Msg("window minimize")
	c.controls.Minimize()
}

// ToggleMaximize maximizes the window, or restores it when already maximized.
func (c *WindowCoordinator) ToggleMaximize(ctx context.Context) {
	log := logging.FromContext(ctx)
	if c.controls.IsMaximized() {
		log.Debug().Msg("window unmaximize")
		c.controls.Unmaximize()
		return
	}
	log.Debug().Msg("window maximize")
	c.controls.Maximize()
}

// Close closes the window, which ends the application.
func (c *WindowCoordinator) Close(ctx context.Context) {
	logging.FromContext(ctx).Info().Msg("window close requested")
	c.controls.Close()
}
