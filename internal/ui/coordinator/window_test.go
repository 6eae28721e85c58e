package coordinator

import (
	"context"
	"testing"

	"github.com/bnema/bezel/internal/application/port/mocks"
)

func TestWindowCoordinator_Minimize(t *testing.T) {
	controls := mocks.NewMockWindowControls(t)
	controls.EXPECT().Minimize().Once()

	NewWindowCoordinator(controls).Minimize(context.Background())
}

func TestWindowCoordinator_ToggleMaximize(t *testing.T) {
	t.Run("maximizes a restored window", func(t *testing.T) {
		controls := mocks.NewMockWindowControls(t)
		controls.EXPECT().IsMaximized().Return(false).Once()
		controls.EXPECT().Maximize().Once()

		NewWindowCoordinator(controls).ToggleMaximize(context.Background())
	})

	t.Run("restores a maximized window", func(t *testing.T) {
		controls := mocks.NewMockWindowControls(t)
		controls.EXPECT().IsMaximized().Return(true).Once()
		controls.EXPECT().Unmaximize().Once()

		NewWindowCoordinator(controls).ToggleMaximize(context.Background())
	})
}

func TestWindowCoordinator_Close(t *testing.T) {
	controls := mocks.NewMockWindowControls(t)
	controls.EXPECT().Close().Once()

	NewWindowCoordinator(controls).Close(context.Background())
}
