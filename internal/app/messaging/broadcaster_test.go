package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/bezel/internal/application/port"
	portmocks "github.com/bnema/bezel/internal/application/port/mocks"
)

func TestBroadcaster_NotifyReachesEverySurface(t *testing.T) {
	ctx := context.Background()
	n := port.NewNotification(port.ChannelTabClosed, 2)

	mainSurface := portmocks.NewMockSurface(t)
	mainSurface.EXPECT().Send(mock.Anything, n).Return(errors.New("not ready")).Once()
	mainSurface.EXPECT().Role().Return(port.SurfaceMain).Maybe()

	sidebar := portmocks.NewMockSurface(t)
	sidebar.EXPECT().Send(mock.Anything, n).Return(nil).Once()

	NewBroadcaster(mainSurface, sidebar).Notify(ctx, n)
}

func TestBroadcaster_SkipsNilSurfaces(t *testing.T) {
	sidebar := portmocks.NewMockSurface(t)
	b := NewBroadcaster(nil, sidebar, nil)
	assert.Len(t, b.Surfaces(), 1)
}

func TestBroadcaster_AnnounceIdentity(t *testing.T) {
	sidebar := portmocks.NewMockSurface(t)
	sidebar.EXPECT().Role().Return(port.SurfaceSidebar)
	sidebar.EXPECT().
		Send(mock.Anything, port.NewNotification(port.ChannelSurfaceIdentity, "sidebar")).
		Return(nil).
		Once()

	NewBroadcaster(sidebar).AnnounceIdentity(context.Background(), sidebar)
}
