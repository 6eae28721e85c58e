package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/bezel/internal/app/messaging/mocks"
	"github.com/bnema/bezel/internal/application/port"
	portmocks "github.com/bnema/bezel/internal/application/port/mocks"
	"github.com/bnema/bezel/internal/domain/entity"
)

func bindTarget(t *testing.T) (*MessageRouter, *mocks.MockCommandTarget, func()) {
	t.Helper()
	ctrl := gomock.NewController(t)
	target := mocks.NewMockCommandTarget(ctrl)
	router := NewMessageRouter(context.Background())
	unbind, err := Bind(router, target)
	require.NoError(t, err)
	return router, target, unbind
}

func TestBind_Commands(t *testing.T) {
	router, target, _ := bindTarget(t)

	gomock.InOrder(
		target.EXPECT().CreateTab(gomock.Any(), ""),
		target.EXPECT().CreateTab(gomock.Any(), ""),
		target.EXPECT().CreateTab(gomock.Any(), "https://example.com"),
		target.EXPECT().NavigateActiveTo(gomock.Any(), "https://go.dev"),
		target.EXPECT().ActivateTab(gomock.Any(), entity.TabID(2)),
		target.EXPECT().CloseTab(gomock.Any(), entity.TabID(1)),
		target.EXPECT().SetSidebarVisible(gomock.Any(), true),
		target.EXPECT().MinimizeWindow(gomock.Any()),
		target.EXPECT().ToggleMaximizeWindow(gomock.Any()),
		target.EXPECT().CloseWindow(gomock.Any()),
	)

	for _, raw := range []string{
		`{"type":"create-tab"}`,
		`{"type":"create-tab","payload":null}`,
		`{"type":"create-tab","payload":"https://example.com"}`,
		`{"type":"navigate","payload":"https://go.dev"}`,
		`{"type":"activate-tab","payload":2}`,
		`{"type":"close-tab","payload":1}`,
		`{"type":"set-sidebar-visible","payload":true}`,
		`{"type":"window-minimize"}`,
		`{"type":"window-maximize"}`,
		`{"type":"window-close"}`,
	} {
		require.NoError(t, router.Dispatch(nil, []byte(raw)), raw)
	}
}

func TestBind_RejectsMalformedPayloads(t *testing.T) {
	router, _, _ := bindTarget(t)

	for _, raw := range []string{
		`{"type":"navigate"}`,
		`{"type":"activate-tab","payload":"two"}`,
		`{"type":"close-tab","payload":1.5}`,
		`{"type":"set-sidebar-visible","payload":"yes"}`,
	} {
		assert.Error(t, router.Dispatch(nil, []byte(raw)), raw)
	}
}

func TestBind_ActiveTabQuery(t *testing.T) {
	router, target, _ := bindTarget(t)

	target.EXPECT().ActiveTabID().Return(entity.TabID(4), true)
	target.EXPECT().ActiveTabID().Return(entity.TabID(0), false)

	source := portmocks.NewMockSurface(t)
	source.EXPECT().Role().Return(port.SurfaceMain).Maybe()
	source.EXPECT().Reply(mock.Anything, "a", 4).Return(nil).Once()
	source.EXPECT().Reply(mock.Anything, "b", nil).Return(nil).Once()

	require.NoError(t, router.Dispatch(source, []byte(`{"type":"get-active-tab-id","requestId":"a"}`)))
	require.NoError(t, router.Dispatch(source, []byte(`{"type":"get-active-tab-id","requestId":"b"}`)))
}

func TestBind_UnbindRemovesEveryChannel(t *testing.T) {
	router, _, unbind := bindTarget(t)

	unbind()

	for _, ch := range []port.Channel{
		port.ChannelCreateTab,
		port.ChannelNavigate,
		port.ChannelActivateTab,
		port.ChannelCloseTab,
		port.ChannelSetSidebarVisible,
		port.ChannelWindowMinimize,
		port.ChannelWindowMaximize,
		port.ChannelWindowClose,
		port.ChannelGetActiveTabID,
	} {
		assert.False(t, router.Has(ch), ch)
	}
}

func TestBind_RequiresArguments(t *testing.T) {
	_, err := Bind(nil, nil)
	assert.Error(t, err)
}
