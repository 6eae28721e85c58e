package port

import "context"

// Channel names a message exchanged between the controller and presentation
// surfaces.
type Channel string

// Commands accepted from presentation surfaces.
const (
	ChannelCreateTab         Channel = "create-tab"
	ChannelNavigate          Channel = "navigate"
	ChannelActivateTab       Channel = "activate-tab"
	ChannelCloseTab          Channel = "close-tab"
	ChannelSetSidebarVisible Channel = "set-sidebar-visible"
	ChannelWindowMinimize    Channel = "window-minimize"
	ChannelWindowMaximize    Channel = "window-maximize"
	ChannelWindowClose       Channel = "window-close"
)

// Query answered synchronously from controller state.
const ChannelGetActiveTabID Channel = "get-active-tab-id"

// Notifications fired by the controller to every surface.
const (
	ChannelTabCreated               Channel = "tab-created"
	ChannelTabActivated             Channel = "tab-activated"
	ChannelTabClosed                Channel = "tab-closed"
	ChannelTabURLUpdated            Channel = "tab-url-updated"
	ChannelTabTitleUpdated          Channel = "tab-title-updated"
	ChannelSidebarVisibilityChanged Channel = "sidebar-visibility-changed"
	ChannelSurfaceIdentity          Channel = "surface-identity"
)

// SurfaceRole distinguishes the presentation surfaces.
type SurfaceRole string

const (
	SurfaceMain    SurfaceRole = "main"
	SurfaceSidebar SurfaceRole = "sidebar"
)

// Notification is one outbound event with positional arguments.
// A nil argument is delivered as null.
type Notification struct {
	Channel Channel
	Args    []any
}

// NewNotification builds a notification.
func NewNotification(channel Channel, args ...any) Notification {
	if args == nil {
		args = []any{}
	}
	return Notification{Channel: channel, Args: args}
}

// Surface is one presentation endpoint able to receive notifications.
type Surface interface {
	Role() SurfaceRole
	// Send delivers a notification to the surface.
	Send(ctx context.Context, n Notification) error
	// Reply answers a query previously issued by this surface.
	Reply(ctx context.Context, requestID string, result any) error
}

// Notifier fans a notification out to every presentation surface.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
