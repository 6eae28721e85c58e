package coordinator

import (
	"context"

	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/application/usecase"
	"github.com/bnema/bezel/internal/domain/entity"
	urlutil "github.com/bnema/bezel/internal/domain/url"
	"github.com/bnema/bezel/internal/infrastructure/config"
	"github.com/bnema/bezel/internal/logging"
)

// OverlayRaiser keeps an overlay stacked above content views.
type OverlayRaiser interface {
	RaiseIfShown(ctx context.Context)
}

// TabCoordinator manages tab lifecycle and the layout of content views.
// It must only be used from the host main loop.
type TabCoordinator struct {
	tabsUC   *usecase.ManageTabsUseCase
	tabs     *entity.TabRegistry
	host     port.ViewHost
	notifier port.Notifier
	overlay  OverlayRaiser

	views       map[entity.TabID]port.ContentView
	bezel       int
	titleBudget int
}

// TabCoordinatorConfig holds configuration for TabCoordinator.
type TabCoordinatorConfig struct {
	TabsUC   *usecase.ManageTabsUseCase
	Tabs     *entity.TabRegistry
	Host     port.ViewHost
	Notifier port.Notifier
	// Overlay is raised after layout changes when fully shown. Optional.
	Overlay     OverlayRaiser
	BezelWidth  int
	TitleBudget int
}

// NewTabCoordinator creates a new TabCoordinator.
func NewTabCoordinator(ctx context.Context, cfg TabCoordinatorConfig) *TabCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating tab coordinator")

	tabs := cfg.Tabs
	if tabs == nil {
		tabs = entity.NewTabRegistry()
	}
	budget := cfg.TitleBudget
	if budget <= 0 {
		budget = entity.DefaultTitleBudget
	}

	return &TabCoordinator{
		tabsUC:      cfg.TabsUC,
		tabs:        tabs,
		host:        cfg.Host,
		notifier:    cfg.Notifier,
		overlay:     cfg.Overlay,
		views:       make(map[entity.TabID]port.ContentView),
		bezel:       cfg.BezelWidth,
		titleBudget: budget,
	}
}

// CreateTab opens a tab on rawURL, or the default URL when empty, announces
// it and activates it. Host failures are logged; the allocated ID is not reused.
func (c *TabCoordinator) CreateTab(ctx context.Context, rawURL string) {
	log := logging.FromContext(ctx)

	out, err := c.tabsUC.Create(ctx, usecase.CreateTabInput{
		Registry: c.tabs,
		URL:      rawURL,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create tab")
		return
	}
	tab := out.Tab
	tab.Title = urlutil.Hostname(tab.URL)

	view, err := c.host.CreateView(ctx, c.observerFor(ctx, tab.ID))
	if err != nil {
		log.Error().Err(err).Int("tab_id", int(tab.ID)).Msg("failed to create content view")
		c.tabsUC.Discard(ctx, c.tabs, tab.ID)
		return
	}
	c.views[tab.ID] = view

	view.SetBounds(c.contentBounds())
	view.LoadURL(tab.URL)

	c.notify(ctx, port.ChannelTabCreated, int(tab.ID), tab.URL, true)
	c.raiseOverlay(ctx)

	c.ActivateTab(ctx, tab.ID)
}

// observerFor relays page events of one tab. Events for a closed tab are dropped.
func (c *TabCoordinator) observerFor(ctx context.Context, id entity.TabID) port.ViewObserver {
	return port.ViewObserver{
		OnTitleChanged: func(title string) {
			tab := c.tabs.Find(id)
			if tab == nil {
				return
			}
			tab.Title = title
			c.notify(ctx, port.ChannelTabTitleUpdated, int(id), tab.DisplayTitle(c.titleBudget))
		},
		OnLoadFinished: func() {
			tab := c.tabs.Find(id)
			view := c.views[id]
			if tab == nil || view == nil {
				return
			}
			if current := view.URL(); current != "" {
				tab.URL = current
			}
			if c.tabs.IsActive(id) {
				c.notify(ctx, port.ChannelTabURLUpdated, tab.URL)
			}
		},
	}
}

// ActivateTab lays out the given tab and collapses every other one.
// Unknown IDs are ignored.
func (c *TabCoordinator) ActivateTab(ctx context.Context, id entity.TabID) {
	log := logging.FromContext(ctx)

	ok, err := c.tabsUC.Activate(ctx, c.tabs, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to activate tab")
		return
	}
	if !ok {
		return
	}

	c.layout()

	c.notify(ctx, port.ChannelTabActivated, int(id))
	c.notify(ctx, port.ChannelTabURLUpdated, c.currentURL(id))
	c.raiseOverlay(ctx)
}

// CloseTab destroys a tab's view. Closing the active tab activates the first
// remaining tab, or announces that no tab is active.
func (c *TabCoordinator) CloseTab(ctx context.Context, id entity.TabID) {
	log := logging.FromContext(ctx)

	out, err := c.tabsUC.Close(ctx, c.tabs, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to close tab")
		return
	}
	if !out.Closed {
		return
	}

	if view, ok := c.views[id]; ok {
		view.Destroy()
		delete(c.views, id)
	}
	c.notify(ctx, port.ChannelTabClosed, int(id))

	if !out.WasActive {
		return
	}
	if out.HasNext {
		c.ActivateTab(ctx, out.Next)
		return
	}
	c.notify(ctx, port.ChannelTabActivated, nil)
	c.notify(ctx, port.ChannelTabURLUpdated, "")
}

// NavigateActiveTo loads rawURL in the active tab. The URL is used verbatim.
func (c *TabCoordinator) NavigateActiveTo(ctx context.Context, rawURL string) {
	log := logging.FromContext(logging.WithURL(ctx, rawURL))

	tab := c.tabs.ActiveTab()
	if tab == nil {
		log.Debug().Msg("navigate ignored, no active tab")
		return
	}
	view, ok := c.views[tab.ID]
	if !ok {
		return
	}
	tab.URL = rawURL
	view.LoadURL(rawURL)
	log.Debug().Int("tab_id", int(tab.ID)).Msg("navigating active tab")
}

// HandleResize re-applies content geometry after the window size changed.
// Only the active view gets a visible size.
func (c *TabCoordinator) HandleResize(ctx context.Context) {
	bounds := c.layout()
	logging.FromContext(ctx).Debug().
		Int("width", bounds.Width).
		Int("height", bounds.Height).
		Msg("content resized")
	c.raiseOverlay(ctx)
}

// ActiveTabID returns the active tab, if any.
func (c *TabCoordinator) ActiveTabID() (entity.TabID, bool) {
	return c.tabs.ActiveID()
}

// Tabs returns the open tabs in creation order.
func (c *TabCoordinator) Tabs() []*entity.Tab {
	return c.tabs.Tabs()
}

// ApplyConfig picks up reloaded tab settings and re-lays out the views.
func (c *TabCoordinator) ApplyConfig(ctx context.Context, cfg *config.Config) {
	if cfg == nil {
		return
	}
	c.tabsUC.SetDefaultURL(cfg.Tabs.DefaultURL)
	if cfg.Tabs.TitleMaxLength > 0 {
		c.titleBudget = cfg.Tabs.TitleMaxLength
	}
	if cfg.Window.BezelWidth != c.bezel {
		c.bezel = cfg.Window.BezelWidth
		c.HandleResize(ctx)
	}
}

// layout applies content bounds to the active view and collapses the rest.
func (c *TabCoordinator) layout() entity.Rect {
	bounds := c.contentBounds()
	for _, tab := range c.tabs.Tabs() {
		view, ok := c.views[tab.ID]
		if !ok {
			continue
		}
		if c.tabs.IsActive(tab.ID) {
			view.SetBounds(bounds)
		} else {
			view.SetBounds(bounds.Collapsed())
		}
	}
	return bounds
}

func (c *TabCoordinator) contentBounds() entity.Rect {
	return entity.ContentBounds(c.host.ContentSize(), c.bezel)
}

func (c *TabCoordinator) currentURL(id entity.TabID) string {
	if view, ok := c.views[id]; ok {
		if current := view.URL(); current != "" {
			return current
		}
	}
	if tab := c.tabs.Find(id); tab != nil {
		return tab.URL
	}
	return ""
}

func (c *TabCoordinator) raiseOverlay(ctx context.Context) {
	if c.overlay != nil {
		c.overlay.RaiseIfShown(ctx)
	}
}

func (c *TabCoordinator) notify(ctx context.Context, channel port.Channel, args ...any) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(ctx, port.NewNotification(channel, args...))
}
