// Package shell assembles the browser chrome: tab and sidebar coordinators,
// window controls and the message relay between them and the presentation
// surfaces. It is host agnostic; the GTK wiring lives in package ui.
package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/bezel/internal/app/messaging"
	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/application/usecase"
	"github.com/bnema/bezel/internal/domain/entity"
	"github.com/bnema/bezel/internal/infrastructure/config"
	"github.com/bnema/bezel/internal/logging"
	"github.com/bnema/bezel/internal/ui/coordinator"
	"github.com/bnema/bezel/internal/ui/mainloop"
)

// Surface is a presentation surface that is also placed in the window.
type Surface interface {
	port.Surface
	port.View
}

// Dependencies holds everything the shell needs from the host.
type Dependencies struct {
	Config    *config.Config
	Host      port.ViewHost
	Controls  port.WindowControls
	Scheduler port.Scheduler
	Clock     port.Clock // optional
	Main      Surface
	Sidebar   Surface
	// InitialURL replaces the default URL of the first tab. Optional.
	InitialURL string
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	var missing []string
	if d.Config == nil {
		missing = append(missing, "Config")
	}
	if d.Host == nil {
		missing = append(missing, "Host")
	}
	if d.Controls == nil {
		missing = append(missing, "Controls")
	}
	if d.Scheduler == nil {
		missing = append(missing, "Scheduler")
	}
	if d.Main == nil {
		missing = append(missing, "Main")
	}
	if d.Sidebar == nil {
		missing = append(missing, "Sidebar")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingDependency, missing)
	}
	return nil
}

// ErrMissingDependency is returned by New when a required dependency is nil.
var ErrMissingDependency = errors.New("missing dependency")

// Shell owns the controller state. Apart from Reload, every method must be
// called on the host main loop.
type Shell struct {
	ctx context.Context

	tabs    *coordinator.TabCoordinator
	sidebar *coordinator.SidebarCoordinator
	window  *coordinator.WindowCoordinator

	host        port.ViewHost
	main        Surface
	router      *messaging.MessageRouter
	broadcaster *messaging.Broadcaster
	coalescer   *mainloop.Coalescer
	unbind      func()

	surfaces   []Surface
	initialURL string
	announced  map[port.SurfaceRole]bool
	// startPending is set by Start until every surface has been announced.
	startPending bool
	started      bool
}

// New wires the coordinators and binds every channel to them.
func New(ctx context.Context, deps Dependencies) (*Shell, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	ctx = logging.WithComponent(ctx, "shell")
	log := logging.FromContext(ctx)
	cfg := deps.Config

	broadcaster := messaging.NewBroadcaster(deps.Main, deps.Sidebar)
	size := deps.Host.ContentSize()

	sidebar := coordinator.NewSidebarCoordinator(ctx, coordinator.SidebarCoordinatorConfig{
		View:      deps.Sidebar,
		Scheduler: deps.Scheduler,
		Clock:     deps.Clock,
		Notifier:  broadcaster,
		Width:     cfg.Sidebar.Width,
		Height:    size.Height,
		Duration:  cfg.Sidebar.AnimationDuration(),
	})

	tabs := coordinator.NewTabCoordinator(ctx, coordinator.TabCoordinatorConfig{
		TabsUC:      usecase.NewManageTabsUseCase(cfg.Tabs.DefaultURL),
		Host:        deps.Host,
		Notifier:    broadcaster,
		Overlay:     sidebar,
		BezelWidth:  cfg.Window.BezelWidth,
		TitleBudget: cfg.Tabs.TitleMaxLength,
	})

	s := &Shell{
		ctx:         ctx,
		tabs:        tabs,
		sidebar:     sidebar,
		window:      coordinator.NewWindowCoordinator(deps.Controls),
		host:        deps.Host,
		main:        deps.Main,
		router:      messaging.NewMessageRouter(ctx),
		broadcaster: broadcaster,
		coalescer:   mainloop.NewCoalescer(deps.Scheduler),
		surfaces:    []Surface{deps.Main, deps.Sidebar},
		initialURL:  deps.InitialURL,
		announced:   make(map[port.SurfaceRole]bool),
	}

	unbind, err := messaging.Bind(s.router, s)
	if err != nil {
		return nil, fmt.Errorf("bind channels: %w", err)
	}
	s.unbind = unbind

	s.layoutMain(size)

	log.Info().
		Int("width", size.Width).
		Int("height", size.Height).
		Msg("shell ready")

	return s, nil
}

// Start opens the first tab once every surface is ready to receive
// notifications. Calls after the first are ignored.
func (s *Shell) Start() {
	if s.started {
		return
	}
	s.startPending = true
	s.startIfReady()
}

func (s *Shell) startIfReady() {
	if !s.startPending {
		return
	}
	for _, surface := range s.surfaces {
		if !s.announced[surface.Role()] {
			return
		}
	}
	s.startPending = false
	s.started = true
	s.tabs.CreateTab(s.ctx, s.initialURL)
}

// Dispatch routes a raw command envelope posted by source.
func (s *Shell) Dispatch(source port.Surface, raw []byte) {
	if err := s.router.Dispatch(source, raw); err != nil {
		logging.FromContext(s.ctx).Debug().Err(err).Msg("message dropped")
	}
}

// SurfaceReady announces the surface's role the first time its document
// finished loading. A pending Start runs once the last surface is ready.
func (s *Shell) SurfaceReady(surface port.Surface) {
	if surface == nil || s.announced[surface.Role()] {
		return
	}
	s.announced[surface.Role()] = true
	s.broadcaster.AnnounceIdentity(s.ctx, surface)
	s.startIfReady()
}

// HandleResize re-lays out the window on the next tick. Bursts of resize
// events collapse into a single layout pass.
func (s *Shell) HandleResize(size entity.Size) {
	s.coalescer.Post(mainloop.KeyResize, func() {
		s.layoutMain(size)
		s.tabs.HandleResize(s.ctx)
		s.sidebar.HandleResize(s.ctx, size.Height)
	})
}

// Reload applies a reloaded configuration on the main loop. It is safe to
// call from any goroutine.
func (s *Shell) Reload(cfg *config.Config) {
	if cfg == nil {
		return
	}
	s.coalescer.Post(mainloop.KeyConfigReload, func() {
		logging.FromContext(s.ctx).Info().Msg("applying reloaded configuration")
		s.tabs.ApplyConfig(s.ctx, cfg)
		s.sidebar.ApplyConfig(s.ctx, cfg)
	})
}

// Close unbinds the channels and drops pending main loop work.
func (s *Shell) Close() {
	if s.unbind != nil {
		s.unbind()
		s.unbind = nil
	}
	s.coalescer.Destroy()
}

func (s *Shell) layoutMain(size entity.Size) {
	s.main.SetBounds(entity.Rect{Width: size.Width, Height: size.Height})
}

// Tabs returns the open tabs in creation order.
func (s *Shell) Tabs() []*entity.Tab {
	return s.tabs.Tabs()
}

// SidebarVisible reports the last requested sidebar state.
func (s *Shell) SidebarVisible() bool {
	return s.sidebar.Visible()
}
