package ui

import (
	"context"
	"errors"
	"os"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/bezel/assets"
	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/domain/entity"
	"github.com/bnema/bezel/internal/infrastructure/config"
	"github.com/bnema/bezel/internal/infrastructure/gtkhost"
	"github.com/bnema/bezel/internal/logging"
	"github.com/bnema/bezel/internal/ui/shell"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.github.bnema.bezel"
)

// App wraps the GTK Application and manages the shell lifecycle.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application
	window *gtkhost.Window
	shell  *shell.Shell

	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &App{deps: deps}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	ctx, a.cancel = context.WithCancelCause(ctx)
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationFlagsNone)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}

	a.gtkApp.ConnectActivate(func() {
		a.onActivate(ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		a.onShutdown(ctx)
	})

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if a.window != nil {
		a.window.Present()
		return
	}

	cfg := a.deps.ConfigManager.Get()

	window, err := gtkhost.NewWindow(ctx, a.gtkApp, gtkhost.WindowConfig{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		ContentCSS: assets.CornerMaskCSS(cfg.Window.BezelWidth),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create main window")
		return
	}
	a.window = window

	if err := a.initShell(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("failed to initialize shell")
		a.Quit()
		return
	}

	a.initConfigWatcher(ctx)
	a.window.Present()
	// Opens the first tab once both chrome pages have loaded.
	a.shell.Start()
}

func (a *App) initShell(ctx context.Context, cfg *config.Config) error {
	page := assets.ChromePage(cfg.Window.BezelWidth)

	newSurface := func(role port.SurfaceRole) (*gtkhost.Surface, error) {
		return a.window.NewSurface(ctx, gtkhost.SurfaceConfig{
			Role:    role,
			HTML:    page,
			BaseURI: assets.ChromeBaseURI,
			OnMessage: func(s *gtkhost.Surface, payload []byte) {
				if a.shell != nil {
					a.shell.Dispatch(s, payload)
				}
			},
			OnReady: func(s *gtkhost.Surface) {
				if a.shell != nil {
					a.shell.SurfaceReady(s)
				}
			},
		})
	}

	// The main surface goes first so content views and the sidebar stack above it.
	mainSurface, err := newSurface(port.SurfaceMain)
	if err != nil {
		return err
	}
	sidebar, err := newSurface(port.SurfaceSidebar)
	if err != nil {
		return err
	}

	s, err := shell.New(ctx, shell.Dependencies{
		Config:     cfg,
		Host:       a.window,
		Controls:   a.window,
		Scheduler:  gtkhost.IdleScheduler{},
		Main:       mainSurface,
		Sidebar:    sidebar,
		InitialURL: a.deps.InitialURL,
	})
	if err != nil {
		return err
	}
	a.shell = s

	a.window.OnResize(func(size entity.Size) {
		a.shell.HandleResize(size)
	})
	return nil
}

func (a *App) initConfigWatcher(ctx context.Context) {
	if !a.deps.WatchConfig {
		return
	}
	log := logging.FromContext(ctx)

	a.deps.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		a.shell.Reload(cfg)
	})
	if err := a.deps.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
		return
	}
	log.Debug().Str("file", a.deps.ConfigManager.ConfigFile()).Msg("watching config file")
}

// onShutdown is called when the GTK application is shutting down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	if a.shell != nil {
		a.shell.Close()
	}
	a.cancel(errors.New("application shutdown"))

	log.Info().Msg("application shutdown complete")
}

// Quit requests the application to quit. It is a no-op before Run.
func (a *App) Quit() {
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}

// RunWithArgs is a convenience function that creates and runs an App.
func RunWithArgs(ctx context.Context, deps *Dependencies) int {
	app, err := New(deps)
	if err != nil {
		log := logging.FromContext(ctx)
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	return app.Run(ctx, os.Args[:1])
}
