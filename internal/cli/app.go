// Package cli holds what the bezel commands share: configuration, the
// logger and the terminal theme.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/bezel/internal/cli/styles"
	"github.com/bnema/bezel/internal/domain/build"
	"github.com/bnema/bezel/internal/infrastructure/config"
	"github.com/bnema/bezel/internal/logging"
)

// Options are the persistent command line flags.
type Options struct {
	LogLevel  string
	LogFormat string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	ctx context.Context
}

// NewApp loads the configuration and builds the logger. Flags win over
// the environment, which wins over the config file.
func NewApp(opts Options) (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Get()

	logCfg, err := resolveLogging(cfg.Logging, opts)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logCfg)
	manager.SetLogger(logger)
	ctx := logging.WithContext(context.Background(), logger)

	return &App{
		Config:  cfg,
		Manager: manager,
		Theme:   styles.NewTheme(),
		ctx:     ctx,
	}, nil
}

func resolveLogging(file config.LoggingConfig, opts Options) (logging.Config, error) {
	logCfg := logging.ResolveConfig(file.Level, file.Format)

	if opts.LogLevel != "" {
		level, ok := logging.ParseLevel(opts.LogLevel)
		if !ok {
			return logCfg, fmt.Errorf("invalid --log-level %q", opts.LogLevel)
		}
		logCfg.Level = level
	}

	switch format := strings.ToLower(opts.LogFormat); format {
	case "":
	case logging.FormatConsole, logging.FormatJSON:
		logCfg.Format = format
	default:
		return logCfg, fmt.Errorf("invalid --log-format %q", opts.LogFormat)
	}

	return logCfg, nil
}

// Context returns a context carrying the configured logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Close releases resources held by the app.
func (*App) Close() error {
	return nil
}
