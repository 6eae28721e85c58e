package config

import (
	"time"

	"github.com/bnema/bezel/internal/domain/entity"
)

const (
	defaultWindowWidth  = 1200
	defaultWindowHeight = 800
	defaultBezelWidth   = 8

	defaultTabURL = "https://www.google.com"

	defaultSidebarWidth = 280

	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      defaultWindowWidth,
			Height:     defaultWindowHeight,
			BezelWidth: defaultBezelWidth,
		},
		Tabs: TabsConfig{
			DefaultURL:     defaultTabURL,
			TitleMaxLength: entity.DefaultTitleBudget,
		},
		Sidebar: SidebarConfig{
			Width:               defaultSidebarWidth,
			AnimationDurationMs: int(entity.DefaultSlideDuration / time.Millisecond),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// AnimationDuration returns the sidebar slide duration.
func (s SidebarConfig) AnimationDuration() time.Duration {
	return time.Duration(s.AnimationDurationMs) * time.Millisecond
}
