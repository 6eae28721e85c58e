package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/bezel/internal/logging"
)

// validateConfig checks every section and reports all violations at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateTabs(config)...)
	validationErrors = append(validationErrors, validateSidebar(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width < 200 {
		validationErrors = append(validationErrors, "window.width must be at least 200")
	}
	if config.Window.Height < 150 {
		validationErrors = append(validationErrors, "window.height must be at least 150")
	}
	if config.Window.BezelWidth < 0 || config.Window.BezelWidth > 64 {
		validationErrors = append(validationErrors, "window.bezel_width must be between 0 and 64")
	}
	return validationErrors
}

func validateTabs(config *Config) []string {
	var validationErrors []string
	if config.Tabs.DefaultURL == "" {
		validationErrors = append(validationErrors, "tabs.default_url cannot be empty")
	} else if u, err := url.Parse(config.Tabs.DefaultURL); err != nil || u.Scheme == "" {
		validationErrors = append(validationErrors, "tabs.default_url must be an absolute URL with a scheme")
	}
	if config.Tabs.TitleMaxLength < 4 {
		validationErrors = append(validationErrors, "tabs.title_max_length must be at least 4")
	}
	return validationErrors
}

func validateSidebar(config *Config) []string {
	var validationErrors []string
	if config.Sidebar.Width < 120 {
		validationErrors = append(validationErrors, "sidebar.width must be at least 120")
	}
	if config.Sidebar.AnimationDurationMs < 0 || config.Sidebar.AnimationDurationMs > 2000 {
		validationErrors = append(validationErrors, "sidebar.animation_duration_ms must be between 0 and 2000")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, ok := logging.ParseLevel(config.Logging.Level); !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}
