package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bezel/internal/infrastructure/config"
)

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfig renders the effective configuration grouped by section.
func (r *ConfigRenderer) RenderConfig(path string, cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path)))

	sections := []struct {
		name string
		rows [][2]string
	}{
		{"window", [][2]string{
			{"width", fmt.Sprint(cfg.Window.Width)},
			{"height", fmt.Sprint(cfg.Window.Height)},
			{"bezel_width", fmt.Sprint(cfg.Window.BezelWidth)},
		}},
		{"tabs", [][2]string{
			{"default_url", cfg.Tabs.DefaultURL},
			{"title_max_length", fmt.Sprint(cfg.Tabs.TitleMaxLength)},
		}},
		{"sidebar", [][2]string{
			{"width", fmt.Sprint(cfg.Sidebar.Width)},
			{"animation_duration_ms", fmt.Sprint(cfg.Sidebar.AnimationDurationMs)},
		}},
		{"logging", [][2]string{
			{"level", cfg.Logging.Level},
			{"format", cfg.Logging.Format},
		}},
	}

	for _, section := range sections {
		sb.WriteString("\n  " + r.theme.Subtitle.Render("["+section.name+"]") + "\n")
		for _, row := range section.rows {
			sb.WriteString(fmt.Sprintf("    %s %s = %s\n",
				iconStyle.Render(IconCursor),
				r.theme.Highlight.Render(row[0]),
				r.theme.Normal.Render(row[1]),
			))
		}
	}
	return sb.String()
}

// RenderPath renders the config file path alone, for scripting.
func (*ConfigRenderer) RenderPath(path string) string {
	return path
}

// RenderSchemaWritten renders the location of a written schema file.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Schema written to %s\n", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderWorking renders an in-progress line with the given spinner frame.
func (*ConfigRenderer) RenderWorking(spinner, what string) string {
	return fmt.Sprintf("\n  %s %s...\n", spinner, what)
}

// RenderResetSuccess renders the message shown after the config was reset.
func (r *ConfigRenderer) RenderResetSuccess(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"\n  %s Restored defaults in %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderCanceled renders the message shown when the user backed out.
func (r *ConfigRenderer) RenderCanceled() string {
	return fmt.Sprintf("\n  %s\n", r.theme.Subtle.Render("Nothing changed."))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s Config error: %v\n", iconStyle.Render(IconX), err)
}
