package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/bezel/internal/cli/styles"
	"github.com/bnema/bezel/internal/infrastructure/config"
)

var (
	configYes         bool
	configSchemaWrite bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Show the configuration after defaults, the config file and BEZEL_* environment overrides are merged.`,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema describing config.toml. With --write the schema is
stored next to the config file, where editors with TOML schema support pick it up.`,
	RunE: runConfigSchema,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the config file with defaults",
	RunE:  runConfigReset,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd, configResetCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json next to the config file")
	configResetCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderPath(app.Manager.ConfigFile()))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfig(app.Manager.ConfigFile(), app.Manager.Get()))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if !configSchemaWrite {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path, err := config.WriteSchemaFile(filepath.Dir(app.Manager.ConfigFile()))
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSchemaWritten(path))
	return nil
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	if configYes {
		return executeReset(cmd.OutOrStdout(), app.Manager, renderer)
	}

	m := newResetModel(renderer, app.Theme, app.Manager)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	return nil
}

func executeReset(out io.Writer, manager configResetter, renderer *styles.ConfigRenderer) error {
	path, err := manager.Reset()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	fmt.Fprintln(out, renderer.RenderResetSuccess(path))
	return nil
}

type configResetter interface {
	Reset() (string, error)
}

type resetState int

const (
	resetStateConfirm resetState = iota
	resetStateRunning
	resetStateDone
)

// resetModel asks for confirmation, then resets the config file while a
// spinner runs.
type resetModel struct {
	spinner  spinner.Model
	renderer *styles.ConfigRenderer
	confirm  styles.ConfirmModel
	state    resetState
	manager  configResetter

	result   string
	quitting bool
}

type resetResultMsg struct {
	path string
	err  error
}

func newResetModel(renderer *styles.ConfigRenderer, theme *styles.Theme, manager configResetter) resetModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return resetModel{
		spinner:  s,
		renderer: renderer,
		confirm:  styles.NewConfirm(theme, "Overwrite config.toml with defaults?"),
		state:    resetStateConfirm,
		manager:  manager,
	}
}

func (m resetModel) Init() tea.Cmd {
	return nil
}

func (m resetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.state != resetStateRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resetResultMsg:
		m.state = resetStateDone
		if msg.err != nil {
			m.result = m.renderer.RenderError(msg.err)
		} else {
			m.result = m.renderer.RenderResetSuccess(msg.path)
		}
		return m, tea.Quit
	}

	if m.state != resetStateConfirm {
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if !m.confirm.Result() {
		m.state = resetStateDone
		m.result = m.renderer.RenderCanceled()
		return m, tea.Quit
	}

	m.state = resetStateRunning
	return m, tea.Batch(m.spinner.Tick, m.runReset())
}

func (m resetModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.state == resetStateDone:
		return m.result
	case m.state == resetStateRunning:
		return m.renderer.RenderWorking(m.spinner.View(), "Restoring defaults")
	}
	return m.confirm.View()
}

func (m resetModel) runReset() tea.Cmd {
	return func() tea.Msg {
		path, err := m.manager.Reset()
		return resetResultMsg{path: path, err: err}
	}
}
