// Package cmd provides Cobra CLI commands for bezel.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bezel/internal/cli"
	"github.com/bnema/bezel/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	options   cli.Options

	rootCmd = &cobra.Command{
		Use:   "bezel",
		Short: "A browser shell with nothing in the way",
		Long: `Bezel - a browser shell that gets out of the way.

Pages fill the window inside a thin gradient bezel. Move the pointer onto
the left edge to slide in the sidebar with tabs, the URL bar and window
controls.

Running 'bezel' without a subcommand launches the browser.`,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runBrowse,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(options)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&options.LogFormat, "log-format", "", "log format (console, json)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
