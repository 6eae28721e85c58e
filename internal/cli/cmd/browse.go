package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	urlutil "github.com/bnema/bezel/internal/domain/url"
	"github.com/bnema/bezel/internal/logging"
	"github.com/bnema/bezel/internal/ui"
)

var noWatch bool

var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Launch the graphical browser",
	Long: `Launch the GTK4 browser shell.

If a URL is provided, the first tab opens it. Otherwise it opens the
configured default URL.

Examples:
  bezel browse                  # Open the default URL
  bezel browse example.com      # Open https://example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	for _, c := range []*cobra.Command{rootCmd, browseCmd} {
		c.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the config file when it changes")
	}
}

func runBrowse(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := app.Context()
	initialURL := ""
	if len(args) == 1 {
		initialURL = urlutil.Normalize(args[0])
	}

	logging.FromContext(ctx).Info().
		Str("version", app.BuildInfo.Version).
		Str("initial_url", initialURL).
		Msg("starting bezel")

	code := ui.RunWithArgs(ctx, &ui.Dependencies{
		Ctx:           ctx,
		ConfigManager: app.Manager,
		InitialURL:    initialURL,
		WatchConfig:   !noWatch,
	})
	if code != 0 {
		os.Exit(code)
	}
	return nil
}
