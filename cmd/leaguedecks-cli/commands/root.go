package commands

import (
	"context"
	"fmt"
	"leaguedecks-backend/internal/app"
	"leaguedecks-backend/internal/components/configutil"
	"leaguedecks-backend/internal/components/telemetry"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "leaguedecks-cli",
	Short: "leaguedecks-cli is an operator CLI for the league deck pipeline.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "Path to the config file.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openApp reads the config and opens the app, the caller must close it.
func openApp(ctx context.Context) (app.App, error) {
	cfg, err := configutil.ReadConfig(configPath, app.DefaultConfig())
	if err != nil {
		return app.App{}, fmt.Errorf("read config: %w", err)
	}
	return app.New(ctx, cfg, telemetry.SlogAPI{})
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	return t
}
