// Package cmd provides Cobra CLI commands for dockyard.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/bootstrap"
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	app       *cli.App
	buildInfo build.Info

	layoutName string
	projectDir string

	rootCmd = &cobra.Command{
		Use:   "dockyard [paths...]",
		Short: "A terminal workspace of split panes and docked panels",
		Long: `Dockyard - tabs, split panes and docks in your terminal.

The center is a tree of split panes, each holding a strip of tabs. Docks on
the left, right and bottom edges hold panels: the project tree, the outline
of the active file and the session log.

Features:
  - Drag tabs between panes, or onto a pane edge to split it
  - Drag files from the project panel into any pane
  - Resizable docks, double-click a dock edge to reset its size
  - Named layouts saved to SQLite and restored on startup
  - Keybindings and theme in a hot-reloaded TOML config

Paths given as arguments open in the active pane.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(cmd.Context())
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
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&layoutName, "layout", "l", "", "restore the named layout and save to it")
	rootCmd.Flags().StringVarP(&projectDir, "root", "r", ".", "directory listed by the project panel")
}

// Execute runs the root command.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
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

func runRoot(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	trace := logging.NewStartupTrace(app.Config.Logging.Level)

	session, ctx, err := bootstrap.StartSession(cmd.Context(), app.Config)
	if err != nil {
		return err
	}
	defer session.Close()
	trace.Mark("session_started")

	return bootstrap.RunTUI(ctx, bootstrap.RunOptions{
		Config:     app.Manager,
		Layouts:    app.Layouts,
		LayoutName: layoutName,
		Root:       projectDir,
		Paths:      args,
		Session:    session,
		Trace:      trace,
	})
}
