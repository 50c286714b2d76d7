package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where dockyard keeps its files and print the effective configuration.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config, database and log locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigStatus(GetApp(), cmd.OutOrStdout())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, the config file and DOCKYARD_* environment variables are merged.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigShow(GetApp(), cmd.OutOrStdout())
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Rewrite the JSON schema next to the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigSchema(GetApp(), cmd.OutOrStdout())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigPath(GetApp(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigStatus(app *cli.App, w io.Writer) error {
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile := app.Manager.GetConfigFile()
	if configFile == "" {
		path, err := config.GetConfigFile()
		if err != nil {
			fmt.Fprintln(w, renderer.RenderError(err))
			return nil
		}
		fmt.Fprintln(w, renderer.RenderNoConfigFile(path))
		return nil
	}

	logDir := filepath.Dir(app.Config.Logging.File)
	if app.Config.Logging.File == "" {
		dir, err := config.GetLogDir()
		if err != nil {
			fmt.Fprintln(w, renderer.RenderError(err))
			return nil
		}
		logDir = dir
	}

	status := styles.ConfigStatus{
		ConfigFile:   configFile,
		DatabaseFile: app.Config.Database.Path,
		LogDir:       logDir,
	}
	if _, err := os.Stat(status.DatabaseFile); errors.Is(err, os.ErrNotExist) {
		status.DatabaseMissing = true
	} else {
		db, err := app.DB.DB(app.Ctx())
		if err != nil {
			fmt.Fprintln(w, renderer.RenderError(err))
			return nil
		}
		if status.SchemaVersion, err = sqlite.GetMigrationStatus(app.Ctx(), db); err != nil {
			fmt.Fprintln(w, renderer.RenderError(err))
			return nil
		}
		layouts, err := app.Layouts.List(app.Ctx())
		if err != nil {
			fmt.Fprintln(w, renderer.RenderError(err))
			return nil
		}
		status.SavedLayouts = len(layouts)
	}

	fmt.Fprintln(w, renderer.RenderStatus(status))
	return nil
}

func runConfigPath(app *cli.App, w io.Writer) error {
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	path := ""
	if app.Manager != nil {
		path = app.Manager.GetConfigFile()
	}
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, path)
	return err
}

func runConfigShow(app *cli.App, w io.Writer) error {
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func runConfigSchema(app *cli.App, w io.Writer) error {
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "config.schema.json")
	if err := config.WriteSchemaFile(path); err != nil {
		fmt.Fprintln(w, styles.NewConfigRenderer(app.Theme).RenderError(err))
		return err
	}
	fmt.Fprintln(w, styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
	return nil
}
