package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

var (
	layoutsJSON bool
	layoutsYes  bool

	// confirmDelete is swapped in tests.
	confirmDelete = func(theme *styles.Theme, name string) (bool, error) {
		return styles.Confirm(theme, fmt.Sprintf("Delete layout %q?", name))
	}
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Manage saved layouts",
	Long: `List and delete the layouts saved with ctrl+s or on exit.

A layout records the pane tree, the items of every pane and the state of
each dock. Open one with 'dockyard --layout <name>'.`,
}

var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLayoutsList(GetApp(), cmd.OutOrStdout())
	},
}

var layoutsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLayoutsDelete(GetApp(), cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.AddCommand(layoutsListCmd)
	layoutsCmd.AddCommand(layoutsDeleteCmd)
	layoutsListCmd.Flags().BoolVar(&layoutsJSON, "json", false, "output as JSON")
	layoutsDeleteCmd.Flags().BoolVarP(&layoutsYes, "yes", "y", false, "skip confirmation prompt")
}

func runLayoutsList(app *cli.App, w io.Writer) error {
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	layouts, err := app.Layouts.List(app.Ctx())
	if err != nil {
		return err
	}

	if layoutsJSON {
		return outputLayoutsJSON(w, layouts)
	}
	_, err = fmt.Fprintln(w, styles.NewLayoutsCLIRenderer(app.Theme).RenderList(layouts))
	return err
}

type layoutJSON struct {
	Name      string `json:"name"`
	Panes     int    `json:"panes"`
	Items     int    `json:"items"`
	UpdatedAt string `json:"updated_at"`
}

func outputLayoutsJSON(w io.Writer, layouts []entity.LayoutInfo) error {
	out := make([]layoutJSON, 0, len(layouts))
	for _, l := range layouts {
		out = append(out, layoutJSON{
			Name:      l.Name,
			Panes:     l.PaneCount,
			Items:     l.ItemCount,
			UpdatedAt: l.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runLayoutsDelete(app *cli.App, w io.Writer, name string) error {
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewLayoutsCLIRenderer(app.Theme)

	if !layoutsYes {
		ok, err := confirmDelete(app.Theme, name)
		if err != nil {
			return err
		}
		if !ok {
			_, err = fmt.Fprintln(w, renderer.RenderCanceled())
			return err
		}
	}

	if err := app.Layouts.Delete(app.Ctx(), name); err != nil {
		fmt.Fprintln(w, renderer.RenderError(err))
		return err
	}
	_, err := fmt.Fprintln(w, renderer.RenderDeleted(name))
	return err
}
