package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/content"
	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/bnema/dockyard/internal/ui/mainloop"
	"github.com/bnema/dockyard/internal/ui/theme"
	"github.com/bnema/dockyard/internal/ui/tui"
	"github.com/bnema/dockyard/internal/ui/workspace"
)

const configReloadKey = "config"

// RunOptions configures RunTUI.
type RunOptions struct {
	Config *config.Manager
	// Layouts persists layouts. Nil disables restore and save.
	Layouts *usecase.ManageLayoutsUseCase
	// LayoutName is restored on startup. Empty falls back to the default
	// layout when restore_on_startup is set.
	LayoutName string
	// Root is the directory listed by the project panel.
	Root string
	// Paths are opened in the active pane once the layout is ready.
	Paths   []string
	Session *Session
	Trace   *logging.StartupTrace
	// ProgramOptions are appended to the defaults, tests pass input and
	// output here.
	ProgramOptions []tea.ProgramOption
}

func newID() string {
	return uuid.NewString()
}

// BuildWorkspace creates the workspace with its item kinds and panels.
func BuildWorkspace(ctx context.Context, cfg *config.Config, root string, buffer *logging.LogBuffer) (*workspace.Workspace, content.Panels) {
	ws := workspace.New(ctx, workspace.Options{
		ID:           entity.WorkspaceID(newID()),
		Loop:         mainloop.New(),
		Focus:        focus.NewManager(),
		IDGenerator:  newID,
		Settings:     tui.SettingsFromConfig(cfg),
		PathItemKind: content.KindFile,
	})
	content.RegisterItemKinds(ctx, ws, newID)
	panels := content.AddPanels(ctx, ws, newID, tui.PanelOptionsFromConfig(cfg, root, buffer))
	return ws, panels
}

// RunTUI runs the terminal host until the user quits or ctx is cancelled.
func RunTUI(ctx context.Context, opts RunOptions) (err error) {
	if opts.Config == nil {
		return errors.New("config manager is nil")
	}
	ctx = logging.WithComponent(ctx, "bootstrap")
	log := logging.FromContext(ctx)
	defer logging.LogPanic(ctx)

	cfg := opts.Config.Get()
	var buffer *logging.LogBuffer
	if opts.Session != nil {
		buffer = opts.Session.Buffer
	}
	opts.Trace.SetLogger(log)

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	ws, panels := BuildWorkspace(ctx, cfg, root, buffer)
	opts.Trace.Mark("workspace_built")

	restoreLayout(ctx, opts, cfg, ws)
	ws.Loop().Flush()
	opts.Trace.Mark("layout_restored")

	if len(opts.Paths) > 0 {
		target := ws.ActivePane()
		ws.OpenPaths(ctx, target, absPaths(opts.Paths), target.Len())
		ws.Loop().Flush()
	}

	modelOpts := tui.Options{
		Workspace:  ws,
		Panels:     panels,
		Styles:     theme.NewStyles(theme.PaletteFromConfig(&cfg.Theme)),
		Keymap:     tui.NewKeymap(ctx, cfg.Keybindings),
		Log:        buffer,
		LayoutName: opts.LayoutName,
	}
	if opts.Layouts != nil {
		modelOpts.Saver = opts.Layouts
	}
	model := tui.New(ctx, modelOpts)

	reloads := mainloop.NewCoalescer(ws.Loop().Post)
	defer reloads.Destroy()
	opts.Config.OnConfigChange(func(next *config.Config) {
		reloads.Post(configReloadKey, func() { model.ApplyConfig(next) })
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(gctx),
	}, opts.ProgramOptions...)
	program := tea.NewProgram(model, programOpts...)

	g.Go(func() error {
		defer cancel()
		defer logging.LogPanic(ctx)
		opts.Trace.Finish()
		_, runErr := program.Run()
		if errors.Is(runErr, tea.ErrProgramKilled) && gctx.Err() != nil {
			return nil
		}
		return runErr
	})
	g.Go(func() error {
		return opts.Config.Run(gctx)
	})

	err = g.Wait()
	saveOnExit(ctx, opts, opts.Config.Get(), ws)
	ws.Release(ctx)
	ws.Loop().Flush()
	if err != nil {
		log.Error().Err(err).Msg("terminal host stopped")
		return err
	}
	log.Info().Msg("terminal host stopped")
	return nil
}

func restoreLayout(ctx context.Context, opts RunOptions, cfg *config.Config, ws *workspace.Workspace) {
	if opts.Layouts == nil {
		return
	}
	name := opts.LayoutName
	if name == "" {
		if !cfg.Layout.RestoreOnStartup {
			return
		}
		name = usecase.DefaultLayoutName
	}
	found, err := opts.Layouts.Restore(ctx, ws, name)
	log := logging.FromContext(ctx)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("layout", name).Msg("failed to restore layout, starting empty")
	case !found:
		log.Debug().Str("layout", name).Msg("no saved layout")
	}
}

// saveOnExit runs after the program stopped, so it may touch the
// workspace from this goroutine.
func saveOnExit(ctx context.Context, opts RunOptions, cfg *config.Config, ws *workspace.Workspace) {
	if opts.Layouts == nil || !cfg.Layout.SaveOnExit {
		return
	}
	name := opts.LayoutName
	if name == "" {
		name = usecase.DefaultLayoutName
	}
	if _, err := opts.Layouts.Save(context.WithoutCancel(ctx), ws, name); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("layout", name).Msg("failed to save layout on exit")
	}
}

func absPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		out = append(out, p)
	}
	return out
}
