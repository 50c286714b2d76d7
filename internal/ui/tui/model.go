// Package tui hosts the workspace in a bubbletea program: it turns key and
// mouse input into workspace operations and renders the layout with lipgloss.
package tui

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/content"
	"github.com/bnema/dockyard/internal/ui/mainloop"
	"github.com/bnema/dockyard/internal/ui/theme"
	"github.com/bnema/dockyard/internal/ui/workspace"
)

const logRefreshInterval = 500 * time.Millisecond

// LayoutSaver persists layouts.
type LayoutSaver interface {
	Save(ctx context.Context, host port.LayoutHost, name string) (*entity.LayoutState, error)
}

// Options configures the model.
type Options struct {
	Workspace *workspace.Workspace
	Panels    content.Panels
	Styles    theme.Styles
	Keymap    Keymap
	// Log is tailed by the log panel; writes schedule a redraw.
	Log *logging.LogBuffer
	// Saver backs app::SaveLayout. Nil disables it.
	Saver      LayoutSaver
	LayoutName string
}

type wakeMsg struct{}

type logTickMsg struct{}

type layoutSavedMsg struct {
	name string
	err  error
}

// Model is the bubbletea model of the layout.
type Model struct {
	ctx        context.Context
	ws         *workspace.Workspace
	loop       *mainloop.Loop
	panels     content.Panels
	styles     theme.Styles
	keymap     Keymap
	panelKeys  panelKeys
	scrollKeys scrollKeys
	saver      LayoutSaver
	layoutName string
	log        *logging.LogBuffer
	logDirty   atomic.Bool

	width, height int
	frame         frame
	drag          dragState
	lastClick     click
	now           func() time.Time

	status   string
	quitting bool
}

var _ tea.Model = (*Model)(nil)

// New creates the model. It must only be driven by one tea.Program, whose
// Update goroutine becomes the thread that drains the workspace loop.
func New(ctx context.Context, opts Options) *Model {
	m := &Model{
		ctx:        logging.WithComponent(ctx, "tui"),
		ws:         opts.Workspace,
		loop:       opts.Workspace.Loop(),
		panels:     opts.Panels,
		styles:     opts.Styles,
		keymap:     opts.Keymap,
		panelKeys:  defaultPanelKeys(),
		scrollKeys: defaultScrollKeys(),
		saver:      opts.Saver,
		layoutName: opts.LayoutName,
		log:        opts.Log,
		now:        time.Now,
	}
	if m.log != nil {
		m.log.OnWrite(func() { m.logDirty.Store(true) })
	}
	return m
}

// waitForWake turns loop activity into a message so posted callbacks run
// on the Update goroutine.
func waitForWake(loop *mainloop.Loop) tea.Cmd {
	return func() tea.Msg {
		<-loop.Wake()
		return wakeMsg{}
	}
}

func logTick() tea.Cmd {
	return tea.Tick(logRefreshInterval, func(time.Time) tea.Msg { return logTickMsg{} })
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForWake(m.loop)}
	if m.log != nil {
		cmds = append(cmds, logTick())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		m.ws.Deactivated(m.ctx)
	case wakeMsg:
		cmd = waitForWake(m.loop)
	case logTickMsg:
		cmd = logTick()
		if !m.logDirty.Swap(false) {
			return m, cmd
		}
	case layoutSavedMsg:
		if msg.err != nil {
			logging.FromContext(m.ctx).Error().Err(msg.err).Str("layout", msg.name).Msg("failed to save layout")
			m.status = "save failed: " + msg.err.Error()
		} else {
			m.status = "layout " + msg.name + " saved"
		}
	}

	m.loop.Flush()
	m.relayout()
	return m, cmd
}

// relayout recomputes the geometry used by View and hit testing.
func (m *Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.frame = layoutFrame(m.ws, m.width, m.height)
}

// ApplyConfig pushes a reloaded configuration into the workspace, the
// styles and the keymap. It must run on the loop.
func (m *Model) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.ws.ApplySettings(m.ctx, SettingsFromConfig(cfg))
	m.styles = theme.NewStyles(theme.PaletteFromConfig(&cfg.Theme))
	m.keymap = NewKeymap(m.ctx, cfg.Keybindings)
	m.status = "config reloaded"
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

// saveLayout snapshots on the loop thread and writes from a command.
func (m *Model) saveLayout() tea.Cmd {
	if m.saver == nil {
		m.status = "layouts are not persisted"
		return nil
	}
	state := m.ws.Snapshot(m.layoutName)
	ctx, saver, name := m.ctx, m.saver, m.layoutName
	m.status = "saving layout"
	return func() tea.Msg {
		saved, err := saver.Save(ctx, frozenLayout{state: state}, name)
		if err != nil {
			return layoutSavedMsg{name: name, err: err}
		}
		return layoutSavedMsg{name: saved.Name}
	}
}

// frozenLayout serves a snapshot taken earlier, so it can be stored off the
// loop thread.
type frozenLayout struct {
	state *entity.LayoutState
}

func (f frozenLayout) Snapshot(name string) *entity.LayoutState {
	if f.state == nil {
		return nil
	}
	f.state.Name = name
	return f.state
}

func (f frozenLayout) Restore(context.Context, *entity.LayoutState) error {
	return errFrozenLayout
}
