package content

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/bnema/dockyard/internal/ui/pane"
	"github.com/charmbracelet/x/ansi"
)

// PanelProject is the persistent name of the project panel.
const PanelProject = "project"

const maxProjectEntries = 2000

// ProjectPanel lists the files under a root directory. Entries can be
// marked, opened, or dragged onto panes.
type ProjectPanel struct {
	dock.PanelBase

	root    string
	entries []string
	cursor  int
	offset  int
	marked  map[string]bool
}

var _ dock.Panel = (*ProjectPanel)(nil)

// NewProjectPanel scans root. Hidden directories are skipped.
func NewProjectPanel(ctx context.Context, fm *focus.Manager, cfg dock.PanelConfig, root string) *ProjectPanel {
	cfg.Name = PanelProject
	if cfg.Icon == "" {
		cfg.Icon = "files"
	}
	p := &ProjectPanel{
		PanelBase: dock.NewPanelBase(cfg, fm.NewHandle(nil)),
		root:      root,
		marked:    make(map[string]bool),
	}
	p.Rescan(ctx)
	return p
}

// Rescan rebuilds the entry list.
func (p *ProjectPanel) Rescan(ctx context.Context) {
	var entries []string
	err := filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != p.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if len(entries) >= maxProjectEntries {
			return filepath.SkipAll
		}
		entries = append(entries, path)
		return nil
	})
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("root", p.root).Msg("project scan failed")
	}
	sort.Strings(entries)

	p.entries = entries
	p.cursor = max(min(p.cursor, len(entries)-1), 0)
	p.Changes().Notify()
}

func (p *ProjectPanel) Root() string {
	return p.root
}

func (p *ProjectPanel) Entries() []string {
	return p.entries
}

func (p *ProjectPanel) Cursor() int {
	return p.cursor
}

// MoveCursor moves the cursor by delta, clamped to the entries.
func (p *ProjectPanel) MoveCursor(delta int) {
	if len(p.entries) == 0 {
		return
	}
	p.cursor = max(min(p.cursor+delta, len(p.entries)-1), 0)
	p.Changes().Notify()
}

// SetCursor moves the cursor to index when it is valid.
func (p *ProjectPanel) SetCursor(index int) {
	if index < 0 || index >= len(p.entries) {
		return
	}
	p.cursor = index
	p.Changes().Notify()
}

// ToggleMark marks or unmarks the entry under the cursor.
func (p *ProjectPanel) ToggleMark() {
	if len(p.entries) == 0 {
		return
	}
	path := p.entries[p.cursor]
	if p.marked[path] {
		delete(p.marked, path)
	} else {
		p.marked[path] = true
	}
	p.Changes().Notify()
}

func (p *ProjectPanel) IsMarked(path string) bool {
	return p.marked[path]
}

// ClearMarks unmarks everything.
func (p *ProjectPanel) ClearMarks() {
	clear(p.marked)
	p.Changes().Notify()
}

// Selection is the drag payload for the entry under the cursor.
func (p *ProjectPanel) Selection() (pane.DraggedSelection, bool) {
	if len(p.entries) == 0 {
		return pane.DraggedSelection{}, false
	}
	sel := pane.DraggedSelection{Active: p.entries[p.cursor]}
	for _, path := range p.entries {
		if p.marked[path] {
			sel.Marked = append(sel.Marked, path)
		}
	}
	return sel, true
}

// EntryAtRow maps a rendered row to an entry index.
func (p *ProjectPanel) EntryAtRow(row int) (int, bool) {
	ix := p.offset + row
	if row < 0 || ix >= len(p.entries) {
		return 0, false
	}
	return ix, true
}

func (p *ProjectPanel) label(path string) string {
	rel, err := filepath.Rel(p.root, path)
	if err != nil {
		return path
	}
	return rel
}

// Render lists the entries around the cursor. The cursor row starts with
// ">", marked rows with "*".
func (p *ProjectPanel) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(p.entries) == 0 {
		return ansi.Truncate("no files in "+p.root, width, "…")
	}

	switch {
	case p.cursor < p.offset:
		p.offset = p.cursor
	case p.cursor >= p.offset+height:
		p.offset = p.cursor - height + 1
	}

	var b strings.Builder
	for row := 0; row < height && p.offset+row < len(p.entries); row++ {
		ix := p.offset + row
		path := p.entries[ix]
		prefix := "  "
		switch {
		case ix == p.cursor && p.marked[path]:
			prefix = ">*"
		case ix == p.cursor:
			prefix = "> "
		case p.marked[path]:
			prefix = " *"
		}
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(ansi.Truncate(prefix+p.label(path), width, "…"))
	}
	return b.String()
}
