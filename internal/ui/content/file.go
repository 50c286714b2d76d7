// Package content holds the concrete items and dock panels shown by the
// terminal host: file tabs, the project tree, the outline and the log.
package content

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/bnema/dockyard/internal/ui/item"
	"github.com/charmbracelet/x/ansi"
)

// KindFile is the persistent kind of file items.
const KindFile = "file"

const (
	maxFileBytes   = 256 << 10
	tabWidth       = 4
	fileCacheLines = 100_000
)

// fileKey changes whenever the file is written, so stale content is never
// served from the cache.
type fileKey struct {
	path    string
	size    int64
	modTime int64
}

// fileCache shares the lines of a file between the items showing it.
type fileCache = port.Cache[fileKey, []string]

// Scrollable is implemented by items whose body can scroll.
type Scrollable interface {
	ScrollBy(lines int)
	ScrollOffset() int
}

// FileItem is a read-only view of a file.
type FileItem struct {
	item.Base

	path   string
	lines  []string
	err    error
	scroll int
	newID  entity.IDGenerator
}

var _ item.Item = (*FileItem)(nil)

// NewFileItem opens path. A file that cannot be read still becomes a tab
// that shows the error.
func NewFileItem(fm *focus.Manager, id entity.ItemID, path string, newID entity.IDGenerator) *FileItem {
	return newFileItem(fm, id, path, newID, nil)
}

func newFileItem(fm *focus.Manager, id entity.ItemID, path string, newID entity.IDGenerator, files fileCache) *FileItem {
	f := &FileItem{
		Base:  item.NewBase(id, KindFile, fm.NewHandle(nil)),
		path:  filepath.Clean(path),
		newID: newID,
	}
	f.lines, f.err = loadLines(f.path, files)
	return f
}

// loadLines reads path through files when it is set. Failed reads are not
// cached.
func loadLines(path string, files fileCache) ([]string, error) {
	if files == nil {
		return readLines(path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	key := fileKey{path: path, size: info.Size(), modTime: info.ModTime().UnixNano()}
	if lines, ok := files.Get(key); ok {
		return lines, nil
	}
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	files.Set(key, lines)
	return lines, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(io.LimitReader(file, maxFileBytes))
	scanner.Buffer(make([]byte, 0, 64<<10), maxFileBytes)
	for scanner.Scan() {
		lines = append(lines, strings.ReplaceAll(scanner.Text(), "\t", strings.Repeat(" ", tabWidth)))
	}
	return lines, scanner.Err()
}

func (f *FileItem) Path() string {
	return f.path
}

// Lines returns the loaded content.
func (f *FileItem) Lines() []string {
	return f.lines
}

func (f *FileItem) Data() string {
	return f.path
}

// TabContent is the file name, followed by as many parent directories as
// the chosen detail level asks for.
func (f *FileItem) TabContent(params item.TabContentParams) string {
	segments := f.segments()
	name := segments[len(segments)-1]
	dirs := min(params.DetailLevel(), len(segments)-1)
	if dirs == 0 {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(segments[len(segments)-1-dirs:len(segments)-1], "/"))
}

func (f *FileItem) TabTooltip() (string, bool) {
	return f.path, true
}

// TabDescription is the file name preceded by detail parent directories.
// Past the root it stops changing, which ends disambiguation.
func (f *FileItem) TabDescription(detail int) (string, bool) {
	segments := f.segments()
	n := min(detail+1, len(segments))
	return strings.Join(segments[len(segments)-n:], "/"), true
}

// segments splits the path into its non-empty components. The last one is
// the file name.
func (f *FileItem) segments() []string {
	parts := strings.Split(filepath.ToSlash(f.path), "/")
	out := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{f.path}
	}
	return out
}

// IsSingleton is true: a pane shows a file at most once, so opening it
// again activates the existing tab.
func (f *FileItem) IsSingleton() bool {
	return true
}

// CloneOnSplit opens the same file in the new pane.
func (f *FileItem) CloneOnSplit(context.Context, entity.WorkspaceID) (item.Item, bool) {
	if f.newID == nil {
		return nil, false
	}
	clone := &FileItem{
		Base:   item.NewBase(entity.ItemID(f.newID()), KindFile, f.FocusHandle().Manager().NewHandle(nil)),
		path:   f.path,
		lines:  f.lines,
		err:    f.err,
		scroll: f.scroll,
		newID:  f.newID,
	}
	return clone, true
}

// ActAsType exposes the Scrollable view.
func (f *FileItem) ActAsType(kind reflect.Type) (any, bool) {
	if kind == reflect.TypeFor[Scrollable]() {
		return Scrollable(f), true
	}
	return nil, false
}

func (f *FileItem) ScrollBy(lines int) {
	f.scroll = max(min(f.scroll+lines, len(f.lines)-1), 0)
}

func (f *FileItem) ScrollOffset() int {
	return f.scroll
}

// PixelPositionOfCursor is the first visible line, in cells from the top
// left of the file.
func (f *FileItem) PixelPositionOfCursor() (entity.Point, bool) {
	if f.err != nil || len(f.lines) == 0 {
		return entity.Point{}, false
	}
	return entity.Point{Y: float64(f.scroll)}, true
}

// Render draws the visible lines with a line number gutter.
func (f *FileItem) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if f.err != nil {
		return ansi.Truncate(fmt.Sprintf("cannot read %s: %v", f.path, f.err), width, "…")
	}

	gutter := len(fmt.Sprint(len(f.lines)))
	var b strings.Builder
	for row := 0; row < height; row++ {
		ix := f.scroll + row
		if ix >= len(f.lines) {
			break
		}
		if row > 0 {
			b.WriteByte('\n')
		}
		line := fmt.Sprintf("%*d %s", gutter, ix+1, f.lines[ix])
		b.WriteString(ansi.Truncate(line, width, "…"))
	}
	return b.String()
}
