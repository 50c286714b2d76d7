package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutsCLIRenderer renders non-interactive output of the layouts
// subcommands.
type LayoutsCLIRenderer struct {
	theme *Theme
	now   func() time.Time
}

func NewLayoutsCLIRenderer(theme *Theme) *LayoutsCLIRenderer {
	return &LayoutsCLIRenderer{theme: theme, now: time.Now}
}

func (r *LayoutsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

func (r *LayoutsCLIRenderer) RenderList(items []entity.LayoutInfo) string {
	if len(items) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconLayout), r.theme.Title.Render("Layouts")))
	for _, info := range items {
		b.WriteString(r.renderOne(info))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: use `dockyard --layout <name>` to open one."))
	return b.String()
}

func (r *LayoutsCLIRenderer) renderOne(info entity.LayoutInfo) string {
	return fmt.Sprintf("  %s  %s %s  %s",
		r.theme.Highlight.Render(info.Name),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d panes", info.PaneCount)),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d items", info.ItemCount)),
		r.theme.Subtle.Render(RelativeTime(info.UpdatedAt, r.now())),
	)
}

func (r *LayoutsCLIRenderer) RenderDeleted(name string) string {
	return fmt.Sprintf("%s Layout %s deleted.",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Highlight.Render(name),
	)
}

func (r *LayoutsCLIRenderer) RenderCanceled() string {
	return r.theme.Subtle.Render("Canceled.")
}

func (r *LayoutsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

// RelativeTime formats t relative to now ("just now", "5m ago", "3d ago").
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format("2006-01-02")
	}
}
