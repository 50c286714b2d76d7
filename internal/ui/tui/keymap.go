package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/pane"
	"github.com/bnema/dockyard/internal/ui/workspace"
)

// Application actions handled by the model itself.
const (
	ActionSaveLayout = "app::SaveLayout"
	ActionQuit       = "app::Quit"
)

type binding struct {
	action string
	index  int
	key    key.Binding
}

// Keymap resolves key presses to action names.
type Keymap struct {
	bindings []binding
}

// KnownActions lists every action a key can be bound to.
func KnownActions() []string {
	out := make([]string, 0, len(workspace.Actions)+len(pane.Actions)+2)
	for _, a := range pane.Actions {
		out = append(out, string(a))
	}
	for _, a := range workspace.Actions {
		out = append(out, string(a))
	}
	return append(out, ActionSaveLayout, ActionQuit)
}

// ResolveAction maps a configured action name onto its canonical spelling.
// Config keys come back lowercased, so the match ignores case.
func ResolveAction(name string) (string, bool) {
	for _, known := range KnownActions() {
		if strings.EqualFold(known, name) {
			return known, true
		}
	}
	return "", false
}

// NewKeymap builds the keymap from the configured bindings. alt+1 through
// alt+9 always activate the matching tab.
func NewKeymap(ctx context.Context, bindings map[string][]string) Keymap {
	log := logging.FromContext(ctx)

	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var km Keymap
	for _, name := range actions {
		keys := bindings[name]
		if len(keys) == 0 {
			continue
		}
		action, ok := ResolveAction(name)
		if !ok {
			log.Warn().Str("action", name).Msg("ignoring binding for unknown action")
			continue
		}
		km.bindings = append(km.bindings, binding{
			action: action,
			key:    key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], action)),
		})
	}

	for i := 1; i <= 9; i++ {
		keys := fmt.Sprintf("alt+%d", i)
		km.bindings = append(km.bindings, binding{
			action: string(pane.ActionActivateItem),
			index:  i - 1,
			key:    key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, fmt.Sprintf("tab %d", i))),
		})
	}
	return km
}

// Lookup returns the action bound to msg and the item index it carries.
func (k Keymap) Lookup(msg tea.KeyMsg) (action string, index int, ok bool) {
	for _, b := range k.bindings {
		if key.Matches(msg, b.key) {
			return b.action, b.index, true
		}
	}
	return "", 0, false
}

// Keys returns the keys bound to action.
func (k Keymap) Keys(action string) []string {
	var out []string
	for _, b := range k.bindings {
		if b.action == action {
			out = append(out, b.key.Keys()...)
		}
	}
	return out
}

// panelKeys drive the project panel while it holds focus.
type panelKeys struct {
	Up   key.Binding
	Down key.Binding
	Mark key.Binding
	Open key.Binding
}

func defaultPanelKeys() panelKeys {
	return panelKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Mark: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "mark")),
		Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

// scrollKeys move the content of the active item.
type scrollKeys struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

func defaultScrollKeys() scrollKeys {
	return scrollKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}
}
