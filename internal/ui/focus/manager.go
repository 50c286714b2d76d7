package focus

import (
	"github.com/bnema/dockyard/internal/ui/event"
)

// Transition describes one focus change. Either side may be nil.
type Transition struct {
	Previous *Handle
	Current  *Handle
}

// Manager owns the single focused handle of a window.
type Manager struct {
	nextID  uint64
	focused *Handle

	transitions event.Emitter[Transition]
	dispatching bool
	queued      []*Handle
}

// NewManager creates a manager with nothing focused.
func NewManager() *Manager {
	return &Manager{}
}

// Focused returns the focused handle, or nil.
func (m *Manager) Focused() *Handle {
	return m.focused
}

// Focus moves focus to h. Requests made while listeners run are applied once
// the current transition finished dispatching, in request order.
func (m *Manager) Focus(h *Handle) {
	if h == nil || h.released {
		return
	}
	if m.dispatching {
		m.queued = append(m.queued, h)
		return
	}
	m.apply(h)
}

// Blur clears focus.
func (m *Manager) Blur() {
	if m.dispatching {
		m.queued = append(m.queued, nil)
		return
	}
	m.apply(nil)
}

func (m *Manager) apply(h *Handle) {
	m.dispatching = true
	defer func() { m.dispatching = false }()

	next := h
	for {
		if next == nil || !next.released {
			if next != m.focused {
				prev := m.focused
				m.focused = next
				m.transitions.Emit(Transition{Previous: prev, Current: next})
			}
		}
		if len(m.queued) == 0 {
			return
		}
		next = m.queued[0]
		m.queued = m.queued[1:]
	}
}

// OnTransition observes every focus change.
func (m *Manager) OnTransition(fn func(Transition)) *event.Subscription {
	return m.transitions.Subscribe(fn)
}

// OnFocus calls fn when h itself becomes focused.
func (m *Manager) OnFocus(h *Handle, fn func()) *event.Subscription {
	return m.transitions.Subscribe(func(t Transition) {
		if !h.released && t.Current == h {
			fn()
		}
	})
}

// OnFocusIn calls fn when focus enters h's subtree from outside, or moves
// onto h itself from one of its descendants.
func (m *Manager) OnFocusIn(h *Handle, fn func()) *event.Subscription {
	return m.transitions.Subscribe(func(t Transition) {
		if h.released || !h.Contains(t.Current) {
			return
		}
		if t.Current == h || !h.Contains(t.Previous) {
			fn()
		}
	})
}

// OnFocusOut calls fn when focus leaves h's subtree.
func (m *Manager) OnFocusOut(h *Handle, fn func()) *event.Subscription {
	return m.transitions.Subscribe(func(t Transition) {
		if h.released {
			return
		}
		if h.Contains(t.Previous) && !h.Contains(t.Current) {
			fn()
		}
	})
}
