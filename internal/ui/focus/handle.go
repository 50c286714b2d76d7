// Package focus tracks which element owns keyboard focus and provides
// geometric navigation between panes.
package focus

// Handle identifies a focusable element. Handles form a tree that mirrors
// element nesting, so focus on an item is also "inside" its pane.
type Handle struct {
	id       uint64
	parent   *Handle
	mgr      *Manager
	released bool
}

// NewHandle creates a handle nested under parent. A nil parent makes a root.
func (m *Manager) NewHandle(parent *Handle) *Handle {
	m.nextID++
	return &Handle{id: m.nextID, parent: parent, mgr: m}
}

// ID returns a process-unique identifier.
func (h *Handle) ID() uint64 {
	if h == nil {
		return 0
	}
	return h.id
}

// Parent returns the enclosing handle, if any.
func (h *Handle) Parent() *Handle {
	if h == nil {
		return nil
	}
	return h.parent
}

// Manager returns the manager that created h.
func (h *Handle) Manager() *Manager {
	if h == nil {
		return nil
	}
	return h.mgr
}

// SetParent re-parents h, e.g. when an item moves to another pane.
func (h *Handle) SetParent(parent *Handle) {
	if h == nil || h == parent {
		return
	}
	h.parent = parent
}

// Focus makes h the focused handle.
func (h *Handle) Focus() {
	if h == nil {
		return
	}
	h.mgr.Focus(h)
}

// IsFocused reports whether h itself is focused.
func (h *Handle) IsFocused() bool {
	return h != nil && !h.released && h.mgr.focused == h
}

// ContainsFocused reports whether h or one of its descendants is focused.
func (h *Handle) ContainsFocused() bool {
	if h == nil || h.released {
		return false
	}
	return h.Contains(h.mgr.focused)
}

// Contains reports whether other is h or nested under h.
func (h *Handle) Contains(other *Handle) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == h {
			return true
		}
	}
	return false
}

// Released reports whether Release was called.
func (h *Handle) Released() bool {
	return h == nil || h.released
}

// Release drops the handle. If focus was inside it, focus is cleared.
func (h *Handle) Release() {
	if h == nil || h.released {
		return
	}
	if h.ContainsFocused() {
		h.mgr.Blur()
	}
	h.released = true
}

// Weak returns a non-owning reference to h.
func (h *Handle) Weak() WeakHandle {
	return WeakHandle{h: h}
}

// WeakHandle refers to a handle without keeping it usable after release.
type WeakHandle struct {
	h *Handle
}

// Upgrade returns the handle while it has not been released.
func (w WeakHandle) Upgrade() (*Handle, bool) {
	if w.h == nil || w.h.released {
		return nil, false
	}
	return w.h, true
}
