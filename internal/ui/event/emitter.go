// Package event provides typed emitters and single-owner subscriptions used
// to route notifications between layout entities.
package event

// Subscription keeps a handler registered until Unsubscribe is called.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the handler. Calling it more than once is harmless.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	cancel := s.cancel
	s.cancel = nil
	cancel()
}

// Active reports whether the subscription is still registered.
func (s *Subscription) Active() bool {
	return s != nil && s.cancel != nil
}

type handler[E any] struct {
	id uint64
	fn func(E)
}

// Emitter delivers events synchronously, in subscription order. It must only
// be used from the main loop.
type Emitter[E any] struct {
	nextID   uint64
	handlers []handler[E]
}

// Subscribe registers fn.
func (e *Emitter[E]) Subscribe(fn func(E)) *Subscription {
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, handler[E]{id: id, fn: fn})
	return &Subscription{cancel: func() { e.remove(id) }}
}

func (e *Emitter[E]) remove(id uint64) {
	for i, h := range e.handlers {
		if h.id == id {
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return
		}
	}
}

// Emit calls every handler registered at the time of the call.
func (e *Emitter[E]) Emit(ev E) {
	if len(e.handlers) == 0 {
		return
	}
	snapshot := make([]handler[E], len(e.handlers))
	copy(snapshot, e.handlers)
	for _, h := range snapshot {
		if e.has(h.id) {
			h.fn(ev)
		}
	}
}

func (e *Emitter[E]) has(id uint64) bool {
	for _, h := range e.handlers {
		if h.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of registered handlers.
func (e *Emitter[E]) Len() int {
	return len(e.handlers)
}

// Observers is an argument-less emitter used for "state changed, re-render".
type Observers struct {
	emitter Emitter[struct{}]
	count   uint64
}

// Observe registers fn to run on every Notify.
func (o *Observers) Observe(fn func()) *Subscription {
	return o.emitter.Subscribe(func(struct{}) { fn() })
}

// Notify bumps the change counter and calls observers.
func (o *Observers) Notify() {
	o.count++
	o.emitter.Emit(struct{}{})
}

// Count returns how many times Notify ran.
func (o *Observers) Count() uint64 {
	return o.count
}
