package mainloop

import "sync"

// Coalescer merges bursts of same-key callbacks into one loop step running
// the most recent callback. Config reloads and notify storms go through it.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer panics on a nil post function.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		pending: make(map[string]func()),
		post:    post,
	}
}

// Post schedules fn under key, replacing a callback still waiting under the
// same key.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.pending[key]
	c.pending[key] = fn
	c.mu.Unlock()

	if scheduled {
		return
	}

	c.post(func() {
		c.mu.Lock()
		if c.destroyed {
			c.mu.Unlock()
			return
		}
		latest := c.pending[key]
		delete(c.pending, key)
		c.mu.Unlock()

		if latest != nil {
			latest()
		}
	})
}

// IsPending reports whether a callback is waiting under key.
func (c *Coalescer) IsPending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[key]
	return ok
}

// Destroy drops pending work; later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]func(){}
	c.mu.Unlock()
}
