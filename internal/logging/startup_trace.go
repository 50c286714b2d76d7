package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace tracks milestones from process launch to the first frame.
// Safe for use across goroutines. Disabled unless the log level is debug or
// trace.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	milestones []Milestone
	enabled    bool
	logger     *zerolog.Logger
	buffered   []Milestone // recorded before SetLogger
	finished   bool
}

// Milestone represents a timing checkpoint during startup.
type Milestone struct {
	Name    string
	Elapsed time.Duration // time since t0
	Delta   time.Duration // time since previous milestone
}

// NewStartupTrace starts a trace now. Create it as early as possible.
func NewStartupTrace(logLevel string) *StartupTrace {
	level := strings.ToLower(strings.TrimSpace(logLevel))
	st := &StartupTrace{
		t0:      time.Now(),
		enabled: level == "debug" || level == "trace",
	}
	st.Mark("process_start")
	return st
}

// SetLogger sets the logger milestones are emitted to, flushing the ones
// recorded before.
func (st *StartupTrace) SetLogger(logger *zerolog.Logger) {
	if st == nil || !st.enabled {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.logger = logger
	for _, m := range st.buffered {
		st.emitMilestone(m)
	}
	st.buffered = nil
}

// Mark records a milestone with the given name.
func (st *StartupTrace) Mark(name string) {
	if st == nil || !st.enabled {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}

	elapsed := time.Since(st.t0)
	var delta time.Duration
	if len(st.milestones) > 0 {
		delta = elapsed - st.milestones[len(st.milestones)-1].Elapsed
	}

	m := Milestone{Name: name, Elapsed: elapsed, Delta: delta}
	st.milestones = append(st.milestones, m)

	if st.logger != nil {
		st.emitMilestone(m)
	} else {
		st.buffered = append(st.buffered, m)
	}
}

// emitMilestone logs a single milestone. Caller must hold mutex.
func (st *StartupTrace) emitMilestone(m Milestone) {
	if st.logger == nil {
		return
	}

	elapsedMs := m.Elapsed.Milliseconds()
	event := st.logger.Debug().
		Str("milestone", m.Name).
		Int64("t_ms", elapsedMs)
	if m.Delta > 0 {
		event = event.Int64("delta_ms", m.Delta.Milliseconds())
	}
	event.Msgf("startup_trace: %s (T+%dms)", m.Name, elapsedMs)
}

// Finish marks the trace complete and logs a summary. Later marks are
// ignored.
func (st *StartupTrace) Finish() {
	if st == nil || !st.enabled {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}
	st.finished = true

	if st.logger == nil {
		return
	}

	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}

	st.logger.Info().
		Int64("total_ms", time.Since(st.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup_trace: first frame")
}

// Enabled returns whether the trace is active.
func (st *StartupTrace) Enabled() bool {
	return st != nil && st.enabled
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]Milestone, len(st.milestones))
	copy(out, st.milestones)
	return out
}
