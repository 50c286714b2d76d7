package logging

import (
	"bytes"
	"strings"
	"sync"
)

// LogBuffer keeps the most recent log lines in memory so the log panel can
// show them while the terminal owns stderr. It is an io.Writer suitable for
// zerolog.MultiLevelWriter.
type LogBuffer struct {
	mu       sync.Mutex
	lines    []string
	start    int
	capacity int
	partial  bytes.Buffer
	onWrite  func()
}

// NewLogBuffer creates a buffer holding at most capacity lines.
func NewLogBuffer(capacity int) *LogBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &LogBuffer{capacity: capacity}
}

// OnWrite registers fn, called after every write that completed a line.
// fn runs on the writing goroutine.
func (b *LogBuffer) OnWrite(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onWrite = fn
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	b.partial.Write(p)
	added := false
	for {
		data := b.partial.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}
		line := strings.TrimRight(string(data[:idx]), "\r")
		b.partial.Next(idx + 1)
		b.push(line)
		added = true
	}
	fn := b.onWrite
	b.mu.Unlock()

	if added && fn != nil {
		fn()
	}
	return len(p), nil
}

// push appends line, overwriting the oldest once full. Must hold b.mu.
func (b *LogBuffer) push(line string) {
	if len(b.lines) < b.capacity {
		b.lines = append(b.lines, line)
		return
	}
	b.lines[b.start] = line
	b.start = (b.start + 1) % b.capacity
}

// Lines returns up to n of the most recent lines, oldest first. n <= 0
// returns everything kept.
func (b *LogBuffer) Lines(n int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	total := len(b.lines)
	if n <= 0 || n > total {
		n = total
	}
	out := make([]string, 0, n)
	for i := total - n; i < total; i++ {
		out = append(out, b.lines[(b.start+i)%total])
	}
	return out
}

// Len returns the number of lines kept.
func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}
