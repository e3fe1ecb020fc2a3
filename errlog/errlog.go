// Package errlog collects runtime errors from the mini games into a
// bounded in-memory ring, with an optional JSONL sink for inspection
// after the fact. Capturing never panics and never blocks gameplay.
package errlog

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Entry is one captured error.
type Entry struct {
	Time    time.Time `json:"time"`
	Source  string    `json:"source"`
	Message string    `json:"message"`
}

// Log keeps the most recent captured errors. It is safe for concurrent
// use.
type Log struct {
	mu    sync.Mutex
	ring  []Entry
	next  int
	count int
	sink  io.Writer
	now   func() time.Time
}

// New creates a Log retaining at most capacity entries; older entries are
// overwritten. A capacity below 1 is raised to 1. sink may be nil; when
// set, every captured entry is appended to it as one JSON line.
func New(capacity int, sink io.Writer) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{
		ring: make([]Entry, capacity),
		sink: sink,
		now:  time.Now,
	}
}

// Capture records err under source. Nil errors are ignored.
func (l *Log) Capture(source string, err error) {
	if err == nil {
		return
	}
	l.add(source, err.Error())
}

// Capturef records a formatted message under source.
func (l *Log) Capturef(source, format string, args ...any) {
	l.add(source, fmt.Sprintf(format, args...))
}

// CapturePanic recovers a panic in the calling goroutine and records it,
// then re-raises nothing; the game keeps running. Use it deferred:
//
//	defer log.CapturePanic("snake.update")
func (l *Log) CapturePanic(source string) {
	if r := recover(); r != nil {
		l.add(source, fmt.Sprintf("panic: %v", r))
	}
}

// Recent returns captured entries newest first. The returned slice is a
// copy.
func (l *Log) Recent() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, 0, l.count)
	for i := 0; i < l.count; i++ {
		idx := (l.next - 1 - i + len(l.ring)*2) % len(l.ring)
		out = append(out, l.ring[idx])
	}
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Clear drops all retained entries. The sink is unaffected.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next = 0
	l.count = 0
}

func (l *Log) add(source, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := Entry{Time: l.now(), Source: source, Message: msg}
	l.ring[l.next] = e
	l.next = (l.next + 1) % len(l.ring)
	if l.count < len(l.ring) {
		l.count++
	}

	if l.sink != nil {
		if line, err := json.Marshal(e); err == nil {
			line = append(line, '\n')
			l.sink.Write(line)
		}
	}
}
