// Package analytics counts local gameplay usage: which games get played,
// how often, and for how long. Counters live in memory on a Tracker and
// can optionally be mirrored to a JSONL event log for later inspection.
// Nothing ever leaves the machine.
package analytics

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Event is one logged usage record, serialized as a single JSONL line.
type Event struct {
	Time time.Time `json:"time"`
	Game string    `json:"game"`
	Kind string    `json:"kind"`
	// DurationMs is set only on session_end events.
	DurationMs int64 `json:"duration_ms,omitempty"`
}

// Event kinds written to the log.
const (
	KindSessionStart = "session_start"
	KindSessionEnd   = "session_end"
	KindAction       = "action"
)

// GameStats aggregates usage for a single game.
type GameStats struct {
	Plays       int
	Actions     int
	TotalTime   time.Duration
	LongestTime time.Duration
}

// Tracker accumulates usage counters. It is safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	games    map[string]*GameStats
	sessions map[string]time.Time
	sink     io.Writer
	now      func() time.Time
}

// NewTracker creates a Tracker. sink may be nil; when set, every event is
// appended to it as one JSON line.
func NewTracker(sink io.Writer) *Tracker {
	return &Tracker{
		games:    make(map[string]*GameStats),
		sessions: make(map[string]time.Time),
		sink:     sink,
		now:      time.Now,
	}
}

// BeginSession marks the start of a play session for the named game. A
// second Begin without an End restarts the session clock.
func (t *Tracker) BeginSession(game string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.sessions[game] = now
	t.statsLocked(game).Plays++
	t.writeLocked(Event{Time: now, Game: game, Kind: KindSessionStart})
}

// EndSession closes the current session for the named game and folds its
// duration into the totals. Ending without a matching Begin is a no-op.
func (t *Tracker) EndSession(game string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start, ok := t.sessions[game]
	if !ok {
		return
	}
	delete(t.sessions, game)

	now := t.now()
	dur := now.Sub(start)
	if dur < 0 {
		dur = 0
	}
	s := t.statsLocked(game)
	s.TotalTime += dur
	if dur > s.LongestTime {
		s.LongestTime = dur
	}
	t.writeLocked(Event{Time: now, Game: game, Kind: KindSessionEnd, DurationMs: dur.Milliseconds()})
}

// Action records one in-game action (a move, a capture, a merge) for the
// named game.
func (t *Tracker) Action(game string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.statsLocked(game).Actions++
	t.writeLocked(Event{Time: t.now(), Game: game, Kind: KindAction})
}

// Snapshot returns a deep copy of the per-game aggregates. The copy is
// safe to read while the Tracker keeps counting.
func (t *Tracker) Snapshot() map[string]GameStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]GameStats, len(t.games))
	for name, s := range t.games {
		out[name] = *s
	}
	return out
}

// Active reports whether the named game has an open session.
func (t *Tracker) Active(game string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.sessions[game]
	return ok
}

func (t *Tracker) statsLocked(game string) *GameStats {
	s, ok := t.games[game]
	if !ok {
		s = &GameStats{}
		t.games[game] = s
	}
	return s
}

// writeLocked appends the event to the sink if one is configured. Sink
// failures are swallowed; analytics must never break gameplay.
func (t *Tracker) writeLocked(ev Event) {
	if t.sink == nil {
		return
	}
	line, err := json.Marshal(ev)
	if err != nil {
		return
	}
	line = append(line, '\n')
	t.sink.Write(line)
}

// ReadLog parses a JSONL event log produced by a Tracker sink. Malformed
// lines are skipped rather than failing the whole read, so a log with a
// truncated final line (the process died mid-write) still loads.
func ReadLog(r io.Reader) ([]Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading event log: %w", err)
	}

	var events []Event
	start := 0
	for i := 0; i <= len(data); i++ {
		if i < len(data) && data[i] != '\n' {
			continue
		}
		line := data[start:i]
		start = i + 1
		if len(line) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// Replay folds a previously written event log back into aggregate stats,
// pairing session_start with the next session_end for the same game.
func Replay(events []Event) map[string]GameStats {
	out := make(map[string]GameStats)
	open := make(map[string]time.Time)

	for _, ev := range events {
		s := out[ev.Game]
		switch ev.Kind {
		case KindSessionStart:
			s.Plays++
			open[ev.Game] = ev.Time
		case KindSessionEnd:
			delete(open, ev.Game)
			dur := time.Duration(ev.DurationMs) * time.Millisecond
			s.TotalTime += dur
			if dur > s.LongestTime {
				s.LongestTime = dur
			}
		case KindAction:
			s.Actions++
		}
		out[ev.Game] = s
	}
	return out
}
