package analytics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock returns a now func that advances by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestSessionAggregation(t *testing.T) {
	tr := NewTracker(nil)
	tr.now = stepClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), time.Minute)

	tr.BeginSession("snake")
	tr.EndSession("snake") // 1 minute later
	tr.BeginSession("snake")
	tr.EndSession("snake")

	stats := tr.Snapshot()["snake"]
	assert.Equal(t, 2, stats.Plays)
	assert.Equal(t, 2*time.Minute, stats.TotalTime)
	assert.Equal(t, time.Minute, stats.LongestTime)
}

func TestLongestSessionTracked(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	times := []time.Time{
		base,
		base.Add(30 * time.Second),
		base.Add(time.Minute),
		base.Add(6 * time.Minute),
	}
	i := 0
	tr := NewTracker(nil)
	tr.now = func() time.Time {
		t := times[i]
		i++
		return t
	}

	tr.BeginSession("gomoku")
	tr.EndSession("gomoku") // 30s
	tr.BeginSession("gomoku")
	tr.EndSession("gomoku") // 5m

	stats := tr.Snapshot()["gomoku"]
	assert.Equal(t, 5*time.Minute, stats.LongestTime)
	assert.Equal(t, 5*time.Minute+30*time.Second, stats.TotalTime)
}

func TestEndWithoutBeginIsNoop(t *testing.T) {
	tr := NewTracker(nil)
	tr.EndSession("snake")
	assert.Empty(t, tr.Snapshot())
}

func TestActionCounter(t *testing.T) {
	tr := NewTracker(nil)
	for i := 0; i < 3; i++ {
		tr.Action("2048")
	}
	assert.Equal(t, 3, tr.Snapshot()["2048"].Actions)
}

func TestActive(t *testing.T) {
	tr := NewTracker(nil)
	assert.False(t, tr.Active("snake"))
	tr.BeginSession("snake")
	assert.True(t, tr.Active("snake"))
	tr.EndSession("snake")
	assert.False(t, tr.Active("snake"))
}

func TestSnapshotIsACopy(t *testing.T) {
	tr := NewTracker(nil)
	tr.Action("snake")

	snap := tr.Snapshot()
	s := snap["snake"]
	s.Actions = 99
	snap["snake"] = s

	assert.Equal(t, 1, tr.Snapshot()["snake"].Actions)
}

func TestSinkWritesJSONL(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracker(&buf)
	tr.now = stepClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), time.Second)

	tr.BeginSession("bubbles")
	tr.Action("bubbles")
	tr.EndSession("bubbles")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	events, err := ReadLog(&buf)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, KindSessionStart, events[0].Kind)
	assert.Equal(t, KindAction, events[1].Kind)
	assert.Equal(t, KindSessionEnd, events[2].Kind)
	assert.Equal(t, int64(2000), events[2].DurationMs)
}

func TestReadLogSkipsMalformedLines(t *testing.T) {
	log := `{"time":"2025-06-01T12:00:00Z","game":"snake","kind":"session_start"}
not json at all
{"time":"2025-06-01T12:01:00Z","game":"snake","kind":"session_end","duration_ms":60000}
`
	events, err := ReadLog(strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, KindSessionStart, events[0].Kind)
	assert.Equal(t, KindSessionEnd, events[1].Kind)
}

func TestReadLogHandlesTruncatedFinalLine(t *testing.T) {
	log := `{"time":"2025-06-01T12:00:00Z","game":"snake","kind":"action"}
{"time":"2025-06-01T12:00:01Z","game":"sn`
	events, err := ReadLog(strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, KindAction, events[0].Kind)
}

func TestReplayRebuildsStats(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracker(&buf)
	tr.now = stepClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), time.Minute)

	tr.BeginSession("snake")
	tr.Action("snake")
	tr.EndSession("snake")
	tr.BeginSession("gomoku")
	tr.EndSession("gomoku")

	live := tr.Snapshot()

	events, err := ReadLog(&buf)
	require.NoError(t, err)
	replayed := Replay(events)

	assert.Equal(t, live["snake"].Plays, replayed["snake"].Plays)
	assert.Equal(t, live["snake"].Actions, replayed["snake"].Actions)
	assert.Equal(t, live["snake"].TotalTime, replayed["snake"].TotalTime)
	assert.Equal(t, live["gomoku"].Plays, replayed["gomoku"].Plays)
}
