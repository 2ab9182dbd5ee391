package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayankBansal12/evol-kiosk/internal/session"
)

// eventSink collects watcher events for assertions
type eventSink struct {
	mu     sync.Mutex
	events []session.Event
}

func (s *eventSink) record(ev session.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *eventSink) snapshot() []session.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]session.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *eventSink) waitFor(t *testing.T, typ session.EventType, timeout time.Duration) session.Event {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		for _, ev := range s.snapshot() {
			if ev.Type == typ {
				return ev
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no %s event within %s", typ, timeout)
	return session.Event{}
}

func (s *eventSink) count(typ session.EventType) int {
	n := 0
	for _, ev := range s.snapshot() {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func newWatchedManager(t *testing.T, timeout, warning time.Duration) (*session.Manager, *session.Watcher, *eventSink) {
	t.Helper()
	store := session.NewStore(session.NewMemoryBackend(), nil)
	mgr := session.NewManager(store, nil,
		session.WithTimeout(timeout),
		session.WithWarningWindow(warning),
	)
	sink := &eventSink{}
	w := session.NewWatcher(mgr, 10*time.Millisecond, nil, sink.record)
	t.Cleanup(w.Stop)
	return mgr, w, sink
}

func TestWatcher_WarnsOnceThenTimesOut(t *testing.T) {
	mgr, w, sink := newWatchedManager(t, 200*time.Millisecond, 150*time.Millisecond)
	res := mgr.InitSession()

	w.Start(res.SessionID)

	ev := sink.waitFor(t, session.EventWarning, time.Second)
	assert.Equal(t, res.SessionID, ev.SessionID)
	assert.Greater(t, ev.Remaining, time.Duration(0))

	sink.waitFor(t, session.EventTimeout, time.Second)
	assert.Equal(t, 1, sink.count(session.EventWarning), "warning must fire once, not every poll")

	// The expired session was removed by the watcher's liveness check
	_, ok := mgr.Store().ReadRecord(res.SessionID)
	assert.False(t, ok)
}

func TestWatcher_AcknowledgeRearmsWarning(t *testing.T) {
	mgr, w, sink := newWatchedManager(t, 300*time.Millisecond, 250*time.Millisecond)
	res := mgr.InitSession()

	w.Start(res.SessionID)

	sink.waitFor(t, session.EventWarning, time.Second)
	w.Acknowledge(res.SessionID)

	// Activity was refreshed, so the session approaches expiry again
	// and a second warning fires.
	deadline := time.Now().Add(time.Second)
	for sink.count(session.EventWarning) < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.GreaterOrEqual(t, sink.count(session.EventWarning), 2)
}

func TestWatcher_StopPreventsFurtherEvents(t *testing.T) {
	mgr, w, sink := newWatchedManager(t, 100*time.Millisecond, 80*time.Millisecond)
	res := mgr.InitSession()

	w.Start(res.SessionID)
	w.Stop()

	before := len(sink.snapshot())
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, before, len(sink.snapshot()))
}

func TestWatcher_StartReplacesPreviousLoop(t *testing.T) {
	mgr, w, sink := newWatchedManager(t, time.Hour, time.Minute)
	first := mgr.InitSession()

	w.Start(first.SessionID)

	// Rewatch a fresh session, then kill the first one. The replaced
	// loop must be gone, so the dead first session produces no events.
	mgr.ClearSession(first.SessionID)
	second := mgr.InitSession()
	require.NotEqual(t, first.SessionID, second.SessionID)
	w.Start(second.SessionID)
	mgr.ClearSession(first.SessionID)

	time.Sleep(100 * time.Millisecond)
	for _, ev := range sink.snapshot() {
		assert.Equal(t, second.SessionID, ev.SessionID)
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	mgr, w, _ := newWatchedManager(t, time.Hour, time.Minute)
	res := mgr.InitSession()

	w.Stop()
	w.Start(res.SessionID)
	w.Stop()
	w.Stop()
}
