package session

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/logging"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/id"
)

// DefaultPollInterval is how often the watcher re-checks expiry
const DefaultPollInterval = time.Second

// Event is a watcher notification. Warning fires once per watched
// session when it enters the pre-expiry window; Timeout fires when the
// session has expired, after which the watcher stops itself.
type Event struct {
	Type      EventType
	SessionID id.SessionID
	Remaining time.Duration
}

type EventType string

const (
	EventWarning EventType = "warning"
	EventTimeout EventType = "timeout"
)

// Watcher polls a single session's expiry state on an interval and
// delivers warning and timeout events to a callback. At most one loop
// runs at a time: Start replaces any previous loop, and Stop is
// deterministic, no event is delivered after it returns.
type Watcher struct {
	manager  *Manager
	interval time.Duration
	logger   *logging.Logger
	notify   func(Event)

	mu     sync.Mutex
	stop   chan struct{}
	done   chan struct{}
	warned bool
}

// NewWatcher creates a Watcher delivering events to notify
func NewWatcher(manager *Manager, interval time.Duration, logger *logging.Logger, notify func(Event)) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Watcher{
		manager:  manager,
		interval: interval,
		logger:   logger.Named("watcher"),
		notify:   notify,
	}
}

// Start begins watching sid, cancelling any loop already running
func (w *Watcher) Start(sid id.SessionID) {
	w.Stop()

	w.mu.Lock()
	w.warned = false
	stop := make(chan struct{})
	done := make(chan struct{})
	w.stop = stop
	w.done = done
	w.mu.Unlock()

	go w.loop(sid, stop, done)
}

// Stop cancels the running loop, if any, and waits for it to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	stop, done := w.stop, w.done
	w.stop, w.done = nil, nil
	w.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Acknowledge handles the shopper confirming presence after a warning:
// activity is refreshed and the warning re-armed so a later approach
// to expiry warns again.
func (w *Watcher) Acknowledge(sid id.SessionID) {
	w.manager.UpdateLastActivity(sid)
	w.mu.Lock()
	w.warned = false
	w.mu.Unlock()
}

func (w *Watcher) loop(sid id.SessionID, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(w.interval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
		}

		if _, live := w.manager.GetSessionData(sid); !live {
			w.logger.Info("Watched session timed out",
				zap.String("session_id", sid.String()),
			)
			w.emit(stop, Event{Type: EventTimeout, SessionID: sid})
			return
		}

		if w.manager.AboutToExpire(sid) {
			w.mu.Lock()
			first := !w.warned
			w.warned = true
			w.mu.Unlock()
			if first {
				remaining := w.manager.TimeUntilExpiry(sid)
				w.logger.Info("Session nearing expiry",
					zap.String("session_id", sid.String()),
					zap.Duration("remaining", remaining),
				)
				w.emit(stop, Event{Type: EventWarning, SessionID: sid, Remaining: remaining})
			}
		}

		timer.Reset(w.interval)
	}
}

// emit delivers ev unless a stop raced in, keeping Stop's guarantee
// that no event arrives after it returns.
func (w *Watcher) emit(stop <-chan struct{}, ev Event) {
	select {
	case <-stop:
		return
	default:
	}
	if w.notify != nil {
		w.notify(ev)
	}
}
