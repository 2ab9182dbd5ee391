package session

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/logging"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/monitoring"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/id"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/types"
)

// Default lifecycle durations, matching the kiosk's shopper-facing
// behavior of a five minute idle window with a thirty second warning.
const (
	DefaultTimeout       = 5 * time.Minute
	DefaultWarningWindow = 30 * time.Second
)

// InitResult describes the outcome of InitSession: the session id to
// use, the restored record when a live session was resumed, and
// whether the shopper is continuing a prior conversation.
type InitResult struct {
	SessionID id.SessionID
	Data      *Record
	Restored  bool
}

// Manager owns the session lifecycle: liveness checks with lazy
// expiry, quota-tolerant saves, activity tracking, and the
// restore-or-fresh decision at kiosk startup.
type Manager struct {
	store   *Store
	timeout time.Duration
	warning time.Duration
	clock   func() time.Time
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithTimeout overrides the idle timeout
func WithTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) { m.timeout = d }
}

// WithWarningWindow overrides the pre-expiry warning window
func WithWarningWindow(d time.Duration) ManagerOption {
	return func(m *Manager) { m.warning = d }
}

// WithClock overrides the wall clock, for tests
func WithClock(clock func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.clock = clock
		m.store.WithClock(clock)
	}
}

// WithMetrics attaches lifecycle metrics
func WithMetrics(metrics *monitoring.Metrics) ManagerOption {
	return func(m *Manager) { m.metrics = metrics }
}

// NewManager creates a Manager over store
func NewManager(store *Store, logger *logging.Logger, opts ...ManagerOption) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	m := &Manager{
		store:   store,
		timeout: DefaultTimeout,
		warning: DefaultWarningWindow,
		clock:   time.Now,
		logger:  logger.Named("session"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Store exposes the underlying store
func (m *Manager) Store() *Store { return m.store }

// Timeout returns the configured idle timeout
func (m *Manager) Timeout() time.Duration { return m.timeout }

// WarningWindow returns the configured pre-expiry warning window
func (m *Manager) WarningWindow() time.Duration { return m.warning }

func (m *Manager) isLive(rec *Record) bool {
	return m.clock().Sub(rec.LastActive()) < m.timeout
}

func (m *Manager) trackActive() {
	if m.metrics != nil {
		m.metrics.SetSessionsActive(len(m.store.SessionKeys()))
	}
}

// GetSessionData returns the record for sid if it exists and is still
// live. An expired record is deleted on the spot and reported absent,
// so readers never observe a stale session.
func (m *Manager) GetSessionData(sid id.SessionID) (*Record, bool) {
	rec, ok := m.store.ReadRecord(sid)
	if !ok {
		return nil, false
	}
	if !m.isLive(rec) {
		m.logger.Info("Session expired, removing",
			zap.String("session_id", sid.String()),
		)
		m.store.DeleteRecord(sid)
		if m.metrics != nil {
			m.metrics.SessionsExpired.Inc()
		}
		m.trackActive()
		return nil, false
	}
	return rec, true
}

// SaveSessionData persists rec under sid and reports whether the write
// landed. On storage quota exhaustion it prunes expired sessions once
// and retries once; a second quota failure is logged and reported
// false, never panicked or propagated.
func (m *Manager) SaveSessionData(sid id.SessionID, rec *Record) bool {
	err := m.store.WriteRecord(sid, rec)
	if err == nil {
		if m.metrics != nil {
			m.metrics.SessionSaves.WithLabelValues("ok").Inc()
		}
		m.trackActive()
		return true
	}

	if errors.Is(err, ErrQuotaExceeded) {
		removed := m.ClearOldSessions()
		m.logger.Warn("Storage quota hit, pruned old sessions",
			zap.String("session_id", sid.String()),
			zap.Int("removed", removed),
		)
		if retryErr := m.store.WriteRecord(sid, rec); retryErr == nil {
			if m.metrics != nil {
				m.metrics.SessionSaves.WithLabelValues("retried").Inc()
			}
			m.trackActive()
			return true
		}
	}

	m.logger.Error("Failed to save session",
		zap.String("session_id", sid.String()),
		zap.Error(err),
	)
	if m.metrics != nil {
		m.metrics.SessionSaves.WithLabelValues("failed").Inc()
	}
	return false
}

// UpdateLastActivity re-stamps the record's activity time. Called only
// on genuine shopper interaction; reads alone never extend a session.
// The read goes through GetSessionData, so a bump on an expired record
// deletes it and reports false instead of reviving it.
func (m *Manager) UpdateLastActivity(sid id.SessionID) bool {
	rec, ok := m.GetSessionData(sid)
	if !ok {
		return false
	}
	return m.SaveSessionData(sid, rec)
}

// TimeUntilExpiry returns how much idle time the session has left,
// floored at zero. Absent sessions report zero.
func (m *Manager) TimeUntilExpiry(sid id.SessionID) time.Duration {
	rec, ok := m.store.ReadRecord(sid)
	if !ok {
		return 0
	}
	remaining := m.timeout - m.clock().Sub(rec.LastActive())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// AboutToExpire reports whether the session is inside the warning
// window: still live, but with no more than the window remaining.
func (m *Manager) AboutToExpire(sid id.SessionID) bool {
	remaining := m.TimeUntilExpiry(sid)
	return remaining > 0 && remaining <= m.warning
}

// ClearSession removes the session and, if it was current, the pointer
func (m *Manager) ClearSession(sid id.SessionID) {
	m.store.DeleteRecord(sid)
	m.trackActive()
	m.logger.Info("Session cleared", zap.String("session_id", sid.String()))
}

// ClearCurrentSession removes whichever session the pointer references
func (m *Manager) ClearCurrentSession() {
	if sid, ok := m.store.CurrentSessionID(); ok {
		m.ClearSession(sid)
	}
}

// ClearOldSessions sweeps the namespace, deleting every expired or
// unparseable record, and returns how many were removed.
func (m *Manager) ClearOldSessions() int {
	removed := 0
	for _, sid := range m.store.SessionKeys() {
		rec, ok := m.store.ReadRecord(sid)
		if ok && m.isLive(rec) {
			continue
		}
		m.store.DeleteRecord(sid)
		removed++
		if m.metrics != nil {
			m.metrics.SessionsExpired.Inc()
		}
	}
	if removed > 0 {
		m.logger.Info("Swept stale sessions", zap.Int("removed", removed))
	}
	m.trackActive()
	return removed
}

// InitSession is the kiosk startup entry point. It sweeps stale
// records, then either restores the live session the pointer
// references or starts a fresh one. A fresh start writes an initial
// empty record immediately, so a repeated call within the idle window
// restores the same session rather than minting another id.
func (m *Manager) InitSession() InitResult {
	m.ClearOldSessions()

	if sid, ok := m.store.CurrentSessionID(); ok {
		if rec, live := m.GetSessionData(sid); live {
			m.logger.Info("Restoring existing session",
				zap.String("session_id", sid.String()),
			)
			if m.metrics != nil {
				m.metrics.SessionsRestored.Inc()
			}
			return InitResult{SessionID: sid, Data: rec, Restored: true}
		}
	}

	sid := m.store.GenerateSessionID()
	m.store.SetCurrentSessionID(sid)
	m.SaveSessionData(sid, &Record{State: types.StateUserDetails})
	m.logger.Info("Started new session", zap.String("session_id", sid.String()))
	if m.metrics != nil {
		m.metrics.SessionsCreated.Inc()
	}
	return InitResult{SessionID: sid, Restored: false}
}
