package session

import (
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/logging"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/id"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/types"
)

// CurrentSessionKey is the well-known pointer key holding the id of the
// session record that is "current" for this kiosk.
const CurrentSessionKey = "currentKioskSession"

// Record is the unit of persisted session state. Timestamp is the
// creation time and LastActivity the last user-originated interaction,
// both in epoch milliseconds to match the kiosk front-end's wire format.
type Record struct {
	UserName        string                  `json:"userName,omitempty"`
	Language        string                  `json:"language,omitempty"`
	Messages        []types.Turn            `json:"messages,omitempty"`
	CurrentQuestion *types.Question         `json:"currentQuestion,omitempty"`
	State           types.ConversationState `json:"state,omitempty"`

	Timestamp    int64 `json:"timestamp"`
	LastActivity int64 `json:"lastActivity"`
}

// LastActive returns the reference instant for liveness: the last
// activity if recorded, otherwise the creation time.
func (r *Record) LastActive() time.Time {
	ms := r.LastActivity
	if ms == 0 {
		ms = r.Timestamp
	}
	return time.UnixMilli(ms)
}

// Store provides durable key-value persistence for the session pointer
// and session records. Every operation swallows backend failures and
// degrades to absent/false; quota failures on write are the single
// exception and propagate as ErrQuotaExceeded for the Manager to
// handle.
type Store struct {
	backend Backend
	logger  *logging.Logger
	clock   func() time.Time
}

// NewStore creates a Store on the given backend
func NewStore(backend Backend, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{
		backend: backend,
		logger:  logger,
		clock:   time.Now,
	}
}

// WithClock overrides the wall clock, for tests
func (s *Store) WithClock(clock func() time.Time) *Store {
	s.clock = clock
	return s
}

// GenerateSessionID produces a new namespaced session id. Uniqueness is
// collision-resistant, not collision-proof: no check against existing
// keys is made.
func (s *Store) GenerateSessionID() id.SessionID {
	return id.NewSessionID()
}

// CurrentSessionID reads the pointer key. Absent on any failure.
func (s *Store) CurrentSessionID() (id.SessionID, bool) {
	v, ok := s.backend.Get(CurrentSessionKey)
	if !ok || v == "" {
		return "", false
	}
	return id.SessionID(v), true
}

// SetCurrentSessionID overwrites the pointer key
func (s *Store) SetCurrentSessionID(sid id.SessionID) bool {
	if err := s.backend.Set(CurrentSessionKey, string(sid)); err != nil {
		s.logger.Warn("Failed to set current session pointer",
			zap.String("session_id", sid.String()),
			zap.Error(err),
		)
		return false
	}
	return true
}

// ReadRecord reads and parses the record at sid. Parse failures are
// treated as absent; deciding whether to delete the corrupt record is
// the Manager's job (its sweep removes unparseable records).
func (s *Store) ReadRecord(sid id.SessionID) (*Record, bool) {
	raw, ok := s.backend.Get(string(sid))
	if !ok || raw == "" {
		return nil, false
	}

	var rec Record
	if err := sonic.Unmarshal([]byte(raw), &rec); err != nil {
		s.logger.Warn("Discarding unparseable session record",
			zap.String("session_id", sid.String()),
			zap.Error(err),
		)
		return nil, false
	}
	return &rec, true
}

// WriteRecord serializes rec and stores it at sid, stamping
// LastActivity with the current time and preserving the original
// creation timestamp of an existing record. Quota failures propagate;
// the caller is expected to prune and retry once.
func (s *Store) WriteRecord(sid id.SessionID, rec *Record) error {
	now := s.clock().UnixMilli()

	stamped := *rec
	stamped.LastActivity = now
	stamped.Timestamp = now
	if existing, ok := s.ReadRecord(sid); ok && existing.Timestamp > 0 {
		stamped.Timestamp = existing.Timestamp
	}

	data, err := sonic.Marshal(&stamped)
	if err != nil {
		s.logger.Error("Failed to serialize session record",
			zap.String("session_id", sid.String()),
			zap.Error(err),
		)
		return err
	}

	if err := s.backend.Set(string(sid), string(data)); err != nil {
		s.logger.Warn("Failed to persist session record",
			zap.String("session_id", sid.String()),
			zap.Error(err),
		)
		return err
	}

	*rec = stamped
	return nil
}

// DeleteRecord removes the record at sid and clears the pointer key if
// it currently references sid.
func (s *Store) DeleteRecord(sid id.SessionID) bool {
	s.backend.Remove(string(sid))

	if current, ok := s.CurrentSessionID(); ok && current == sid {
		s.backend.Remove(CurrentSessionKey)
	}
	return true
}

// DeleteAll removes every key in the session namespace plus the
// pointer key. Full-reset/debug path only.
func (s *Store) DeleteAll() {
	for _, key := range s.backend.Keys() {
		if id.IsSessionID(key) || key == CurrentSessionKey {
			s.backend.Remove(key)
		}
	}
}

// SessionKeys enumerates all record keys in the session namespace
func (s *Store) SessionKeys() []id.SessionID {
	var out []id.SessionID
	for _, key := range s.backend.Keys() {
		if id.IsSessionID(key) {
			out = append(out, id.SessionID(key))
		}
	}
	return out
}

// rawRead returns the unparsed record payload, used by the Manager's
// sweep to distinguish corrupt records from absent ones.
func (s *Store) rawRead(sid id.SessionID) (string, bool) {
	return s.backend.Get(string(sid))
}
