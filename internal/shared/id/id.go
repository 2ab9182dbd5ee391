// Package id provides centralized ID generation for the kiosk backend.
//
// Session IDs double as storage keys: they carry the well-known
// "kiosk-session-" namespace prefix followed by a ULID, which encodes a
// millisecond wall-clock timestamp plus a random suffix. That makes them
// collision-resistant (not collision-proof) and k-sortable, which is all
// kiosk traffic volume warrants.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// SessionID identifies one kiosk session; it is also the storage key
// for the persisted session record.
type SessionID string

// RequestID identifies an API request
type RequestID string

const (
	// SessionPrefix is the storage namespace for session records.
	SessionPrefix = "kiosk-session-"

	requestPrefix = "req_"
)

// Generator generates ULIDs from a guarded entropy source
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy
// source, useful for deterministic tests.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// NewSessionID generates a new namespaced session ID
func NewSessionID() SessionID {
	return SessionID(SessionPrefix + Default().GenerateString())
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(requestPrefix + Default().GenerateString())
}

func (id SessionID) String() string { return string(id) }
func (id RequestID) String() string { return string(id) }

// IsSessionID reports whether a storage key belongs to the session
// record namespace.
func IsSessionID(key string) bool {
	return len(key) > len(SessionPrefix) && key[:len(SessionPrefix)] == SessionPrefix
}

// SessionTimestamp extracts the creation time embedded in a session ID.
func SessionTimestamp(id SessionID) (time.Time, error) {
	if !IsSessionID(string(id)) {
		return time.Time{}, fmt.Errorf("not a session id: %q", id)
	}
	parsed, err := ulid.Parse(string(id)[len(SessionPrefix):])
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
