package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrQuotaExceeded is returned by a Backend when a write would exceed
// its storage capacity. It is the only backend failure the Manager
// reacts to (with one sweep-and-retry cycle).
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Backend is the injected persistence dependency of the Store. It is a
// plain string key-value surface so the Store is testable with an
// in-memory fake instead of a real kiosk disk.
type Backend interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)
	Keys() []string
}

// MemoryBackend is a map-backed Backend. With a non-zero capacity it
// rejects writes that would push total stored bytes past the limit,
// which is how tests exercise the quota-recovery path.
type MemoryBackend struct {
	mu       sync.RWMutex
	data     map[string]string
	capacity int
}

// NewMemoryBackend creates an unbounded in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

// NewBoundedMemoryBackend creates an in-memory backend that holds at
// most capacity bytes of values.
func NewBoundedMemoryBackend(capacity int) *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string), capacity: capacity}
}

func (b *MemoryBackend) Get(key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	return v, ok
}

func (b *MemoryBackend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.capacity > 0 {
		used := 0
		for k, v := range b.data {
			if k == key {
				continue
			}
			used += len(v)
		}
		if used+len(value) > b.capacity {
			return ErrQuotaExceeded
		}
	}

	b.data[key] = value
	return nil
}

func (b *MemoryBackend) Remove(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
}

func (b *MemoryBackend) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	return keys
}

// FileBackend persists each key as one file under a directory, so
// kiosk sessions survive a power cycle. All failures degrade to
// absent/error; the Store decides what to log.
type FileBackend struct {
	dir string
	mu  sync.Mutex
}

// NewFileBackend creates a file-backed Backend rooted at dir
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	// Keys are session IDs or the pointer key; neither contains a
	// path separator, but sanitize anyway.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(b.dir, safe+".json")
}

func (b *FileBackend) Get(key string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (b *FileBackend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := os.WriteFile(b.path(key), []byte(value), 0o644)
	if err != nil && errors.Is(err, os.ErrPermission) {
		return err
	}
	if err != nil {
		// A full disk behaves like an exhausted quota
		if strings.Contains(err.Error(), "no space left") {
			return ErrQuotaExceeded
		}
		return err
	}
	return nil
}

func (b *FileBackend) Remove(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_ = os.Remove(b.path(key))
}

func (b *FileBackend) Keys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys
}
