package session

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned for unknown, deleted or evicted session IDs.
	ErrSessionNotFound = errors.New("session not found")
	// ErrStoreFull is returned by Create when the session limit is reached.
	ErrStoreFull = errors.New("too many sessions")
)

// Factory builds a fresh Session.
type Factory func() (*Session, error)

type slot struct {
	mu       sync.Mutex
	sess     *Session
	lastUsed atomic.Int64 // unix nanoseconds
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithMaxSessions caps the number of live sessions. Zero means no cap.
func WithMaxSessions(n int) StoreOption {
	return func(st *Store) { st.maxSessions = n }
}

// WithIdleTimeout evicts sessions unused for longer than d. Eviction runs
// when a session is created. Zero disables it.
func WithIdleTimeout(d time.Duration) StoreOption {
	return func(st *Store) { st.idleTimeout = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(st *Store) { st.now = now }
}

// Store isolates many sessions from each other. Each session is only ever
// touched by one goroutine at a time, through With.
type Store struct {
	mu      sync.RWMutex
	slots   map[string]*slot
	factory Factory

	maxSessions int
	idleTimeout time.Duration
	now         func() time.Time
}

// NewStore creates an empty Store that builds sessions with factory.
func NewStore(factory Factory, opts ...StoreOption) *Store {
	st := &Store{slots: make(map[string]*slot), factory: factory, now: time.Now}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

// Create builds a new session and returns its ID.
func (st *Store) Create() (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictIdleLocked()
	if st.maxSessions > 0 && len(st.slots) >= st.maxSessions {
		return "", fmt.Errorf("%w (limit %d)", ErrStoreFull, st.maxSessions)
	}

	sess, err := st.factory()
	if err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	id := uuid.NewString()
	sl := &slot{sess: sess}
	sl.lastUsed.Store(st.now().UnixNano())
	st.slots[id] = sl
	return id, nil
}

func (st *Store) evictIdleLocked() {
	if st.idleTimeout <= 0 {
		return
	}
	cutoff := st.now().Add(-st.idleTimeout).UnixNano()
	for id, sl := range st.slots {
		if sl.lastUsed.Load() < cutoff {
			delete(st.slots, id)
		}
	}
}

// Delete drops a session.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.slots[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(st.slots, id)
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.slots)
}

// With runs fn with exclusive access to the session id.
func (st *Store) With(id string, fn func(*Session) error) error {
	st.mu.RLock()
	sl, ok := st.slots[id]
	st.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	sl.lastUsed.Store(st.now().UnixNano())
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return fn(sl.sess)
}
