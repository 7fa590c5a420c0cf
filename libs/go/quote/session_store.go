package quote

import (
	"sync"
	"time"
)

const (
	// DefaultSessionTTL is how long an idle authoring session is kept.
	DefaultSessionTTL = 2 * time.Hour

	DefaultMaxSessions        = 10000
	DefaultMaxItemsPerSection = 50
)

// SessionStore keeps authoring sessions in memory and evicts idle ones.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	maxLive  int
	maxItems int
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once
}

// StoreOption configures a SessionStore.
type StoreOption func(*SessionStore)

// WithMaxSessions caps the number of live sessions.
func WithMaxSessions(n int) StoreOption {
	return func(st *SessionStore) {
		if n > 0 {
			st.maxLive = n
		}
	}
}

// WithMaxItemsPerSection caps the line items a single section may hold.
func WithMaxItemsPerSection(n int) StoreOption {
	return func(st *SessionStore) {
		if n > 0 {
			st.maxItems = n
		}
	}
}

// NewSessionStore creates a store and starts its eviction loop. Pass a zero
// cleanupInterval to disable the loop.
func NewSessionStore(ttl, cleanupInterval time.Duration, opts ...StoreOption) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	st := &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		maxLive:  DefaultMaxSessions,
		maxItems: DefaultMaxItemsPerSection,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(st)
	}
	if cleanupInterval > 0 {
		go st.cleanup(cleanupInterval)
	}
	return st
}

// Create registers a new session. When the store is full, idle sessions are
// evicted first; ErrSessionLimit is returned if none could be.
func (st *SessionStore) Create() (*Session, error) {
	s := newSession(st.now)
	s.maxItems = st.maxItems

	st.mu.Lock()
	defer st.mu.Unlock()
	if len(st.sessions) >= st.maxLive {
		st.evictIdleLocked()
		if len(st.sessions) >= st.maxLive {
			return nil, ErrSessionLimit
		}
	}
	st.sessions[s.ID] = s
	return s, nil
}

// Get returns a live session and refreshes its idle timer.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.markAccessed()
	return s, nil
}

// Delete drops a session. Enhancements still in flight resolve against the
// detached session and are discarded with it.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// EvictIdle removes sessions idle for longer than the TTL and returns how many
// were removed.
func (st *SessionStore) EvictIdle() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.evictIdleLocked()
}

func (st *SessionStore) evictIdleLocked() int {
	cutoff := st.now().UTC().Add(-st.ttl)
	removed := 0
	for id, s := range st.sessions {
		if s.idleSince().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Close stops the eviction loop.
func (st *SessionStore) Close() {
	st.once.Do(func() { close(st.stop) })
}

func (st *SessionStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.EvictIdle()
		case <-st.stop:
			return
		}
	}
}
