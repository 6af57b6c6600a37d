package repository

import (
	"context"
	"sync"
	"time"

	"github.com/okian/footprint/pkg/metrics"
)

// Default session store configuration constants.
const (
	defaultSessionTTL    = 60 * time.Minute
	defaultSweepInterval = time.Minute
	defaultMaxSessions   = 10_000
)

// session pairs a ledger with the last time its owner was seen.
type session struct {
	ledger   *Ledger
	lastSeen time.Time
}

// SessionStore maps session ids to their ledgers. Each session owns an
// independent ledger; the store itself is the only cross-session
// synchronization point. Idle sessions are evicted by a background sweep.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session

	ttl           time.Duration
	sweepInterval time.Duration
	maxSessions   int

	closed   bool
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// now is the clock; replaced in tests.
	now func() time.Time
}

// NewSessionStore creates a session store and starts its sweep loop.
func NewSessionStore(ctx context.Context, opts ...Option) *SessionStore {
	s := &SessionStore{
		sessions:      make(map[string]*session),
		ttl:           defaultSessionTTL,
		sweepInterval: defaultSweepInterval,
		maxSessions:   defaultMaxSessions,
		stopCh:        make(chan struct{}),
		now:           time.Now,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	s.wg.Add(1)
	go s.sweep(ctx)

	return s
}

// Ledger returns the ledger for the given session id, creating it on first
// use, and refreshes the session's idle deadline.
func (s *SessionStore) Ledger(_ context.Context, id string) (*Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	sess, ok := s.sessions[id]
	if !ok {
		if len(s.sessions) >= s.maxSessions {
			s.evictOldestLocked()
		}
		sess = &session{ledger: NewLedger()}
		s.sessions[id] = sess
		metrics.RecordSessionCreated()
		metrics.UpdateActiveSessions(len(s.sessions))
	}
	sess.lastSeen = s.now()
	return sess.ledger, nil
}

// Count returns the number of live sessions.
func (s *SessionStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Records returns the total number of ledger records across all sessions.
func (s *SessionStore) Records(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, sess := range s.sessions {
		total += sess.ledger.Len(ctx)
	}
	return total
}

// Close stops the sweep loop and discards all sessions.
func (s *SessionStore) Close() error {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.sessions = make(map[string]*session)
	metrics.UpdateActiveSessions(0)
	return nil
}

// sweep periodically evicts sessions idle longer than the TTL.
func (s *SessionStore) sweep(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

// evictIdle removes every session whose idle time exceeds the TTL.
func (s *SessionStore) evictIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			metrics.RecordSessionExpired()
		}
	}
	metrics.UpdateActiveSessions(len(s.sessions))
}

// evictOldestLocked drops the longest-idle session to make room for a new
// one. Caller must hold the write lock.
func (s *SessionStore) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID = id
			oldest = sess.lastSeen
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
		metrics.RecordSessionExpired()
	}
}
