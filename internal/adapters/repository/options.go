package repository

import "time"

// Option applies a configuration option to the SessionStore.
type Option func(*SessionStore)

// WithSessionTTL sets how long an idle session survives before eviction.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *SessionStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithSweepInterval sets how often the idle-session sweep runs.
func WithSweepInterval(interval time.Duration) Option {
	return func(s *SessionStore) {
		if interval > 0 {
			s.sweepInterval = interval
		}
	}
}

// WithMaxSessions caps the number of concurrently tracked sessions.
func WithMaxSessions(n int) Option {
	return func(s *SessionStore) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithClock overrides the store's clock. Used by tests to control idle
// deadlines deterministically.
func WithClock(now func() time.Time) Option {
	return func(s *SessionStore) {
		if now != nil {
			s.now = now
		}
	}
}
