// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep the struct flat with koanf tags; load order is defaults -> file -> env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SessionTTLMinutes is how long an idle calculator session survives.
	SessionTTLMinutes int `koanf:"session_ttl_minutes"`

	// SessionSweepSeconds is how often idle sessions are swept.
	SessionSweepSeconds int `koanf:"session_sweep_seconds"`

	// MaxSessions caps the number of concurrently tracked sessions.
	MaxSessions int `koanf:"max_sessions"`

	// MaxHistoryLimit caps the number of records returned by history reads.
	MaxHistoryLimit int `koanf:"max_history_limit"`

	// SessionCookie names the cookie carrying the session id.
	SessionCookie string `koanf:"session_cookie"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8080",
		SessionTTLMinutes:   60,
		SessionSweepSeconds: 60,
		MaxSessions:         10_000,
		MaxHistoryLimit:     1_000,
		SessionCookie:       "footprint_session",
	}
}
