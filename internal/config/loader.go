package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FOOTPRINT_CONFIG is set
//  3. env (prefix FOOTPRINT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("FOOTPRINT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: FOOTPRINT_ADDR, FOOTPRINT_SESSION_TTL_MINUTES, ...
	// Map env keys like FOOTPRINT_MAX_SESSIONS -> max_sessions (flat keys);
	// underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("FOOTPRINT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "footprint_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.SessionTTLMinutes < 1:
		return nil, fmt.Errorf("%w: session_ttl_minutes must be at least 1", ErrInvalidConfig)
	case cfg.SessionSweepSeconds < 1:
		return nil, fmt.Errorf("%w: session_sweep_seconds must be at least 1", ErrInvalidConfig)
	case cfg.MaxSessions < 1:
		return nil, fmt.Errorf("%w: max_sessions must be at least 1", ErrInvalidConfig)
	case cfg.MaxHistoryLimit < 1:
		return nil, fmt.Errorf("%w: max_history_limit must be at least 1", ErrInvalidConfig)
	case cfg.SessionCookie == "":
		return nil, fmt.Errorf("%w: session_cookie must not be empty", ErrInvalidConfig)
	}
	return &cfg, nil
}
