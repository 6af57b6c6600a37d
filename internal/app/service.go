// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	repository "github.com/okian/footprint/internal/adapters/repository"
	"github.com/okian/footprint/internal/domain/estimator"
	"github.com/okian/footprint/internal/domain/impact"
	"github.com/okian/footprint/internal/domain/model"
	"github.com/okian/footprint/internal/domain/types"
	"github.com/okian/footprint/pkg/logger"
	"github.com/okian/footprint/pkg/metrics"
)

// valueUnit is the unit every estimate is expressed in.
const valueUnit = "tCO2e"

// Default service configuration constants.
const (
	defaultSessionTTL      = 60 * time.Minute
	defaultSweepInterval   = time.Minute
	defaultMaxSessions     = 10_000
	defaultMaxHistoryLimit = 1_000
)

// Service implements the API dependencies for the footprint calculator.
// Every estimate is a synchronous compute-then-append step: estimate,
// classify, record into the caller's session ledger, respond.
type Service struct {
	mu sync.RWMutex

	sessions *repository.SessionStore

	// Configuration
	sessionTTL      time.Duration
	sweepInterval   time.Duration
	maxSessions     int
	maxHistoryLimit int

	// State
	started bool

	// Logging
	logger logger.Logger

	// now is the record clock; replaced in tests.
	now func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSessionTTL sets how long an idle session survives.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithSweepInterval sets how often idle sessions are swept.
func WithSweepInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.sweepInterval = interval
		}
	}
}

// WithMaxSessions caps the number of concurrently tracked sessions.
func WithMaxSessions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithMaxHistoryLimit caps the number of records returned by History.
func WithMaxHistoryLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxHistoryLimit = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the record clock. Used by tests for deterministic
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		sessionTTL:      defaultSessionTTL,
		sweepInterval:   defaultSweepInterval,
		maxSessions:     defaultMaxSessions,
		maxHistoryLimit: defaultMaxHistoryLimit,
		now:             time.Now,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.sessions = repository.NewSessionStore(ctx,
		repository.WithSessionTTL(s.sessionTTL),
		repository.WithSweepInterval(s.sweepInterval),
		repository.WithMaxSessions(s.maxSessions),
	)

	s.started = true
	s.logger.Info(ctx, "footprint service started",
		logger.String("sessionTTL", s.sessionTTL.String()),
		logger.Int("maxSessions", s.maxSessions),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	if s.sessions != nil {
		_ = s.sessions.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "footprint service stopped")
}

// NewSession mints a session id and eagerly creates its ledger.
func (s *Service) NewSession(ctx context.Context) string {
	id := uuid.New().String()
	if _, err := s.sessions.Ledger(ctx, id); err != nil {
		s.logger.Warn(ctx, "session creation raced shutdown", logger.Error(err))
	}
	return id
}

// EstimateHousehold computes, classifies, and records a household estimate.
func (s *Service) EstimateHousehold(ctx context.Context, sessionID string, in estimator.HouseholdInput) (types.Assessment, error) {
	value, err := estimator.Household(in)
	if err != nil {
		metrics.RecordInvalidInput(string(model.CategoryHousehold))
		return types.Assessment{}, fmt.Errorf("household estimate: %w", err)
	}
	return s.commit(ctx, sessionID, model.CategoryHousehold, value)
}

// EstimateTransport computes, classifies, and records a transport estimate.
func (s *Service) EstimateTransport(ctx context.Context, sessionID string, in estimator.TransportInput) (types.Assessment, error) {
	value, err := estimator.Transport(in)
	if err != nil {
		metrics.RecordInvalidInput(string(model.CategoryTransport))
		return types.Assessment{}, fmt.Errorf("transport estimate: %w", err)
	}
	return s.commit(ctx, sessionID, model.CategoryTransport, value)
}

// EstimateCar computes, classifies, and records a car estimate.
func (s *Service) EstimateCar(ctx context.Context, sessionID string, in estimator.CarInput) (types.Assessment, error) {
	value, err := estimator.Car(in)
	if err != nil {
		metrics.RecordInvalidInput(string(model.CategoryCar))
		return types.Assessment{}, fmt.Errorf("car estimate: %w", err)
	}
	return s.commit(ctx, sessionID, model.CategoryCar, value)
}

// EstimateFood computes, classifies, and records a food estimate.
func (s *Service) EstimateFood(ctx context.Context, sessionID string, in estimator.FoodInput) (types.Assessment, error) {
	value, err := estimator.Food(in)
	if err != nil {
		metrics.RecordInvalidInput(string(model.CategoryFood))
		return types.Assessment{}, fmt.Errorf("food estimate: %w", err)
	}
	return s.commit(ctx, sessionID, model.CategoryFood, value)
}

// commit appends the computed value to the session ledger and returns the
// stored record with its impact classification. The value arriving here is
// already rounded; the classification sees exactly what the ledger stores.
func (s *Service) commit(ctx context.Context, sessionID string, cat model.Category, value float64) (types.Assessment, error) {
	led, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return types.Assessment{}, fmt.Errorf("session %s: %w", sessionID, err)
	}

	rec := led.Append(ctx, model.NewRecord(cat, value, s.now()))
	band, level := impact.Assess(cat, rec.Value)

	metrics.RecordEstimate(string(cat), rec.Value)
	metrics.RecordImpactBand(string(cat), string(band))

	s.logger.Debug(ctx, "estimate recorded",
		logger.String("category", string(cat)),
		logger.Float64("tons", rec.Value),
		logger.String("impact", string(band)),
	)

	return types.Assessment{
		Category:  string(cat),
		Value:     rec.Value,
		Unit:      valueUnit,
		Impact:    string(band),
		Level:     level,
		Timestamp: rec.Timestamp,
	}, nil
}

// History returns the session's records in append order, capped at the
// configured history limit (most recent records win when capped).
func (s *Service) History(ctx context.Context, sessionID string) ([]types.Record, error) {
	led, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}

	records := led.All(ctx)
	if len(records) > s.maxHistoryLimit {
		records = records[len(records)-s.maxHistoryLimit:]
	}

	out := make([]types.Record, len(records))
	for i, rec := range records {
		out[i] = types.Record{
			Category:  string(rec.Category),
			Value:     rec.Value,
			Timestamp: rec.Timestamp,
		}
	}
	return out, nil
}

// Summary returns the most recent record per category, in display order,
// plus their combined total.
func (s *Service) Summary(ctx context.Context, sessionID string) (types.Summary, error) {
	led, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return types.Summary{}, fmt.Errorf("session %s: %w", sessionID, err)
	}

	latest := led.LatestPerCategory(ctx)
	sum := types.Summary{Latest: make([]types.Record, 0, len(latest))}
	for _, cat := range model.Categories() {
		rec, ok := latest[cat]
		if !ok {
			continue
		}
		sum.Latest = append(sum.Latest, types.Record{
			Category:  string(rec.Category),
			Value:     rec.Value,
			Timestamp: rec.Timestamp,
		})
		sum.Total += rec.Value
	}
	sum.Total = model.Round2(sum.Total)
	return sum, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"sessionTTL":      s.sessionTTL.String(),
		"maxSessions":     s.maxSessions,
		"maxHistoryLimit": s.maxHistoryLimit,
	}

	if s.started {
		ctx := context.Background()
		sessionCount := s.sessions.Count(ctx)
		recordCount := s.sessions.Records(ctx)

		stats["sessionCount"] = sessionCount
		stats["recordCount"] = recordCount

		metrics.UpdateActiveSessions(sessionCount)
		metrics.UpdateLedgerRecords(recordCount)
	}

	return stats
}
