package demoevents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/okian/footprint/pkg/logger"
)

// Run generates and submits demo entries against the configured service.
// All submissions share one cookie jar, so they land in a single session
// and show up together in that session's charts.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	log := logger.Get()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // demo data, not crypto

	subs := generate(rng, cfg.NumEntries)
	stats := &Stats{
		Generated:  len(subs),
		ByCategory: make(map[string]int),
		StartTime:  time.Now(),
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	client := &http.Client{Timeout: cfg.Timeout, Jar: jar}

	log.Info(ctx, "submitting demo entries",
		logger.String("url", cfg.BaseURL),
		logger.Int("entries", len(subs)),
	)

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			stats.Duration = time.Since(stats.StartTime)
			return stats, fmt.Errorf("demo run cancelled: %w", ctx.Err())
		default:
		}

		stats.Submitted++
		if err := post(ctx, client, cfg.BaseURL+"/api/estimate/"+sub.Category, sub.Body); err != nil {
			stats.Failed++
			log.Warn(ctx, "submission failed",
				logger.String("category", sub.Category),
				logger.Error(err),
			)
			continue
		}
		stats.Successful++
		stats.ByCategory[sub.Category]++

		if cfg.PauseMillis > 0 {
			time.Sleep(time.Duration(cfg.PauseMillis) * time.Millisecond)
		}
	}

	stats.Duration = time.Since(stats.StartTime)
	log.Info(ctx, "demo run finished",
		logger.Int("successful", stats.Successful),
		logger.Int("failed", stats.Failed),
		logger.String("duration", stats.Duration.String()),
	)
	return stats, nil
}

// post submits one JSON body and checks for a 2xx response.
func post(ctx context.Context, client *http.Client, url string, body map[string]any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
