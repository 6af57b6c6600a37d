package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/footprint/internal/demoevents"
	"github.com/okian/footprint/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumEntries = 40
	defaultTimeout    = 10 * time.Second
	defaultRunTimeout = 5 * time.Minute
	defaultPauseMS    = 100
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8080", "Base URL of the service")
		numEntries = flag.Int("entries", defaultNumEntries, "Number of submissions to generate")
		seed       = flag.Int64("seed", 0, "Random seed (0 = derive from clock)")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		pauseMS    = flag.Int("pause", defaultPauseMS, "Pause between submissions in milliseconds")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &demoevents.Config{
		BaseURL:     *baseURL,
		NumEntries:  *numEntries,
		Seed:        *seed,
		Timeout:     *timeout,
		PauseMillis: *pauseMS,
	}

	if _, err := demoevents.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("demo run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
