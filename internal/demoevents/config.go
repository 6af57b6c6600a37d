// Package demoevents generates plausible calculator submissions and posts
// them to a running service, so history and composition charts have
// something to show during demos.
package demoevents

import "time"

// Config holds configuration for a demo run.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumEntries  int           // Number of submissions to generate
	Seed        int64         // Random seed; 0 picks one from the clock
	Timeout     time.Duration // HTTP request timeout
	PauseMillis int           // Pause between submissions in milliseconds
}

// Stats holds demo run statistics.
type Stats struct {
	Generated  int
	Submitted  int
	Successful int
	Failed     int
	ByCategory map[string]int
	StartTime  time.Time
	Duration   time.Duration
}
