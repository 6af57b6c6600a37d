// Package types contains common types used across the application
package types

import "time"

// Record mirrors one ledger entry as returned by history queries.
type Record struct {
	Category  string    `json:"category"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// Assessment is the result of one estimate: the stored record plus its
// qualitative impact classification.
type Assessment struct {
	Category  string    `json:"category"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Impact    string    `json:"impact"`
	Level     int       `json:"level"`
	Timestamp time.Time `json:"timestamp"`
}

// Summary holds the latest record per category plus their combined total.
type Summary struct {
	Latest []Record `json:"latest"`
	Total  float64  `json:"total"`
}
