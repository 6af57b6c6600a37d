// Package repository provides the in-memory stores backing the calculator:
// the per-session emission ledger and the session registry that owns them.
package repository

import (
	"context"
	"sync"

	"github.com/okian/footprint/internal/domain/model"
)

// Ledger is an ordered, append-only sequence of emission records scoped to
// one user session. Insertion order is chronological order; there is no
// deletion or mutation operation. A ledger is created empty at session start
// and discarded with the session.
type Ledger struct {
	mu      sync.RWMutex
	records []model.Record
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds a record to the history and returns the record as stored.
// Appends always succeed; duplicates, including identical timestamps, are
// permitted. If the wall clock stepped backwards since the previous append,
// the timestamp is clamped so the sequence stays monotonically
// non-decreasing.
func (l *Ledger) Append(_ context.Context, rec model.Record) model.Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n := len(l.records); n > 0 && rec.Timestamp.Before(l.records[n-1].Timestamp) {
		rec.Timestamp = l.records[n-1].Timestamp
	}
	l.records = append(l.records, rec)
	return rec
}

// All returns the full history in append order. The slice is a copy and is
// safe for the caller to retain.
func (l *Ledger) All(_ context.Context) []model.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Record, len(l.records))
	copy(out, l.records)
	return out
}

// LatestPerCategory returns, for each category present in the history, the
// most recently appended record of that category. Selection is by insertion
// order, not by timestamp, though the two normally coincide. Categories
// never observed are absent from the result.
func (l *Ledger) LatestPerCategory(_ context.Context) map[model.Category]model.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[model.Category]model.Record)
	for _, rec := range l.records {
		out[rec.Category] = rec
	}
	return out
}

// Len returns the number of records in the history.
func (l *Ledger) Len(_ context.Context) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
