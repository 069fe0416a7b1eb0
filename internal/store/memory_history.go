// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/models"
)

// memoryHistory is the in-process implementation of [HistoryStorage].
// Entries are kept newest first. A positive limit caps the window; zero or a
// negative limit keeps every entry.
type memoryHistory struct {
	mu      sync.RWMutex
	entries []models.HistoryEntry
	limit   int

	logger *logger.Logger
}

// NewMemoryHistory constructs an empty [HistoryStorage] holding at most limit
// entries.
func NewMemoryHistory(limit int, logger *logger.Logger) HistoryStorage {
	logger.Debug().Int("limit", limit).Msg("creating in-memory history storage")
	return &memoryHistory{
		limit:  limit,
		logger: logger,
	}
}

func (m *memoryHistory) Append(ctx context.Context, entry models.HistoryEntry) error {
	if entry.ID == "" {
		return ErrEmptyHistoryEntryID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	size := len(m.entries) + 1
	if m.limit > 0 && size > m.limit {
		size = m.limit
	}

	next := make([]models.HistoryEntry, 0, size)
	next = append(next, entry)
	next = append(next, m.entries[:size-1]...)
	m.entries = next

	logger.FromContext(ctx).Debug().
		Str("func", "*memoryHistory.Append").
		Str("entry_id", entry.ID).
		Int("size", len(m.entries)).
		Msg("history entry appended")

	return nil
}

func (m *memoryHistory) List(_ context.Context) ([]models.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.HistoryEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memoryHistory) Clear(ctx context.Context) error {
	m.mu.Lock()
	removed := len(m.entries)
	m.entries = nil
	m.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("func", "*memoryHistory.Clear").
		Int("removed", removed).
		Msg("history cleared")

	return nil
}

func (m *memoryHistory) EvictOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.entries[:0:0]
	for _, e := range m.entries {
		if !e.Timestamp.Before(cutoff) {
			kept = append(kept, e)
		}
	}

	removed := len(m.entries) - len(kept)
	if removed > 0 {
		m.entries = kept
		logger.FromContext(ctx).Debug().
			Str("func", "*memoryHistory.EvictOlderThan").
			Time("cutoff", cutoff).
			Int("removed", removed).
			Msg("expired history entries evicted")
	}

	return removed, nil
}
