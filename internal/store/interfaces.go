package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cipher-lab/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HistoryStorage keeps the rolling window of completed transforms.
type HistoryStorage interface {
	// Append records entry as the newest item, evicting the oldest entries
	// beyond the configured limit.
	Append(ctx context.Context, entry models.HistoryEntry) error
	// List returns a snapshot of all entries, newest first.
	List(ctx context.Context) ([]models.HistoryEntry, error)
	// Clear removes every entry.
	Clear(ctx context.Context) error
	// EvictOlderThan removes entries with a timestamp before cutoff and
	// reports how many were removed.
	EvictOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
