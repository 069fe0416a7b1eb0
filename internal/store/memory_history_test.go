package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func entry(n int) models.HistoryEntry {
	return models.HistoryEntry{
		ID:        fmt.Sprintf("id-%d", n),
		Method:    models.Caesar,
		Input:     fmt.Sprintf("input %d", n),
		Mode:      models.Encrypt,
		Timestamp: baseTime.Add(time.Duration(n) * time.Minute),
	}
}

func ids(entries []models.HistoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestMemoryHistory_NewestFirst(t *testing.T) {
	ctx := context.Background()
	h := NewMemoryHistory(10, logger.Nop())

	for i := 1; i <= 3; i++ {
		require.NoError(t, h.Append(ctx, entry(i)))
	}

	got, err := h.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-3", "id-2", "id-1"}, ids(got))
}

func TestMemoryHistory_CapEvictsOldest(t *testing.T) {
	ctx := context.Background()
	h := NewMemoryHistory(10, logger.Nop())

	for i := 1; i <= 11; i++ {
		require.NoError(t, h.Append(ctx, entry(i)))
	}

	got, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 10)
	assert.Equal(t, "id-11", got[0].ID)
	assert.Equal(t, "id-2", got[9].ID)
	assert.NotContains(t, ids(got), "id-1")
}

func TestMemoryHistory_Unbounded(t *testing.T) {
	for _, limit := range []int{0, -1} {
		t.Run(fmt.Sprintf("limit %d", limit), func(t *testing.T) {
			ctx := context.Background()
			h := NewMemoryHistory(limit, logger.Nop())
			for i := 1; i <= 25; i++ {
				require.NoError(t, h.Append(ctx, entry(i)))
			}
			got, err := h.List(ctx)
			require.NoError(t, err)
			assert.Len(t, got, 25)
		})
	}
}

func TestMemoryHistory_LimitOne(t *testing.T) {
	ctx := context.Background()
	h := NewMemoryHistory(1, logger.Nop())
	require.NoError(t, h.Append(ctx, entry(1)))
	require.NoError(t, h.Append(ctx, entry(2)))

	got, err := h.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-2"}, ids(got))
}

func TestMemoryHistory_AppendRejectsEmptyID(t *testing.T) {
	h := NewMemoryHistory(10, logger.Nop())
	err := h.Append(context.Background(), models.HistoryEntry{})
	assert.ErrorIs(t, err, ErrEmptyHistoryEntryID)
}

func TestMemoryHistory_ListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	h := NewMemoryHistory(10, logger.Nop())
	require.NoError(t, h.Append(ctx, entry(1)))

	got, err := h.List(ctx)
	require.NoError(t, err)
	got[0].Output = "mutated"

	again, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, again[0].Output)
}

func TestMemoryHistory_Clear(t *testing.T) {
	ctx := context.Background()
	h := NewMemoryHistory(10, logger.Nop())
	require.NoError(t, h.Append(ctx, entry(1)))
	require.NoError(t, h.Append(ctx, entry(2)))

	require.NoError(t, h.Clear(ctx))

	got, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryHistory_EvictOlderThan(t *testing.T) {
	ctx := context.Background()
	h := NewMemoryHistory(10, logger.Nop())
	for i := 1; i <= 5; i++ {
		require.NoError(t, h.Append(ctx, entry(i)))
	}

	// entries 1 and 2 are strictly before the cutoff
	removed, err := h.EvictOlderThan(ctx, baseTime.Add(3*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	got, err := h.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-5", "id-4", "id-3"}, ids(got))

	removed, err = h.EvictOlderThan(ctx, baseTime)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestMemoryHistory_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	h := NewMemoryHistory(10, logger.Nop())

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, h.Append(ctx, entry(n)))
			_, err := h.List(ctx)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := h.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 10)
}

func TestNewStorages(t *testing.T) {
	s := NewStorages(config.App{HistoryLimit: 3}, logger.Nop())
	require.NotNil(t, s.HistoryStorage)
}
