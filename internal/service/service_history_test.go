package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/mock"
	"github.com/MKhiriev/go-cipher-lab/internal/store"
	"github.com/MKhiriev/go-cipher-lab/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryService_ListAndClear(t *testing.T) {
	ctx := context.Background()
	history := store.NewMemoryHistory(10, logger.Nop())
	require.NoError(t, history.Append(ctx, models.HistoryEntry{ID: "1"}))
	require.NoError(t, history.Append(ctx, models.HistoryEntry{ID: "2"}))

	svc := NewHistoryService(history, logger.Nop())

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)

	require.NoError(t, svc.Clear(ctx))
	got, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistoryService_EvictExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryStorage(ctrl)
	svc := NewHistoryService(history, logger.Nop()).(*historyService)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	history.EXPECT().EvictOlderThan(ctx, fixedNow.Add(-time.Hour)).Return(3, nil)

	removed, err := svc.EvictExpired(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
}

func TestHistoryService_EvictExpired_DisabledTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryStorage(ctrl)
	svc := NewHistoryService(history, logger.Nop())

	removed, err := svc.EvictExpired(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestNewServices(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0", HistoryLimit: 2}}
	storages := store.NewStorages(cfg.App, logger.Nop())

	svcs, err := NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, svcs.CipherService)
	require.NotNil(t, svcs.HistoryService)
	require.NotNil(t, svcs.HistoryRetention)

	ctx := context.Background()
	for _, in := range []string{"a", "b", "c"} {
		_, err := svcs.CipherService.Transform(ctx, models.TransformRequest{Method: models.Hex, Input: in})
		require.NoError(t, err)
	}
	entries, err := svcs.HistoryService.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].Input)

	_, err = svcs.CipherService.Transform(ctx, models.TransformRequest{Method: "nope"})
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestNewServices_NoVersion(t *testing.T) {
	storages := store.NewStorages(config.App{}, logger.Nop())

	svcs, err := NewServices(storages, config.StructuredConfig{}, logger.Nop())
	assert.Nil(t, svcs)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
