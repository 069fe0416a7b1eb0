package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/store"
	"github.com/MKhiriev/go-cipher-lab/models"
)

type historyService struct {
	history store.HistoryStorage
	now     func() time.Time

	logger *logger.Logger
}

// LocalHistoryService is a history kept in this process, which can also be
// pruned by age.
type LocalHistoryService interface {
	HistoryService
	HistoryRetentionService
}

func NewHistoryService(history store.HistoryStorage, logger *logger.Logger) LocalHistoryService {
	return &historyService{
		history: history,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *historyService) List(ctx context.Context) ([]models.HistoryEntry, error) {
	return s.history.List(ctx)
}

func (s *historyService) Clear(ctx context.Context) error {
	return s.history.Clear(ctx)
}

// EvictExpired is a no-op for a non-positive maxAge.
func (s *historyService) EvictExpired(ctx context.Context, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, nil
	}

	return s.history.EvictOlderThan(ctx, s.now().Add(-maxAge))
}
