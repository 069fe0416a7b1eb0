package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/service"
)

type retentionWorker struct {
	retention service.HistoryRetentionService
	ttl       time.Duration
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRetentionWorker returns a Worker that evicts history entries older than
// ttl every interval. A non-positive interval falls back to one minute.
func NewRetentionWorker(retention service.HistoryRetentionService, ttl, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &retentionWorker{
		retention: retention,
		ttl:       ttl,
		interval:  interval,
		logger:    logger,
	}
}

func (w *retentionWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().
		Dur("ttl", w.ttl).
		Dur("interval", w.interval).
		Msg("history retention worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.evict(jobCtx)
			}
		}
	}()
}

func (w *retentionWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *retentionWorker) evict(ctx context.Context) {
	removed, err := w.retention.EvictExpired(ctx, w.ttl)
	if err != nil {
		w.logger.Err(err).Msg("history retention failed")
		return
	}
	if removed > 0 {
		w.logger.Debug().Int("removed", removed).Msg("expired history entries evicted")
	}
}
