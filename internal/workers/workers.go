package workers

import (
	"context"

	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background jobs the configuration asks for. History
// retention runs only with a positive TTL and a local history.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}
	if cfg.HistoryTTL > 0 && services != nil && services.HistoryRetention != nil {
		ws.workers = append(ws.workers,
			NewRetentionWorker(services.HistoryRetention, cfg.HistoryTTL, cfg.RetentionInterval, logger))
	}
	return ws
}

func (w *Workers) Len() int {
	return len(w.workers)
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
