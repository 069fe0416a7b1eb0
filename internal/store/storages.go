package store

import (
	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
)

type Storages struct {
	HistoryStorage HistoryStorage
}

func NewStorages(cfg config.App, logger *logger.Logger) *Storages {
	return &Storages{
		HistoryStorage: NewMemoryHistory(cfg.HistoryLimit, logger),
	}
}
