package service

import (
	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/store"
	"github.com/MKhiriev/go-cipher-lab/internal/utils"
)

// Services groups the services consumed by handlers and the terminal
// client. HistoryRetention is nil when the history lives on a remote server.
type Services struct {
	CipherService    CipherService
	HistoryService   HistoryService
	HistoryRetention HistoryRetentionService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	cipherService := NewCipherValidationService().
		Wrap(NewCipherService(storages.HistoryStorage, utils.NewUUIDGenerator(), logger))
	historyService := NewHistoryService(storages.HistoryStorage, logger)

	return &Services{
		CipherService:    cipherService,
		HistoryService:   historyService,
		HistoryRetention: historyService,
		AppInfoService:   appInfo,
	}, nil
}
