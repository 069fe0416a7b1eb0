package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cipher-lab/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CipherService runs transforms and scores text.
type CipherService interface {
	// Transform runs req, records it in the history and returns the output
	// together with its strength.
	Transform(ctx context.Context, req models.TransformRequest) (models.TransformResult, error)

	// Strength scores req.Text as if produced by req.Method.
	Strength(ctx context.Context, req models.StrengthRequest) (int, error)

	// Methods returns the method catalog in menu order.
	Methods(ctx context.Context) ([]models.MethodInfo, error)
}

// HistoryService exposes the rolling transform history.
type HistoryService interface {
	// List returns the recorded runs, newest first.
	List(ctx context.Context) ([]models.HistoryEntry, error)

	// Clear forgets every recorded run.
	Clear(ctx context.Context) error
}

// HistoryRetentionService evicts history entries past their lifetime. It is
// only available where the history lives in this process.
type HistoryRetentionService interface {
	// EvictExpired removes entries older than maxAge and reports how many
	// were removed.
	EvictExpired(ctx context.Context, maxAge time.Duration) (int, error)
}

// AppInfoService reports build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) (string, error)
}

// IDGenerator issues unique history entry identifiers.
type IDGenerator interface {
	Generate() string
}
