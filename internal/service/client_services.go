package service

import (
	"context"

	"github.com/MKhiriev/go-cipher-lab/internal/adapter"
	"github.com/MKhiriev/go-cipher-lab/models"
)

// NewRemoteServices builds [Services] that forward every call to a cipher
// server through serverAdapter. History retention is the server's concern,
// so HistoryRetention is left nil.
func NewRemoteServices(serverAdapter adapter.ServerAdapter) *Services {
	remote := &remoteService{adapter: serverAdapter}
	return &Services{
		CipherService:  remote,
		HistoryService: remote,
		AppInfoService: remote,
	}
}

type remoteService struct {
	adapter adapter.ServerAdapter
}

func (r *remoteService) Transform(ctx context.Context, req models.TransformRequest) (models.TransformResult, error) {
	result, err := r.adapter.Transform(ctx, req)
	return result, mapAdapterError(err)
}

func (r *remoteService) Strength(ctx context.Context, req models.StrengthRequest) (int, error) {
	strength, err := r.adapter.Strength(ctx, req)
	return strength, mapAdapterError(err)
}

func (r *remoteService) Methods(ctx context.Context) ([]models.MethodInfo, error) {
	methods, err := r.adapter.Methods(ctx)
	return methods, mapAdapterError(err)
}

func (r *remoteService) List(ctx context.Context) ([]models.HistoryEntry, error) {
	entries, err := r.adapter.History(ctx)
	return entries, mapAdapterError(err)
}

func (r *remoteService) Clear(ctx context.Context) error {
	return mapAdapterError(r.adapter.ClearHistory(ctx))
}

func (r *remoteService) GetAppVersion(ctx context.Context) (string, error) {
	version, err := r.adapter.Version(ctx)
	return version, mapAdapterError(err)
}
