package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-cipher-lab/internal/adapter"
	"github.com/MKhiriev/go-cipher-lab/internal/app"
	"github.com/MKhiriev/go-cipher-lab/internal/mock"
	"github.com/MKhiriev/go-cipher-lab/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRemoteServices(t *testing.T) (*Services, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewRemoteServices(mockAdapter), mockAdapter
}

func TestRemoteServices_NoRetention(t *testing.T) {
	svcs, _ := newTestRemoteServices(t)
	assert.Nil(t, svcs.HistoryRetention)
}

func TestRemoteServices_Transform(t *testing.T) {
	svcs, mockAdapter := newTestRemoteServices(t)
	ctx := context.Background()
	req := models.TransformRequest{Method: models.RailFence, Input: "WEAREDISCOVERED", Key: "3"}

	mockAdapter.EXPECT().Transform(ctx, req).Return(models.TransformResult{Output: "WECRLTEERDSOEEFEAOCAIVDEN", Strength: 80}, nil)

	got, err := svcs.CipherService.Transform(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 80, got.Strength)
}

func TestRemoteServices_TransformMapsErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "unknown method", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgUnknownMethod), wantErr: ErrUnknownMethod},
		{name: "invalid mode", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidMode), wantErr: ErrInvalidMode},
		{name: "too large", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInputTooLarge), wantErr: ErrInputTooLarge},
		{name: "other bad request", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidJSON), wantErr: ErrInvalidDataProvided},
		{name: "server error passes through", err: fmt.Errorf("%w: boom", adapter.ErrInternalServerError), wantErr: adapter.ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs, mockAdapter := newTestRemoteServices(t)
			mockAdapter.EXPECT().Transform(gomock.Any(), gomock.Any()).Return(models.TransformResult{}, tt.err)

			_, err := svcs.CipherService.Transform(context.Background(), models.TransformRequest{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRemoteServices_Delegation(t *testing.T) {
	svcs, mockAdapter := newTestRemoteServices(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Strength(ctx, models.StrengthRequest{Text: "x"}).Return(10, nil)
	mockAdapter.EXPECT().Methods(ctx).Return([]models.MethodInfo{{ID: models.XOR}}, nil)
	mockAdapter.EXPECT().History(ctx).Return([]models.HistoryEntry{{ID: "h"}}, nil)
	mockAdapter.EXPECT().ClearHistory(ctx).Return(nil)
	mockAdapter.EXPECT().Version(ctx).Return("9.9.9", nil)

	strength, err := svcs.CipherService.Strength(ctx, models.StrengthRequest{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, 10, strength)

	methods, err := svcs.CipherService.Methods(ctx)
	require.NoError(t, err)
	assert.Len(t, methods, 1)

	entries, err := svcs.HistoryService.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "h", entries[0].ID)

	require.NoError(t, svcs.HistoryService.Clear(ctx))

	version, err := svcs.AppInfoService.GetAppVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", version)
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "invalid mode", extractBody(fmt.Errorf("bad request: invalid mode")))
	assert.Equal(t, "plain", extractBody(fmt.Errorf("plain")))
}

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
}
