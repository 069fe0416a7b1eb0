package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	events *[]string
	err    error
}

func (s *stubUI) Run(context.Context) error {
	*s.events = append(*s.events, "ui")
	return s.err
}

type stubJobs struct {
	events *[]string
}

func (s *stubJobs) Start(context.Context) { *s.events = append(*s.events, "start") }
func (s *stubJobs) Stop()                 { *s.events = append(*s.events, "stop") }

func TestApp_Run_Order(t *testing.T) {
	var events []string
	app, err := NewApp(&stubUI{events: &events}, &stubJobs{events: &events}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{"start", "ui", "stop"}, events)
}

func TestApp_Run_UIError(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	app, err := NewApp(&stubUI{events: &events, err: boom}, &stubJobs{events: &events}, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"start", "ui", "stop"}, events)
}

func TestApp_Run_WithoutJobs(t *testing.T) {
	var events []string
	app, err := NewApp(&stubUI{events: &events}, nil, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{"ui"}, events)
}

func TestNewApp_RequiresUI(t *testing.T) {
	_, err := NewApp(nil, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoUI)
}

func TestNewBackend_Local(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0", HistoryLimit: 2}}

	services, err := NewBackend(cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, services.HistoryRetention)

	ctx := context.Background()
	res, err := services.CipherService.Transform(ctx, models.TransformRequest{
		Method: models.Caesar, Mode: models.Encrypt, Input: "abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "def", res.Output)

	entries, err := services.HistoryService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNewBackend_Remote(t *testing.T) {
	cfg := config.StructuredConfig{
		App:     config.App{Version: "1.0.0"},
		Adapter: config.Adapter{HTTPAddress: "localhost:8080"},
	}

	services, err := NewBackend(cfg, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, services.HistoryRetention)
	assert.NotNil(t, services.CipherService)
}
