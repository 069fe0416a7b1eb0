// Package tui implements the interactive "Encryption Tool" terminal screen.
//
// The screen talks to a [service.Services] value, which is either backed by
// the in-process cipher core or by a remote cipher server.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/service"
	"github.com/MKhiriev/go-cipher-lab/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("tui: services are not configured")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.CipherService == nil || services.HistoryService == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the tool until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Msg("starting encryption tool")

	model := newAppModel(ctx, t.services, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
