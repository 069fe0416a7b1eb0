// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/mock"
	"github.com/MKhiriev/go-cipher-lab/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// recordingWorker appends start/stop events to a shared log.
type recordingWorker struct {
	id     string
	events *[]string
}

func (r *recordingWorker) Start(context.Context) {
	*r.events = append(*r.events, "start "+r.id)
}

func (r *recordingWorker) Stop() {
	*r.events = append(*r.events, "stop "+r.id)
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var events []string
	ws := &Workers{workers: []Worker{
		&recordingWorker{id: "a", events: &events},
		&recordingWorker{id: "b", events: &events},
	}}

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
	assert.Zero(t, ws.Len())
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := &service.Services{HistoryRetention: mock.NewMockHistoryRetentionService(ctrl)}
	remote := &service.Services{}

	tests := []struct {
		name     string
		services *service.Services
		cfg      config.Workers
		want     int
	}{
		{name: "ttl set with local history", services: local, cfg: config.Workers{HistoryTTL: time.Hour}, want: 1},
		{name: "ttl disabled", services: local, cfg: config.Workers{}, want: 0},
		{name: "remote history", services: remote, cfg: config.Workers{HistoryTTL: time.Hour}, want: 0},
		{name: "nil services", services: nil, cfg: config.Workers{HistoryTTL: time.Hour}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := NewWorkers(tt.services, tt.cfg, logger.Nop())
			assert.Equal(t, tt.want, ws.Len())
		})
	}
}
