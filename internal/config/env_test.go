// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":       "1.2.3",
		"APP_HISTORY_LIMIT": "25",
		"APP_LOG_FILE":      "/tmp/cipher.log",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_ADDRESS":         "http://cipher.local:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"WORKERS_HISTORY_TTL":        "1h",
		"WORKERS_RETENTION_INTERVAL": "2m",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, 25, cfg.App.HistoryLimit)
	assert.Equal(t, "/tmp/cipher.log", cfg.App.LogFile)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://cipher.local:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, time.Hour, cfg.Workers.HistoryTTL)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RetentionInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS": "0.0.0.0:9000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.App.HistoryLimit)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
}

func TestParseEnv_NegativeHistoryLimit(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_HISTORY_LIMIT": "-1"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, -1, cfg.App.HistoryLimit)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad duration", key: "SERVER_REQUEST_TIMEOUT", val: "soon"},
		{name: "bad int", key: "APP_HISTORY_LIMIT", val: "ten"},
		{name: "bad ttl", key: "WORKERS_HISTORY_TTL", val: "1 hour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}
