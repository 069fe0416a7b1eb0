// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged and defaulted [StructuredConfig] can be
// used at startup. The listen address is checked by [ServerConfig] only,
// since the terminal client does not need one.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidTimeoutConfigs)
	}
	if cfg.Workers.HistoryTTL < 0 || cfg.Workers.RetentionInterval < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidWorkerConfigs)
	}
	return nil
}

// ServerConfig loads the configuration and additionally requires an HTTP
// listen address.
func ServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Server.HTTPAddress == "" {
		return nil, ErrInvalidServerConfigs
	}
	return cfg, nil
}
