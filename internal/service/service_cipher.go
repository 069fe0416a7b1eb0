// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cipher-lab/internal/cipher"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/store"
	"github.com/MKhiriev/go-cipher-lab/models"
)

// cipherService runs transforms in-process and records every run in the
// history storage.
type cipherService struct {
	history store.HistoryStorage
	ids     IDGenerator
	now     func() time.Time

	logger *logger.Logger
}

func NewCipherService(history store.HistoryStorage, ids IDGenerator, logger *logger.Logger) CipherService {
	return &cipherService{
		history: history,
		ids:     ids,
		now:     time.Now,
		logger:  logger,
	}
}

// Transform rejects methods outside the catalog with [ErrUnknownMethod]. An
// empty mode is treated as encrypt. Decode failures are not errors: they come
// back as an "ERROR: ..." output and are recorded like any other run.
func (s *cipherService) Transform(ctx context.Context, req models.TransformRequest) (models.TransformResult, error) {
	log := logger.FromContext(ctx)

	info, ok := cipher.Lookup(req.Method)
	if !ok {
		return models.TransformResult{}, fmt.Errorf("%w: %q", ErrUnknownMethod, req.Method)
	}
	if req.Mode == "" {
		req.Mode = models.Encrypt
	}

	result := cipher.Run(req)

	entry := models.HistoryEntry{
		ID:         s.ids.Generate(),
		MethodName: info.Name,
		Method:     req.Method,
		Input:      req.Input,
		Output:     result.Output,
		Mode:       req.Mode,
		Key:        req.Key,
		Timestamp:  s.now(),
	}
	if err := s.history.Append(ctx, entry); err != nil {
		log.Err(err).Str("func", "*cipherService.Transform").Msg("error appending history entry")
		return models.TransformResult{}, fmt.Errorf("%w: %w", ErrRecordingHistory, err)
	}

	log.Debug().
		Str("method", string(req.Method)).
		Str("mode", string(req.Mode)).
		Int("strength", result.Strength).
		Msg("transform completed")

	return result, nil
}

func (s *cipherService) Strength(_ context.Context, req models.StrengthRequest) (int, error) {
	return cipher.Strength(req.Text, req.Method), nil
}

func (s *cipherService) Methods(_ context.Context) ([]models.MethodInfo, error) {
	return cipher.Methods(), nil
}
