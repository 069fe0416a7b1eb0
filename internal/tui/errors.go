// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-cipher-lab/internal/adapter"
	"github.com/MKhiriev/go-cipher-lab/internal/service"
)

// humanizeError turns service and transport errors into a message fit for
// the error overlay.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrUnknownMethod):
		return "The selected method is not supported"
	case errors.Is(err, service.ErrInvalidMode):
		return "Mode must be encrypt or decrypt"
	case errors.Is(err, service.ErrInputTooLarge):
		return "Input is too large"
	case errors.Is(err, adapter.ErrServerUnavailable):
		return "Cipher server is unavailable"
	}
	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the cipher server is unavailable"
	}

	return err.Error()
}
