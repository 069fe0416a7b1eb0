// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-cipher-lab/internal/adapter"
	"github.com/MKhiriev/go-cipher-lab/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgUnknownMethod:
			return ErrUnknownMethod
		case app.MsgInvalidMode:
			return ErrInvalidMode
		case app.MsgInputTooLarge:
			return ErrInputTooLarge
		case app.MsgVersionIsNotSpecified:
			return ErrVersionIsNotSpecified
		default:
			return ErrInvalidDataProvided
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
