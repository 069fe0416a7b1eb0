// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the cipher HTTP API.
//
// [ServerAdapter] decouples the terminal client from the transport. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on
// resty.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError, with the plain-text response body appended, so callers can
// use [errors.Is] and still recover the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cipher-lab/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with a remote cipher server.
type ServerAdapter interface {
	// Transform runs req on the server. The server records the run in its
	// history.
	Transform(ctx context.Context, req models.TransformRequest) (models.TransformResult, error)

	// Strength asks the server to score req.Text.
	Strength(ctx context.Context, req models.StrengthRequest) (int, error)

	// Methods fetches the method catalog in menu order.
	Methods(ctx context.Context) ([]models.MethodInfo, error)

	// History fetches the server's rolling history, newest first.
	History(ctx context.Context) ([]models.HistoryEntry, error)

	// ClearHistory empties the server's history.
	ClearHistory(ctx context.Context) error

	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)
}
