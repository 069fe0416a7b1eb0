// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the HTTP
// handlers and by the remote client.
//
// All Msg* constants are written into HTTP response bodies. The remote
// client matches them to turn a response back into the service error that
// produced it, so the wording must stay identical on both sides.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a request fails validation for
	// a reason without a more specific message.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnknownMethod is returned when the method identifier is not one of
	// the catalog methods.
	MsgUnknownMethod = "unknown cipher method"

	// MsgInvalidMode is returned when the mode is neither encrypt nor decrypt.
	MsgInvalidMode = "invalid mode"

	// MsgInputTooLarge is returned when input or key exceed the size limit.
	MsgInputTooLarge = "input is too large"

	// MsgVersionIsNotSpecified is returned when the server was started
	// without a version.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
