// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming requests before they reach the cipher
// services.
//
// A [Validator] accepts any value plus an optional list of field names that
// restricts which rules run. Implementations return sentinel errors from
// this package so callers can match them with [errors.Is].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
