// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HistoryEntry is an immutable record of one transform run. Entries live only
// in process memory and are never written to storage.
type HistoryEntry struct {
	// ID uniquely identifies the entry inside the rolling window.
	ID string `json:"id"`

	// MethodName is the display name of the method at the time of the run.
	MethodName string `json:"method_name"`

	// Method is the wire identifier of the method.
	Method Method `json:"method"`

	Input  string `json:"input"`
	Output string `json:"output"`
	Mode   Mode   `json:"mode"`
	Key    string `json:"key,omitempty"`

	// Timestamp is when the transform was executed.
	Timestamp time.Time `json:"timestamp"`
}
