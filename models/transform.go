// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mode selects the direction of a transform.
type Mode string

const (
	// Encrypt applies the forward transform.
	Encrypt Mode = "encrypt"

	// Decrypt applies the inverse transform.
	Decrypt Mode = "decrypt"
)

// IsDecrypt reports whether m asks for the inverse transform.
// Anything other than Decrypt is treated as Encrypt.
func (m Mode) IsDecrypt() bool {
	return m == Decrypt
}

// TransformRequest is a single run of the encryption tool.
//
// Input is processed as a sequence of UTF-16 code units, the same way the
// browser widget indexes its strings; no Unicode normalization is applied.
type TransformRequest struct {
	Method Method `json:"method"`
	Mode   Mode   `json:"mode"`
	Input  string `json:"input"`
	// Key is optional; every method falls back to a fixed default.
	Key string `json:"key,omitempty"`
}

// TransformResult is the outcome of a TransformRequest.
type TransformResult struct {
	// Output is the transformed text, an "ERROR: ..." message for malformed
	// decode input, or a bracketed placeholder for simulated methods.
	Output string `json:"output"`

	// Strength is the presentation heuristic score in [0, 100].
	Strength int `json:"strength"`
}

// StrengthRequest asks for the heuristic score of an arbitrary text.
type StrengthRequest struct {
	Text   string `json:"text"`
	Method Method `json:"method"`
}

// StrengthResponse carries the heuristic score.
type StrengthResponse struct {
	Strength int `json:"strength"`
}
