// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Method identifies a text transform offered by the encryption tool.
// The value is the stable wire identifier used by the HTTP API, the CLI and
// the TUI method selector.
type Method string

const (
	// Caesar rotates ASCII letters by a numeric shift.
	Caesar Method = "caesar"

	// XOR combines every code unit with a repeating text key.
	XOR Method = "xor"

	// Base64 is the standard Base64 encoding of a Latin-1 byte string.
	Base64 Method = "base64"

	// Binary renders every code unit as a zero-padded base-2 token.
	Binary Method = "binary"

	// Hex renders every code unit as a zero-padded base-16 token.
	Hex Method = "hex"

	// Vigenere shifts letters by a repeating keyword.
	Vigenere Method = "vigenere"

	// RailFence permutes characters along a zigzag of rails.
	RailFence Method = "railfence"

	// Playfair is selectable but only returns a placeholder.
	Playfair Method = "playfair"

	// AES is selectable but only returns a placeholder.
	AES Method = "aes"

	// RSA is selectable but only returns a placeholder.
	RSA Method = "rsa"
)

// KeyClass describes what kind of key a Method expects from the user.
type KeyClass string

const (
	// KeyNone marks methods that ignore the key entirely.
	KeyNone KeyClass = "none"

	// KeyNumeric marks methods that parse the key as an integer.
	KeyNumeric KeyClass = "numeric"

	// KeyText marks methods that use the key as a keyword.
	KeyText KeyClass = "text"

	// KeyPair marks methods that nominally need a public/private key pair.
	KeyPair KeyClass = "keypair"
)

// MethodInfo is the catalog entry for a single Method.
type MethodInfo struct {
	// ID is the wire identifier of the method.
	ID Method `json:"id"`

	// Name is the human-readable display name shown in history and menus.
	Name string `json:"name"`

	// KeyClass tells the presentation layer which key field to render.
	KeyClass KeyClass `json:"key_class"`

	// SecurityScore is the fixed nominal bonus the strength heuristic adds
	// for this method.
	SecurityScore int `json:"security_score"`

	// Simulated reports whether the method only returns a placeholder.
	Simulated bool `json:"simulated"`
}
