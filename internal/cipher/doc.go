// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cipher implements the text transforms behind the encryption tool
// and the heuristic used to rate their output.
//
// Everything in this package is pure: no I/O, no shared state, no errors.
// Malformed decode input is reported inside the returned string
// ("ERROR: Invalid <format> input") and missing or unparseable keys fall back
// to fixed defaults, so every call produces some output.
//
// None of the transforms are secure. Playfair, AES-256 and RSA are listed in
// the catalog so the strength heuristic can reach its upper range, but they
// only return a bracketed placeholder.
//
// Usage:
//
//	out := cipher.Transform(models.Caesar, models.Encrypt, "HELLO", "3") // "KHOOR"
//	score := cipher.Strength(out, models.Caesar)
package cipher
