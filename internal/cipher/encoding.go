// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Messages returned in place of the output when decoding fails.
const (
	ErrMsgInvalidBase64 = "ERROR: Invalid Base64 input"
	ErrMsgInvalidBinary = "ERROR: Invalid binary input"
	ErrMsgInvalidHex    = "ERROR: Invalid hex input"
)

// Base64Encode encodes input as a Latin-1 byte string. Code units above
// 0xFF cannot be represented as a single byte, so such input yields
// ErrMsgInvalidBase64.
func Base64Encode(input string) string {
	units := toUnits(input)
	raw := make([]byte, len(units))
	for i, u := range units {
		if u > 0xFF {
			return ErrMsgInvalidBase64
		}
		raw[i] = byte(u)
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// Base64Decode decodes standard Base64 into a Latin-1 string: every decoded
// byte becomes one character. ASCII whitespace is ignored. Padding is
// optional, but one or two trailing '=' are only accepted when the length is
// a multiple of 4.
func Base64Decode(input string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)

	unpadded := cleaned
	if len(cleaned)%4 == 0 {
		unpadded = strings.TrimSuffix(strings.TrimSuffix(cleaned, "="), "=")
	}

	raw, err := base64.RawStdEncoding.DecodeString(unpadded)
	if err != nil {
		return ErrMsgInvalidBase64
	}

	out := make([]rune, len(raw))
	for i, b := range raw {
		out[i] = rune(b)
	}
	return string(out)
}

// BinaryEncode renders every code unit as a base-2 token padded to at least
// 8 digits, joined by single spaces.
func BinaryEncode(input string) string {
	return encodeTokens(input, "%08b")
}

// BinaryDecode parses space-separated base-2 tokens back into characters.
func BinaryDecode(input string) string {
	return decodeTokens(input, 2, ErrMsgInvalidBinary)
}

// HexEncode renders every code unit as a lowercase base-16 token padded to
// at least 2 digits, joined by single spaces.
func HexEncode(input string) string {
	return encodeTokens(input, "%02x")
}

// HexDecode parses space-separated base-16 tokens back into characters.
func HexDecode(input string) string {
	return decodeTokens(input, 16, ErrMsgInvalidHex)
}

func encodeTokens(input, format string) string {
	units := toUnits(input)
	tokens := make([]string, len(units))
	for i, u := range units {
		tokens[i] = fmt.Sprintf(format, u)
	}
	return strings.Join(tokens, " ")
}

// decodeTokens is strict: every token must be a complete number in base that
// fits in a code unit.
func decodeTokens(input string, base int, errMsg string) string {
	tokens := strings.Fields(input)
	units := make([]uint16, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseUint(tok, base, 16)
		if err != nil {
			return errMsg
		}
		units[i] = uint16(v)
	}
	return fromUnits(units)
}

func base64Transform(input, _ string, decrypt bool) string {
	if decrypt {
		return Base64Decode(input)
	}
	return Base64Encode(input)
}

func binaryTransform(input, _ string, decrypt bool) string {
	if decrypt {
		return BinaryDecode(input)
	}
	return BinaryEncode(input)
}

func hexTransform(input, _ string, decrypt bool) string {
	if decrypt {
		return HexDecode(input)
	}
	return HexEncode(input)
}
